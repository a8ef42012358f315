package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/phone"
)

func TestParseAreaCode(t *testing.T) {
	t.Parallel()

	ac, err := phone.ParseAreaCode("503")
	assert.NoError(t, err)
	assert.Equal(t, "503", ac.Digits())
	assert.Equal(t, "503", ac.String())
	assert.False(t, ac.IsZero())

	// punctuation is stripped before the width check
	ac, err = phone.ParseAreaCode("(503)")
	assert.NoError(t, err)
	assert.Equal(t, "503", ac.Digits())

	for _, bad := range []string{"", "50", "5035", "abc"} {
		_, err := phone.ParseAreaCode(bad)
		assert.ErrorIs(t, err, contact.ErrInvalidInput, "input %q", bad)
	}
}

func TestAreaCodeIdempotence(t *testing.T) {
	t.Parallel()

	// the same input always produces an equal value
	a, err := phone.ParseAreaCode("212")
	assert.NoError(t, err)
	b, err := phone.ParseAreaCode("212")
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Zero(t, a.Compare(b))
}

func TestAreaCodeCompare(t *testing.T) {
	t.Parallel()

	a, _ := phone.ParseAreaCode("123")
	b, _ := phone.ParseAreaCode("124")
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a))
}

func TestParseExchangeCode(t *testing.T) {
	t.Parallel()

	ec, err := phone.ParseExchangeCode("555")
	assert.NoError(t, err)
	assert.Equal(t, "555", ec.Digits())

	_, err = phone.ParseExchangeCode("55")
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
	assert.ErrorContains(t, err, "exactly 3 digits")
}

func TestParseLineNumber(t *testing.T) {
	t.Parallel()

	ln, err := phone.ParseLineNumber("0123")
	assert.NoError(t, err)
	assert.Equal(t, "0123", ln.Digits())

	_, err = phone.ParseLineNumber("012")
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
	assert.ErrorContains(t, err, "exactly 4 digits")
}

func TestParseExtension(t *testing.T) {
	t.Parallel()

	x, err := phone.ParseExtension("1234")
	assert.NoError(t, err)
	assert.Equal(t, "1234", x.Digits())

	x, err = phone.ParseExtension("7")
	assert.NoError(t, err)
	assert.Equal(t, "7", x.Digits())

	_, err = phone.ParseExtension("")
	assert.ErrorIs(t, err, contact.ErrInvalidInput)

	_, err = phone.ParseExtension("1234567")
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
}
