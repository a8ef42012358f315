package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
	"github.com/zostay/go-contact/phone"
)

func mustAreaCode(t *testing.T, s string) phone.AreaCode {
	t.Helper()
	ac, err := phone.ParseAreaCode(s)
	require.NoError(t, err)
	return ac
}

func mustExchangeCode(t *testing.T, s string) phone.ExchangeCode {
	t.Helper()
	ec, err := phone.ParseExchangeCode(s)
	require.NoError(t, err)
	return ec
}

func mustLineNumber(t *testing.T, s string) phone.LineNumber {
	t.Helper()
	ln, err := phone.ParseLineNumber(s)
	require.NoError(t, err)
	return ln
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	n, err := phone.NewBuilder().
		SetAreaCode(mustAreaCode(t, "503")).
		SetExchangeCode(mustExchangeCode(t, "555")).
		SetLineNumber(mustLineNumber(t, "0123")).
		SetCountry(geo.USA).
		SetType(phone.TypeMobile).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "503-555-0123", n.String())
	assert.Equal(t, geo.USA, n.Country())
	assert.Equal(t, phone.TypeMobile, n.Type())
}

func TestBuilderLocal(t *testing.T) {
	t.Parallel()

	n, err := phone.NewBuilder().
		SetExchangeCode(mustExchangeCode(t, "555")).
		SetLineNumber(mustLineNumber(t, "0123")).
		Build()
	require.NoError(t, err)
	assert.True(t, n.IsLocal())
	assert.Equal(t, "555-0123", n.String())
}

func TestBuilderMissingRequired(t *testing.T) {
	t.Parallel()

	_, err := phone.NewBuilder().
		SetAreaCode(mustAreaCode(t, "503")).
		Build()
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
	assert.ErrorContains(t, err, "exchange code")
}

func TestBuilderRepeatable(t *testing.T) {
	t.Parallel()

	b := phone.NewBuilder().
		SetExchangeCode(mustExchangeCode(t, "555")).
		SetLineNumber(mustLineNumber(t, "0100"))

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	// each call builds a fresh value; the builder is unaffected
	assert.NotSame(t, first, second)
	assert.True(t, first.Equal(second))

	// the builder can keep going after a build
	b.SetAreaCode(mustAreaCode(t, "503"))
	third, err := b.Build()
	require.NoError(t, err)
	assert.False(t, third.IsLocal())
	assert.True(t, first.IsLocal())
}

func TestFromPreservesOptionals(t *testing.T) {
	t.Parallel()

	x, err := phone.ParseExtension("42")
	require.NoError(t, err)

	orig, err := phone.NewBuilder().
		SetAreaCode(mustAreaCode(t, "212")).
		SetExchangeCode(mustExchangeCode(t, "555")).
		SetLineNumber(mustLineNumber(t, "0199")).
		SetExtension(x).
		SetCountry(geo.USA).
		SetType(phone.TypeWork).
		Build()
	require.NoError(t, err)

	clone, err := phone.From(orig).Build()
	require.NoError(t, err)

	assert.True(t, orig.Equal(clone))
	assert.Equal(t, "42", clone.Extension().Digits())
	assert.Equal(t, geo.USA, clone.Country())
	assert.Equal(t, phone.TypeWork, clone.Type())
}
