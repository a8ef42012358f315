package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/phone"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"5035550123",
		"(503) 555-0123",
		"503.555.0123",
		"503-555-0123",
		"503 555 0123",
	} {
		n, err := phone.Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "503", n.AreaCode().Digits())
		assert.Equal(t, "555", n.ExchangeCode().Digits())
		assert.Equal(t, "0123", n.LineNumber().Digits())
		assert.False(t, n.IsLocal())
		assert.Equal(t, "5035550123", n.Digits())
		assert.Equal(t, "503-555-0123", n.String())
	}
}

func TestParseLocal(t *testing.T) {
	t.Parallel()

	n, err := phone.Parse("555-0123")
	require.NoError(t, err)
	assert.True(t, n.IsLocal())
	assert.True(t, n.AreaCode().IsZero())
	assert.Equal(t, "555", n.ExchangeCode().Digits())
	assert.Equal(t, "0123", n.LineNumber().Digits())
	assert.Equal(t, "5550123", n.Digits())
	assert.Equal(t, "555-0123", n.String())
}

func TestParseBadLength(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "555", "555-012", "503-555-01234", "1-503-555-0123"} {
		_, err := phone.Parse(input)
		assert.ErrorIs(t, err, contact.ErrInvalidInput, "input %q", input)
		assert.ErrorContains(t, err, "10 digits or 7 digits")
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	// the canonical rendering carries exactly the parsed digits
	for _, input := range []string{"5035550123", "2125550199", "8085551234"} {
		n, err := phone.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, n.Digits())

		back, err := phone.Parse(n.String())
		require.NoError(t, err)
		assert.True(t, n.Equal(back))
	}
}

func TestNumberEqual(t *testing.T) {
	t.Parallel()

	a, err := phone.Parse("503-555-0123")
	require.NoError(t, err)
	b, err := phone.Parse("(503) 555-0123")
	require.NoError(t, err)
	c, err := phone.Parse("503-555-0124")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	x, err := phone.ParseExtension("88")
	require.NoError(t, err)

	n, err := phone.Parse("503-555-0123")
	require.NoError(t, err)

	withExt, err := phone.From(n).SetExtension(x).Build()
	require.NoError(t, err)

	assert.Equal(t, "503-555-0123 x88", withExt.Format())
	assert.Equal(t, "503-555-0123", withExt.String())
	assert.Equal(t, "503-555-0123", n.Format())
}
