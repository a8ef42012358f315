package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/email"
)

func TestParseDomain(t *testing.T) {
	t.Parallel()

	d, err := email.ParseDomain("example.com")
	require.NoError(t, err)
	assert.Equal(t, "example", d.Name())
	assert.Equal(t, "com", d.Extension())
	assert.Equal(t, "example.com", d.String())

	// only the final label is the extension
	d, err = email.ParseDomain("mail.example.co.uk")
	require.NoError(t, err)
	assert.Equal(t, "mail.example.co", d.Name())
	assert.Equal(t, "uk", d.Extension())
}

func TestParseDomainInvalid(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "example", ".com", "example.", "exa mple.com", "user@example.com"} {
		_, err := email.ParseDomain(bad)
		assert.ErrorIs(t, err, contact.ErrInvalidInput, "input %q", bad)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	a, err := email.Parse("jdoe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", a.Username())
	assert.Equal(t, "example", a.Domain().Name())
	assert.Equal(t, "com", a.Domain().Extension())
	assert.Empty(t, a.DisplayName())
	assert.Equal(t, "jdoe@example.com", a.String())
	assert.Equal(t, "jdoe@example.com", a.Format())
}

func TestParseDisplayName(t *testing.T) {
	t.Parallel()

	a, err := email.Parse("Jane Doe <jdoe@example.com>")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", a.DisplayName())
	assert.Equal(t, "jdoe", a.Username())
	assert.Equal(t, "jdoe@example.com", a.String())
	assert.Equal(t, "Jane Doe <jdoe@example.com>", a.Format())
}

func TestParseRejectsJunk(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "not an address", "@example.com", "jdoe@"} {
		_, err := email.Parse(bad)
		assert.ErrorIs(t, err, contact.ErrInvalidInput, "input %q", bad)
	}
}

func TestParseLiberal(t *testing.T) {
	t.Parallel()

	// input the strict grammar would choke on still yields something
	a, err := email.ParseLiberal("Jane Q. Doe jdoe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", a.DisplayName())
	assert.Equal(t, "jdoe", a.Username())

	_, err = email.ParseLiberal("nothing useful here")
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
}

func TestNew(t *testing.T) {
	t.Parallel()

	d, err := email.ParseDomain("example.org")
	require.NoError(t, err)

	a, err := email.New("info", d)
	require.NoError(t, err)
	assert.Equal(t, "info@example.org", a.String())

	_, err = email.New("", d)
	assert.ErrorIs(t, err, contact.ErrInvalidInput)

	_, err = email.New("in fo", d)
	assert.ErrorIs(t, err, contact.ErrInvalidInput)

	_, err = email.New("info", email.Domain{})
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
}

func TestAddressEqual(t *testing.T) {
	t.Parallel()

	a, err := email.Parse("jdoe@example.com")
	require.NoError(t, err)
	b, err := email.Parse("jdoe@example.com")
	require.NoError(t, err)
	c, err := email.Parse("jdoe@example.org")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"jdoe@example.com", "a.b.c@mail.example.net"} {
		a, err := email.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, a.String())

		back, err := email.Parse(a.String())
		require.NoError(t, err)
		assert.True(t, a.Equal(back))
	}
}
