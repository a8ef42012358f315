package postal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
	"github.com/zostay/go-contact/postal"
)

func TestUSBuilderInfersStateFromZip(t *testing.T) {
	t.Parallel()

	a, err := postal.NewUSBuilder().
		SetStreet("2250 NW Flanders St").
		SetCity("Portland").
		SetZip(mustZip(t, "97205")).
		Build()
	require.NoError(t, err)

	assert.Equal(t, geo.Oregon, a.State())
	assert.Equal(t, geo.USA, a.Country())
	assert.Equal(t, "2250 NW Flanders St, Portland, OR 97205, US", a.String())
}

func TestUSBuilderExplicitStateWins(t *testing.T) {
	t.Parallel()

	// an explicitly set state is used as-is, even when the ZIP says
	// otherwise
	a, err := postal.NewUSBuilder().
		SetStreet("1 Front St").
		SetCity("Somewhere").
		SetZip(mustZip(t, "97205")).
		SetState(geo.Washington).
		Build()
	require.NoError(t, err)
	assert.Equal(t, geo.Washington, a.State())
}

func TestUSBuilderUnresolvableZip(t *testing.T) {
	t.Parallel()

	_, err := postal.NewUSBuilder().
		SetStreet("1 Nowhere Ln").
		SetCity("Nowhere").
		SetZip(mustZip(t, "00000")).
		Build()
	require.Error(t, err)

	// the terminal build reports a chain that wraps the lookup failure
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
	assert.ErrorContains(t, err, "cannot resolve the state")
	assert.ErrorContains(t, err, "state for ZIP code not found")

	var iie *contact.InvalidInputError
	require.ErrorAs(t, err, &iie)
	assert.Equal(t, "00000", iie.Value)
}

func TestUSBuilderSettersNeverFail(t *testing.T) {
	t.Parallel()

	// a ZIP that cannot resolve is accepted by the setter; only Build
	// complains
	b := postal.NewUSBuilder().
		SetStreet("1 Nowhere Ln").
		SetCity("Nowhere").
		SetZip(mustZip(t, "00000"))

	_, err := b.Build()
	assert.Error(t, err)

	// fixing the ZIP makes the same builder usable
	b.SetZip(mustZip(t, "10001"))
	a, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, geo.NewYork, a.State())
}

func TestUSBuilderSetCountry(t *testing.T) {
	t.Parallel()

	b := postal.NewUSBuilder()
	assert.NoError(t, b.SetCountry(geo.USA))

	err := b.SetCountry(geo.Mexico)
	assert.ErrorIs(t, err, contact.ErrUnsupported)
}

func TestUS(t *testing.T) {
	t.Parallel()

	generic, err := postal.NewBuilder().
		SetStreet("350 5th Ave").
		SetUnit("Floor 86").
		SetCity("New York").
		SetZip(mustZip(t, "10118")).
		SetType(postal.TypeWork).
		Build()
	require.NoError(t, err)

	ua, err := postal.US(generic)
	require.NoError(t, err)
	assert.Equal(t, geo.NewYork, ua.State())
	assert.Equal(t, geo.USA, ua.Country())
	assert.Equal(t, "Floor 86", ua.Unit())
	assert.Equal(t, postal.TypeWork, ua.Type())
}

func TestUSRejectsForeignCountry(t *testing.T) {
	t.Parallel()

	generic, err := postal.NewBuilder().
		SetStreet("24 Sussex Dr").
		SetCity("Ottawa").
		SetZip(mustZip(t, "10001")).
		SetCountry(geo.Canada).
		Build()
	require.NoError(t, err)

	_, err = postal.US(generic)
	assert.ErrorIs(t, err, contact.ErrInvalidInput)
}

func TestUSFrom(t *testing.T) {
	t.Parallel()

	orig, err := postal.NewUSBuilder().
		SetStreet("2250 NW Flanders St").
		SetUnit("Apt 18").
		SetCity("Portland").
		SetZip(mustZip(t, "97210")).
		SetType(postal.TypeHome).
		Build()
	require.NoError(t, err)

	clone, err := postal.USFrom(orig).Build()
	require.NoError(t, err)

	assert.True(t, orig.Address.Equal(&clone.Address))
	assert.Equal(t, "Apt 18", clone.Unit())
	assert.Equal(t, geo.Oregon, clone.State())
	assert.Equal(t, postal.TypeHome, clone.Type())
}
