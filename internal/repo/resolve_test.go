package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	store := newSeededStore(t)
	return NewResolver(
		NewShipRepository(store),
		NewComponentRepository(store),
		NewUserRepository(store),
	)
}

func TestResolver_Found(t *testing.T) {
	r := newResolver(t)

	ship := r.Ship("s1")
	assert.True(t, ship.Found)
	assert.Equal(t, "Evergreen", ship.Name)

	comp := r.Component("s1", "c1")
	assert.True(t, comp.Found)
	assert.Equal(t, "Main Engine", comp.Name)

	user := r.User("u3")
	assert.True(t, user.Found)
	assert.Equal(t, "Engineer User", user.Name)
}

func TestResolver_MissingYieldsUnknown(t *testing.T) {
	r := newResolver(t)

	// все виды битых ссылок разрешаются одинаково
	for _, ref := range []Ref{
		r.Ship("gone"),
		r.Component("s1", "gone"),
		r.Component("gone", "c1"),
		r.User("gone"),
	} {
		assert.False(t, ref.Found)
		assert.Equal(t, Unknown, ref.Name)
	}
}

func TestUserRepository_Lookups(t *testing.T) {
	r := NewUserRepository(newSeededStore(t))

	u, err := r.GetByEmail("inspector@entnt.in")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u2", u.ID)

	u, err = r.GetByEmail("nobody@entnt.in")
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = r.GetByID("u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Admin User", u.Name)
}
