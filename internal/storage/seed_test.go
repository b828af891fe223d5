package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FleetKeeper/internal/model"
)

func TestSeedIfAbsent_PopulatesEmptyStore(t *testing.T) {
	s := NewMemory()
	require.NoError(t, SeedIfAbsent(s))

	var users []model.User
	ok, err := ReadJSON(s, KeyUsers, &users)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, users, 3)
	assert.Equal(t, "admin@entnt.in", users[0].Email)
	assert.Equal(t, model.RoleAdmin, users[0].Role)

	var ships []model.Ship
	_, err = ReadJSON(s, KeyShips, &ships)
	require.NoError(t, err)
	require.Len(t, ships, 3)
	assert.Len(t, ships[0].Components, 2)
	// старый формат: компоненты s3 без shipId
	assert.Empty(t, ships[2].Components[0].ShipID)

	var jobs []model.Job
	_, err = ReadJSON(s, KeyJobs, &jobs)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, model.JobScheduled, jobs[0].Status)
}

func TestSeedIfAbsent_Idempotent(t *testing.T) {
	s := NewMemory()
	require.NoError(t, SeedIfAbsent(s))
	first, _, _ := s.Read(KeyShips)

	// повторный вызов ничего не меняет
	require.NoError(t, SeedIfAbsent(s))
	second, _, _ := s.Read(KeyShips)
	assert.Equal(t, first, second)
}

func TestSeedIfAbsent_DoesNotOverwriteExisting(t *testing.T) {
	s := NewMemory()
	require.NoError(t, WriteJSON(s, KeyShips, []model.Ship{{ID: "mine", Name: "My Ship"}}))

	require.NoError(t, SeedIfAbsent(s))

	var ships []model.Ship
	_, err := ReadJSON(s, KeyShips, &ships)
	require.NoError(t, err)
	require.Len(t, ships, 1)
	assert.Equal(t, "mine", ships[0].ID)
	// отсутствовавшие ключи при этом заполняются
	var users []model.User
	ok, _ := ReadJSON(s, KeyUsers, &users)
	assert.True(t, ok)
	assert.Len(t, users, 3)
}
