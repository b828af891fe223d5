package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FleetKeeper/internal/model"
)

func mkComponent(id, shipID, name string) model.Component {
	return model.Component{
		ID:               id,
		ShipID:           shipID,
		Name:             name,
		SerialNumber:     "SN-100",
		InstallationDate: "2024-01-10",
		Status:           model.StatusActive,
	}
}

func TestComponentRepository_AddAndGetByID(t *testing.T) {
	r := NewComponentRepository(newSeededStore(t))

	c := mkComponent("c100", "s1", "Radar")
	require.NoError(t, r.Add("s1", c))

	got, err := r.GetByID("s1", "c100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c, *got)

	// компонент добавлен в конец списка своего судна
	all, _ := r.GetAll("s1")
	assert.Equal(t, "c100", all[len(all)-1].ID)
}

func TestComponentRepository_Update_PreservesPosition(t *testing.T) {
	r := NewComponentRepository(newSeededStore(t))
	before, err := r.GetAll("s1")
	require.NoError(t, err)
	require.Len(t, before, 2)

	upd := before[0]
	upd.Name = "Main Engine Mk2"
	upd.LastMaintenanceDate = "2024-05-01"
	require.NoError(t, r.Update("s1", upd))

	after, _ := r.GetAll("s1")
	require.Len(t, after, 2)
	assert.Equal(t, "Main Engine Mk2", after[0].Name)
	assert.Equal(t, before[1], after[1])
}

func TestComponentRepository_Delete(t *testing.T) {
	r := NewComponentRepository(newSeededStore(t))

	require.NoError(t, r.Delete("s1", "c1"))

	got, _ := r.GetByID("s1", "c1")
	assert.Nil(t, got)
	all, _ := r.GetAll("s1")
	assert.Len(t, all, 1)

	// повторное удаление — no-op
	require.NoError(t, r.Delete("s1", "c1"))
	all, _ = r.GetAll("s1")
	assert.Len(t, all, 1)
}

func TestComponentRepository_UnknownShipIsNoop(t *testing.T) {
	store := newSeededStore(t)
	r := NewComponentRepository(store)
	ships := NewShipRepository(store)
	before, _ := ships.GetAll()

	// чтения пусты, записи ничего не меняют
	all, err := r.GetAll("missing")
	assert.NoError(t, err)
	assert.Empty(t, all)
	got, err := r.GetByID("missing", "c1")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, r.Add("missing", mkComponent("cX", "missing", "Ghost")))
	assert.NoError(t, r.Update("missing", mkComponent("c1", "missing", "Ghost")))
	assert.NoError(t, r.Delete("missing", "c1"))

	// компоненты остальных судов не тронуты
	after, _ := ships.GetAll()
	assert.Equal(t, before, after)
}

func TestComponentRepository_LegacyComponentWithoutShipID(t *testing.T) {
	r := NewComponentRepository(newSeededStore(t))

	// компоненты s3 из стартовых данных не имеют shipId, но читаются
	// и обновляются по скоупу судна
	got, err := r.GetByID("s3", "c7")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.ShipID)

	upd := *got
	upd.Status = model.StatusInactive
	require.NoError(t, r.Update("s3", upd))
	got, _ = r.GetByID("s3", "c7")
	assert.Equal(t, model.StatusInactive, got.Status)
}
