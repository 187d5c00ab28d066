package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/repository"
	"github.com/mamadbah2/fleetboard/internal/repository/memory"
)

var _ repository.Source = (*Store)(nil)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "fleetboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_MatchesMemorySource(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	empty, err := s.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, s.ImportDataset(ctx, memory.Seed()))

	empty, err = s.Empty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)

	mem := memory.NewSeeded()

	wantLoads, _ := mem.Loads(ctx)
	gotLoads, err := s.Loads(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantLoads, gotLoads)

	wantItems, _ := mem.InventoryItems(ctx)
	gotItems, err := s.InventoryItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantItems, gotItems)

	wantVehicles, _ := mem.Vehicles(ctx)
	gotVehicles, err := s.Vehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantVehicles, gotVehicles)

	wantDisc, _ := mem.Discrepancies(ctx)
	gotDisc, err := s.Discrepancies(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantDisc, gotDisc)

	wantAudits, _ := mem.AuditReports(ctx)
	gotAudits, err := s.AuditReports(ctx)
	require.NoError(t, err)
	require.Len(t, gotAudits, len(wantAudits))
	for i := range wantAudits {
		assert.Equal(t, wantAudits[i].ID, gotAudits[i].ID)
		assert.True(t, wantAudits[i].Accuracy.Equal(gotAudits[i].Accuracy.Decimal), "accuracy of %s", wantAudits[i].ID)
	}
}

func TestImport_ReplacesKind(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	id := func(l models.Load) string { return l.ID }

	require.NoError(t, Import(ctx, s, filter.KindLoads, []models.Load{{ID: "B"}, {ID: "A"}}, id))
	require.NoError(t, Import(ctx, s, filter.KindLoads, []models.Load{{ID: "C"}}, id))

	loads, err := s.Loads(ctx)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, "C", loads[0].ID)

	items, err := s.InventoryItems(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestImport_KeepsImportOrder(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	require.NoError(t, Import(ctx, s, filter.KindLoads, []models.Load{{ID: "Z"}, {ID: "A"}, {ID: "M"}}, func(l models.Load) string { return l.ID }))

	loads, err := s.Loads(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Z", loads[0].ID)
	assert.Equal(t, "M", loads[2].ID)
}
