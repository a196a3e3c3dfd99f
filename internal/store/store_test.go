package store

import (
	"context"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want []span
	}{
		{"empty", 0, 10, nil},
		{"single", 3, 10, []span{{0, 3}}},
		{"exact", 4, 2, []span{{0, 2}, {2, 4}}},
		{"remainder", 5, 2, []span{{0, 2}, {2, 4}, {4, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunk(tt.n, tt.size))
		})
	}
}

func TestInsertQuery(t *testing.T) {
	got := insertQuery("monitors", []string{"id", "item"})
	assert.Equal(t, "INSERT INTO monitors (id, item) VALUES (:id, :item)", got)
}

func TestBatchSizeFitsParameterLimit(t *testing.T) {
	assert.LessOrEqual(t, batchSize(cpuColumns)*len(cpuColumns), maxParams)
	assert.LessOrEqual(t, batchSize(monitorColumns)*len(monitorColumns), maxParams)
}

func dbTags(v interface{}) []string {
	typ := reflect.TypeOf(v)
	tags := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tags = append(tags, typ.Field(i).Tag.Get("db"))
	}
	return tags
}

func TestColumnsMatchRecordTags(t *testing.T) {
	assert.Equal(t, dbTags(models.CPU{}), cpuColumns)
	assert.Equal(t, dbTags(models.Monitor{}), monitorColumns)
}

// TestSaveEquipment runs against a disposable database named by TEST_DATABASE_URL.
func TestActiveStatusIsWholeValue(t *testing.T) {
	assert.Equal(t, `lower(trim(status)) IN ('ativo', 'active')`, activeStatus)
	assert.NotContains(t, strings.ToUpper(activeStatus), "LIKE")
}

func TestSaveEquipment(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	s, err := Open(ctx, url)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Migrate(ctx))
	_, err = s.db.ExecContext(ctx, `TRUNCATE cpus, monitors`)
	require.NoError(t, err)

	hd := "1TB"
	data := models.EquipmentData{
		CPUs: []models.CPU{
			{ID: "gti-1-a", Item: 1, Nomenclature: "DER-GTI001", Status: "Ativo", HardDisk: &hd, OnDomain: "SIM", Department: "GTI"},
			{ID: "adm-1-b", Item: 1, Nomenclature: "DER-ADM001", OnDomain: "SIM", Department: "ADM"},
			{ID: "adm-2-d", Item: 2, Nomenclature: "DER-ADM002", Status: "Inativo", OnDomain: "SIM", Department: "ADM"},
		},
		Monitors: []models.Monitor{
			{ID: "monitor-gti-1-c", Item: 1, Model: "Dell", Status: " Active ", Department: "GTI"},
			{ID: "monitor-gti-2-e", Item: 2, Model: "Dell", Status: "inactive", Department: "GTI"},
		},
	}

	counts, err := s.SaveEquipment(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, Counts{CPUs: 3, Monitors: 2}, counts)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalCPUs)
	assert.Equal(t, 1, st.ActiveCPUs)
	assert.Equal(t, 2, st.TotalMonitors)
	assert.Equal(t, 1, st.ActiveMonitors)
	assert.Equal(t, map[string]int{"GTI": 3, "ADM": 2}, st.ByDepartment)

	_, err = s.SaveEquipment(ctx, data)
	assert.Error(t, err, "duplicate ids roll the whole import back")
	st, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalCPUs)
}
