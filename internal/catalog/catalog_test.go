package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-assistant/travel-assistant-service/internal/domain"
)

func TestLoad_ValidFile(t *testing.T) {
	cat, err := Load(filepath.Join("testdata", "flights_valid.json"))
	require.NoError(t, err)

	snapshot := cat.Snapshot()
	require.Len(t, snapshot, 3)

	assert.Equal(t, "FL-1", snapshot[0].FlightID)
	assert.True(t, snapshot[0].Refundable)

	// Sparse record resolves to defaults, not an error.
	sparse := snapshot[2]
	assert.Equal(t, "FL-3", sparse.FlightID)
	assert.False(t, sparse.HasPrice())
	assert.False(t, sparse.Refundable)
	assert.False(t, sparse.OvernightLayover)
	assert.True(t, sparse.IsDirect())
}

func TestLoad_MissingFile(t *testing.T) {
	cat, err := Load(filepath.Join("testdata", "does_not_exist.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Nil(t, cat)
}

func TestLoad_InvalidJSON(t *testing.T) {
	cat, err := Load(filepath.Join("testdata", "flights_invalid.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Nil(t, cat)
}

// TestLoad_MalformedRecordSkipped verifies that one badly typed record is
// dropped while the rest of the catalog loads.
func TestLoad_MalformedRecordSkipped(t *testing.T) {
	cat, err := Load(filepath.Join("testdata", "flights_bad_record.json"))
	require.NoError(t, err)

	snapshot := cat.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "FL-1", snapshot[0].FlightID)
	assert.Equal(t, "FL-3", snapshot[1].FlightID)
}

func TestReload_SwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flights.json")

	write := func(content string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write(`[{"flight_id": "FL-1", "airline": "Emirates", "from": "Dubai", "to": "Tokyo"}]`)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	// A reader holding the old snapshot keeps it across a reload.
	old := cat.Snapshot()

	write(`[
		{"flight_id": "FL-1", "airline": "Emirates", "from": "Dubai", "to": "Tokyo"},
		{"flight_id": "FL-2", "airline": "Lufthansa", "from": "Dubai", "to": "Paris"}
	]`)
	require.NoError(t, cat.Reload())

	assert.Len(t, old, 1)
	assert.Equal(t, 2, cat.Len())
}

func TestReload_FailureKeepsOldSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flights.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"flight_id": "FL-1", "airline": "Emirates", "from": "Dubai", "to": "Tokyo"}]`), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	err = cat.Reload()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)

	// The previous snapshot stays in service.
	assert.Equal(t, 1, cat.Len())
}

func TestNewFromRecords(t *testing.T) {
	cat := NewFromRecords([]domain.FlightRecord{
		{FlightID: "FL-1", Airline: "Emirates", From: "Dubai", To: "Tokyo"},
	})

	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, "FL-1", cat.Snapshot()[0].FlightID)
}

func TestNewFromRecords_NilRecords(t *testing.T) {
	cat := NewFromRecords(nil)

	assert.Equal(t, 0, cat.Len())
	assert.NotNil(t, cat.Snapshot())
}
