// Package catalog loads the static flight dataset and serves immutable
// point-in-time snapshots to the search engine.
//
// The catalog file is a JSON array of flight objects (schema in domain
// .FlightRecord). Loading happens once at startup; a missing or unparseable
// file is fatal and surfaces domain.ErrDataUnavailable. Individual records
// that fail to decode are skipped so one bad entry never aborts the load.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/travel-assistant/travel-assistant-service/internal/domain"
)

// Catalog holds the in-memory flight dataset behind an atomically swappable
// snapshot. Searches read the snapshot without locking; Reload replaces it
// wholesale, never mutating records in place.
type Catalog struct {
	path     string
	snapshot atomic.Pointer[[]domain.FlightRecord]
}

// Load reads the catalog file at path and returns a ready Catalog.
// The returned error wraps domain.ErrDataUnavailable if the file is missing
// or is not valid JSON.
func Load(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromRecords builds a Catalog directly from records, bypassing the file
// load. Intended for tests and embedded datasets.
func NewFromRecords(records []domain.FlightRecord) *Catalog {
	c := &Catalog{}
	c.store(records)
	return c
}

// Reload re-reads the catalog file and swaps the snapshot in one step.
// Concurrent readers keep the snapshot they already hold; the swap is a
// pointer replacement, not an in-place mutation.
func (c *Catalog) Reload() error {
	if c.path == "" {
		return fmt.Errorf("%w: no catalog file configured", domain.ErrDataUnavailable)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", domain.ErrDataUnavailable, c.path, err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return fmt.Errorf("%w: parse %s: %v", domain.ErrDataUnavailable, c.path, err)
	}

	c.store(records)
	return nil
}

// Snapshot returns the current immutable dataset. Callers must not modify the
// returned slice or its records.
func (c *Catalog) Snapshot() []domain.FlightRecord {
	p := c.snapshot.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Len returns the number of flights in the current snapshot.
func (c *Catalog) Len() int {
	return len(c.Snapshot())
}

func (c *Catalog) store(records []domain.FlightRecord) {
	if records == nil {
		records = []domain.FlightRecord{}
	}
	c.snapshot.Store(&records)
}

// decodeRecords decodes a JSON array of flight objects. The array itself must
// parse; a record that fails to decode (e.g. wrongly typed field) is skipped
// with a warning. Missing optional fields resolve to their zero-value
// defaults via the struct tags.
func decodeRecords(data []byte) ([]domain.FlightRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make([]domain.FlightRecord, 0, len(raw))
	for i, entry := range raw {
		var rec domain.FlightRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			log.Warn().
				Int("index", i).
				Err(err).
				Msg("Skipping malformed catalog record")
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
