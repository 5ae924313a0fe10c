// Package catalog loads the JSON listing collections from disk.
//
// Each collection is a JSON array of listing objects. Records that fail
// schema validation are skipped with a warning; they never default-fill.
// Duplicate ids within one file keep the first occurrence.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"flx-labs/stay-sip/internal/models"
)

//go:embed listing.schema.json
var listingSchema []byte

// ErrUnavailable reports a collection whose source file is missing,
// unreadable, or not valid JSON. Callers should degrade to an
// empty-state display rather than failing the whole page.
var ErrUnavailable = errors.New("collection data unavailable")

// ErrUnknownCollection reports a name outside the fixed collection set.
var ErrUnknownCollection = errors.New("unknown collection")

// Names is the fixed set of collections, in display order.
var Names = []string{"stays", "wineries", "attractions", "wedding_venues", "itineraries"}

// Known reports whether name is one of the fixed collections.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// SkippedRecord describes one array element dropped during a load.
type SkippedRecord struct {
	Index  int
	ID     string
	Reason string
}

// Report summarizes one collection load for the validate command.
type Report struct {
	Collection string
	Total      int // elements in the source array
	Loaded     int
	Skipped    []SkippedRecord
}

// Loader reads collections from a data directory. It holds no record
// state: every Load reads the file again, so each view works on its
// own copy.
type Loader struct {
	dataDir string
	logger  *slog.Logger
	schema  *jsonschema.Schema
}

// NewLoader builds a Loader rooted at dataDir.
func NewLoader(dataDir string, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("listing.schema.json", bytes.NewReader(listingSchema)); err != nil {
		return nil, fmt.Errorf("failed to add listing schema: %w", err)
	}
	schema, err := compiler.Compile("listing.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile listing schema: %w", err)
	}
	return &Loader{dataDir: dataDir, logger: logger, schema: schema}, nil
}

// Load returns the ordered records of one collection.
func (l *Loader) Load(name string) ([]models.ListingRecord, error) {
	records, _, err := l.Inspect(name)
	return records, err
}

// Inspect is Load plus a per-record report, used by the validate command.
func (l *Loader) Inspect(name string) ([]models.ListingRecord, *Report, error) {
	if !Known(name) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}

	path := filepath.Join(l.dataDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, nil, fmt.Errorf("%w: %s is not a JSON array: %v", ErrUnavailable, path, err)
	}

	report := &Report{Collection: name, Total: len(elements)}
	records := make([]models.ListingRecord, 0, len(elements))
	seen := make(map[models.ID]bool, len(elements))

	for i, raw := range elements {
		rec, reason := l.decodeRecord(raw)
		if reason == "" && seen[rec.ID] {
			reason = fmt.Sprintf("duplicate id %q", rec.ID)
		}
		if reason != "" {
			l.logger.Warn("skipping record",
				"collection", name, "index", i, "reason", reason)
			report.Skipped = append(report.Skipped, SkippedRecord{
				Index:  i,
				ID:     string(rec.ID),
				Reason: reason,
			})
			continue
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}

	report.Loaded = len(records)
	return records, report, nil
}

// decodeRecord validates one array element against the listing schema
// and unmarshals it. An empty reason means the record is good.
func (l *Loader) decodeRecord(raw json.RawMessage) (models.ListingRecord, string) {
	var rec models.ListingRecord

	// The schema validator wants a decoded value, with numbers kept
	// as json.Number so integer bounds check correctly.
	var value any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return rec, fmt.Sprintf("invalid JSON element: %v", err)
	}
	if err := l.schema.Validate(value); err != nil {
		return rec, fmt.Sprintf("schema validation failed: %v", err)
	}

	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Sprintf("decode failed: %v", err)
	}
	if rec.Name == "" {
		rec.Name = rec.Title
	}
	return rec, ""
}

// LoadAll returns every collection keyed by name. A collection whose
// source is unavailable contributes an empty slice; the map view and
// home page treat that as an empty state, not a failure.
func (l *Loader) LoadAll() map[string][]models.ListingRecord {
	out := make(map[string][]models.ListingRecord, len(Names))
	for _, name := range Names {
		records, err := l.Load(name)
		if err != nil {
			l.logger.Warn("collection unavailable", "collection", name, "error", err)
			records = nil
		}
		out[name] = records
	}
	return out
}
