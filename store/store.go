// Package store owns the durable persistence layer and the in-memory
// managers for the property catalog and the site settings singleton.
//
// Persistence is two named JSON blobs, each written as a full snapshot on
// every mutation. There is no delta encoding, no schema version field and no
// cross-process coordination: the last write to land wins.
package store

import "errors"

// Storage keys. The names predate this backend and are kept for
// compatibility with previously exported data.
const (
	PropertiesKey = "creekside_properties"
	SettingsKey   = "creekside_settings"
)

var (
	// ErrNotFound is returned when an update targets an id with no
	// matching record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when an add carries a caller-supplied id
	// that already exists in the catalog.
	ErrDuplicateID = errors.New("duplicate record id")
)

// DurableStore persists one JSON-serializable value per key.
//
// Load decodes the value stored at key into dest and reports whether the key
// was present. Save overwrites the value at key unconditionally. Managers
// treat Save as best-effort: a failed write is logged and the session
// continues on in-memory state.
type DurableStore interface {
	Load(key string, dest any) (bool, error)
	Save(key string, value any) error
}
