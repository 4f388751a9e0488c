// Package store is the local key-value persistence layer. Every key holds
// one UTF-8 JSON payload; collections are always written whole (no partial
// append), so the last writer of a key wins. The store itself is
// date-agnostic: time fields serialize to RFC 3339 strings and are
// re-hydrated by the typed helpers on the way out.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/havenstay/backend/internal/utils"
)

// Well-known keys. Task collections are namespaced per identity.
const (
	KeyToken      = "token"
	KeyUser       = "user"
	KeyUsers      = "users"
	KeyProperties = "properties"
	KeyBookings   = "bookings"
)

// TasksKey returns the storage key for one identity's task collection.
func TasksKey(userID string) string {
	return "tasks_" + userID
}

// Store reads and writes named slices of the local key-value storage.
//
// Load reports absent (false) both for a missing key and for a stored
// payload that is not valid JSON; callers treat absent as an empty
// collection and never see a parse error.
type Store interface {
	Load(key string) ([]byte, bool)
	Save(key string, payload []byte) error
	Delete(key string) error
	Keys() []string
	Close() error
}

// LoadSlice decodes the collection stored under key. Missing or
// unparseable payloads report absent.
func LoadSlice[T any](s Store, key string) ([]T, bool) {
	raw, ok := s.Load(key)
	if !ok {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		utils.Logger.Warnf("Discarding unparseable payload for key %q: %v", key, err)
		return nil, false
	}
	return out, true
}

// SaveSlice persists the full collection under key, replacing whatever
// snapshot was there before.
func SaveSlice[T any](s Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Save(key, raw)
}

// LoadValue decodes a single record stored under key (identity, token).
func LoadValue[T any](s Store, key string, v *T) bool {
	raw, ok := s.Load(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		utils.Logger.Warnf("Discarding unparseable payload for key %q: %v", key, err)
		return false
	}
	return true
}

// SaveValue persists a single record under key.
func SaveValue(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Save(key, raw)
}
