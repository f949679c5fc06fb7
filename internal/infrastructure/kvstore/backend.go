package kvstore

// Backend is the minimal synchronous key-value surface the document store and
// session slots run on: string values under well-known keys, nothing more.
type Backend interface {
	// GetItem returns the value stored under key and whether the key exists.
	GetItem(key string) (string, bool, error)
	// SetItem stores value under key, replacing any prior value.
	SetItem(key, value string) error
	// RemoveItem deletes the key if present.
	RemoveItem(key string) error
	Close() error
}
