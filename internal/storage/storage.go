// Package storage persists small string values under named keys. Native
// builds use files in a data directory next to the executable; browser
// builds use IndexedDB. Values survive across runs on a best-effort basis;
// absence is normal and reported via the bool return, never as an error.
package storage

// Store saves value under key, replacing any previous value.
func Store(key, value string) error {
	checkKey(key)
	return store(key, value)
}

// Load retrieves the value stored under key. The second return is false when
// nothing has ever been stored under it or the backing store is unavailable.
func Load(key string) (string, bool) {
	checkKey(key)
	return load(key)
}

// checkKey panics on malformed keys. Keys are compile-time constants in
// practice, so a bad one is a programmer error, not a runtime condition.
func checkKey(key string) {
	if key == "" {
		panic("storage: empty key")
	}
	for _, r := range key {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		panic("storage: key " + key + " may only contain letters and underscores")
	}
}
