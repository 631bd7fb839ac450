package hashmap

// FNV-1a constants, widened to the table's uint64 hash type.
const (
	fnvBasis uint64 = 2166136261
	fnvPrime uint64 = 16777619
)

// StringHash is the default hash for string keys: FNV-1a over the key's
// bytes.
func StringHash(key string) uint64 {
	h := fnvBasis
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime
	}
	return h
}

// BytesHash is FNV-1a over a raw byte key.
func BytesHash(key []byte) uint64 {
	h := fnvBasis
	for _, b := range key {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return h
}

// IntHash is the default hash for integer keys: the key itself.
func IntHash[K ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](key K) uint64 {
	return uint64(key)
}

// Equals is the default equality predicate for comparable keys.
func Equals[K comparable](a, b K) bool {
	return a == b
}
