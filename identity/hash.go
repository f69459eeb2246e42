package identity

import (
	"encoding/binary"
	"hash/fnv"
	"reflect"
)

// PointerOf returns the identity word of a reference-classed value.
// It reports false for value-classed inputs, nil, and typed-nil references,
// none of which carry a usable identity.
func PointerOf(model any) (uintptr, bool) {
	v := reflect.ValueOf(model)
	if !v.IsValid() || !FromReflectType(v.Type()).IsReference() || v.IsNil() {
		return 0, false
	}

	return v.Pointer(), true
}

// Combine folds an identity word and a field name into a single FNV-1a hash.
// It is a pure function: equal inputs always produce equal outputs. The
// result is only meaningful within a single process run, since identity
// words are addresses.
func Combine(ptr uintptr, name string) uint64 {
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(ptr))

	h := fnv.New64a()
	h.Write(word[:])
	h.Write([]byte(name))

	return h.Sum64()
}
