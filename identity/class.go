package identity

import "reflect"

//go:generate go tool stringer -type=ClassEnum -output=class_string.go

type ClassEnum int

const (
	_ ClassEnum = iota // skip zero value, use it as a default (invalid) value for ClassEnum

	ClassReference
	ClassValue

	// ClassTotal is a constant that represents the total number of classes defined
	ClassTotal = int(iota)
)

func (c ClassEnum) IsReference() bool {
	return c == ClassReference
}

// FromReflectType classifies a type by its assignment semantics.
//
// Reference classes are the kinds whose values keep a stable, per-instance
// identity word across assignments: pointers, maps, channels and unsafe
// pointers. Everything else is copied on assignment and classified as a
// value. Slices land on the value side: the header is copied even though
// the backing array is shared, so a slice has no stable identity. Funcs
// land on the value side too: reflect exposes only the code pointer, which
// distinct closure instances created from one function literal share, so a
// func value has no per-instance identity either.
func FromReflectType(rtype reflect.Type) ClassEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return ClassValue
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return ClassReference
	}
}
