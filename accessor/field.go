package accessor

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotAStructPtr = errors.New("model must be a non-nil pointer to a struct")
	ErrNotAField     = errors.New("pointer does not address a direct field of the model")
)

// FieldOf builds the Member node equivalent to reading the field addressed
// by fieldPtr off model. The field is located by matching the pointer
// against the addresses (and declared types) of the model's direct fields.
// An embedded field counts as a direct field and matches under its own
// name; members promoted from it are deliberately not searched, since the
// identifier resolves exactly one level of member access.
func FieldOf(model any, fieldPtr any) (*Member, error) {
	mv := reflect.ValueOf(model)
	if mv.Kind() != reflect.Ptr || mv.IsNil() || mv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %T", ErrNotAStructPtr, model)
	}

	fv := reflect.ValueOf(fieldPtr)
	if fv.Kind() != reflect.Ptr || fv.IsNil() {
		return nil, fmt.Errorf("%w: field pointer is %T", ErrNotAField, fieldPtr)
	}

	elem := mv.Elem()
	want := fv.Pointer()
	wantType := fv.Type().Elem()

	for i := range elem.NumField() {
		sf := elem.Type().Field(i)
		if elem.Field(i).Addr().Pointer() == want && sf.Type == wantType {
			return &Member{Target: &Constant{Value: model}, Name: sf.Name}, nil
		}
	}

	return nil, fmt.Errorf("%w: %T within %T", ErrNotAField, fieldPtr, model)
}
