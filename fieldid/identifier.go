package fieldid

import (
	"fmt"
	"reflect"

	"field-identifier/accessor"
	"field-identifier/identity"
)

// FieldIdentifier names a single field on a single model instance. It is
// immutable after construction and safe for unsynchronized concurrent reads,
// equality checks and hashing.
//
// The identifier holds a non-owning reference to the model: it never copies
// the model and never mutates it.
type FieldIdentifier struct {
	model     any
	fieldName string
	word      uintptr
}

// New builds an identifier from an explicit (model, field name) pair.
//
// The model must be non-nil and reference-classed per identity.FromReflectType;
// value-classed models are rejected because two separately-boxed copies of
// the same value would not share identity, breaking the equality contract.
// The empty field name is valid and preserved as-is.
func New(model any, fieldName string) (FieldIdentifier, error) {
	if model == nil {
		return FieldIdentifier{}, &ArgumentError{Param: "model", Reason: "must not be nil"}
	}

	if class := identity.FromReflectType(reflect.TypeOf(model)); !class.IsReference() {
		return FieldIdentifier{}, &ArgumentError{
			Param:  "model",
			Reason: fmt.Sprintf("%T is a value type; the model must be reference-typed so identifiers can share its identity", model),
		}
	}

	word, ok := identity.PointerOf(model)
	if !ok {
		return FieldIdentifier{}, &ArgumentError{Param: "model", Reason: "must not be nil"}
	}

	return FieldIdentifier{model: model, fieldName: fieldName, word: word}, nil
}

// FromAccessor analyzes an accessor expression, evaluates its target operand
// once, and builds the identifier from the recovered (model, field name)
// pair. The same preconditions as New apply to the recovered model.
func FromAccessor(expr accessor.Expr) (FieldIdentifier, error) {
	model, name, err := accessor.Parse(expr)
	if err != nil {
		return FieldIdentifier{}, err
	}

	return New(model, name)
}

// ForField is the pointer-to-field shorthand for FromAccessor:
// ForField(m, &m.Email) identifies the Email field on m.
func ForField(model any, fieldPtr any) (FieldIdentifier, error) {
	member, err := accessor.FieldOf(model, fieldPtr)
	if err != nil {
		return FieldIdentifier{}, err
	}

	return FromAccessor(member)
}

// Model returns the identical model reference the identifier was built with.
func (id FieldIdentifier) Model() any { return id.model }

// FieldName returns the exact field name the identifier was built with.
func (id FieldIdentifier) FieldName() string { return id.fieldName }

// Equal reports whether other names the same field on the identical model
// instance. Models compare by reference identity, never structurally; field
// names compare byte for byte, case-sensitively.
func (id FieldIdentifier) Equal(other FieldIdentifier) bool {
	return id.word == other.word && id.fieldName == other.fieldName
}

// Hash returns a deterministic combination of the model's identity word and
// the field name. Equal identifiers always hash equal. The value is stable
// only within a single process run and must never be persisted.
func (id FieldIdentifier) Hash() uint64 {
	return identity.Combine(id.word, id.fieldName)
}

// Key is the comparable projection of an identifier for use as a native map
// key: a.Key() == b.Key() exactly when a.Equal(b). It defines no ordering.
type Key struct {
	word uintptr
	name string
}

// Key projects the identifier onto its comparable form.
func (id FieldIdentifier) Key() Key {
	return Key{word: id.word, name: id.fieldName}
}

// String renders a debug form such as "*forms.ContactForm(0xc000012345).Email".
func (id FieldIdentifier) String() string {
	if id.model == nil {
		return "." + id.fieldName
	}

	return fmt.Sprintf("%T(0x%x).%s", id.model, id.word, id.fieldName)
}
