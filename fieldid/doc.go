// Package fieldid provides the identifier used to track per-field state in
// the forms subsystem.
//
// A FieldIdentifier pairs a reference to a model instance with a field name:
//   - equality is reference identity of the model plus ordinal, case-sensitive
//     comparison of the field name
//   - hashing combines the model's identity word with the name's bytes
//   - Key projects the pair onto a comparable value for native map keys
//
// Identifiers are built directly with New, or from an accessor expression
// with FromAccessor, or from a pointer to a field with ForField. Construction
// either fully succeeds with an immutable identifier or fails with an error;
// there is no partial construction and no sentinel identifier.
package fieldid
