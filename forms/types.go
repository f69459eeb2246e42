// Package forms holds sample form models shared by tests and examples.
package forms

import "time"

// ContactForm is the canonical flat model: one field per primitive kind the
// identifier has to cope with.
type ContactForm struct {
	Email   string
	Name    string
	Age     int
	Consent bool
}

// Address is a nested value-typed model piece.
type Address struct {
	Street  string
	City    string
	ZipCode string
}

// AccountSettings mixes value-typed, struct-typed and pointer-typed fields.
type AccountSettings struct {
	DisplayName string
	Newsletter  bool
	Birthday    time.Time
	Shipping    Address
	Billing     *Address
}
