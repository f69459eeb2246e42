// Package msgstore tracks validation messages per field, keyed by field
// identifier. It is the minimal collaborator the identifier contract exists
// for: identifiers go in as opaque keys, message lists come out.
package msgstore

import "field-identifier/fieldid"

// Store maps identified fields to their validation messages. Messages for a
// field keep insertion order.
//
// A Store is not safe for concurrent mutation; callers synchronize around
// writes, the same way they already synchronize mutation of the models.
type Store struct {
	messages map[fieldid.Key][]string
}

func New() *Store {
	return &Store{messages: make(map[fieldid.Key][]string)}
}

// Add appends a message to the list tracked for id's field.
func (s *Store) Add(id fieldid.FieldIdentifier, message string) {
	if s.messages == nil {
		s.messages = make(map[fieldid.Key][]string)
	}

	key := id.Key()
	s.messages[key] = append(s.messages[key], message)
}

// Messages returns the messages tracked for id's field, nil when none.
func (s *Store) Messages(id fieldid.FieldIdentifier) []string {
	return s.messages[id.Key()]
}

// Clear drops all messages tracked for id's field.
func (s *Store) Clear(id fieldid.FieldIdentifier) {
	delete(s.messages, id.Key())
}

// Len reports how many fields currently have messages.
func (s *Store) Len() int {
	return len(s.messages)
}
