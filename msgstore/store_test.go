package msgstore_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-identifier/fieldid"
	"field-identifier/forms"
	"field-identifier/msgstore"
)

func TestStoreKeysByModelAndField(t *testing.T) {
	m1 := &forms.ContactForm{}
	m2 := &forms.ContactForm{}

	email1, err := fieldid.New(m1, "Email")
	require.NoError(t, err)
	email2, err := fieldid.New(m2, "Email")
	require.NoError(t, err)
	name1, err := fieldid.New(m1, "Name")
	require.NoError(t, err)

	store := msgstore.New()
	store.Add(email1, "is required")
	store.Add(email1, "must contain @")
	store.Add(name1, "is required")

	// a separately-constructed identifier for m1.Email reaches the same entry
	sameEmail1, err := fieldid.New(m1, "Email")
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"is required", "must contain @"}, store.Messages(sameEmail1)); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}

	// the structurally identical model m2 has its own bucket
	assert.Nil(t, store.Messages(email2))
	assert.Equal(t, 2, store.Len())

	store.Clear(email1)
	assert.Nil(t, store.Messages(email1))
	assert.Equal(t, []string{"is required"}, store.Messages(name1))
	assert.Equal(t, 1, store.Len())
}

func Example() {
	profile := &forms.AccountSettings{}

	displayName, _ := fieldid.ForField(profile, &profile.DisplayName)
	birthday, _ := fieldid.ForField(profile, &profile.Birthday)

	store := msgstore.New()
	store.Add(displayName, "must not be empty")
	store.Add(birthday, "must be in the past")

	fmt.Println(displayName.FieldName(), store.Messages(displayName))
	fmt.Println(birthday.FieldName(), store.Messages(birthday))

	// Output:
	// DisplayName [must not be empty]
	// Birthday [must be in the past]
}
