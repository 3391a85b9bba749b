package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/addressbook"
	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/contact"
)

// RecordBuilder builds test contact records
type RecordBuilder struct {
	name   string
	phones []string
}

// NewRecordBuilder creates a RecordBuilder with defaults
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		name:   "John",
		phones: []string{"1234567890", "5555555555"},
	}
}

// WithName sets the contact name
func (b *RecordBuilder) WithName(name string) *RecordBuilder {
	b.name = name
	return b
}

// WithPhones replaces the phone list
func (b *RecordBuilder) WithPhones(phones ...string) *RecordBuilder {
	b.phones = phones
	return b
}

// WithNoPhones clears the phone list
func (b *RecordBuilder) WithNoPhones() *RecordBuilder {
	b.phones = nil
	return b
}

// Build creates the record, failing the test on invalid input
func (b *RecordBuilder) Build(t *testing.T) *contact.Record {
	t.Helper()

	record, err := contact.NewRecord(b.name)
	require.NoError(t, err)

	for _, phone := range b.phones {
		_, err := record.AddPhone(phone)
		require.NoError(t, err)
	}

	return record
}

// SampleBook returns a book with John (1234567890, 5555555555) and
// Jane (9876543210)
func SampleBook(t *testing.T, opts ...addressbook.Option) *addressbook.AddressBook {
	t.Helper()

	book := addressbook.New(opts...)
	book.AddRecord(NewRecordBuilder().Build(t))
	book.AddRecord(NewRecordBuilder().WithName("Jane").WithPhones("9876543210").Build(t))

	return book
}
