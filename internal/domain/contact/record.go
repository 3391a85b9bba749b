package contact

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/errors"
	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/values"
)

// Record is a contact entry: one name and an ordered list of phone numbers.
// Phones are owned by the record and never shared with another one.
type Record struct {
	id     uuid.UUID
	name   *values.Field
	phones []*values.Field
}

// NewRecord creates a record with a validated name and no phones
func NewRecord(name string) (*Record, error) {
	n, err := values.NewName(name)
	if err != nil {
		return nil, err
	}

	return &Record{
		id:   uuid.New(),
		name: n,
	}, nil
}

// ID identifies this record instance. The address book keys by name, not ID.
func (r *Record) ID() uuid.UUID {
	return r.id
}

// Name returns the record's name field. Setting it does not re-key any
// address book the record was already added to.
func (r *Record) Name() *values.Field {
	return r.name
}

// Phones returns the phones in insertion order
func (r *Record) Phones() []*values.Field {
	phones := make([]*values.Field, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// AddPhone validates raw and appends it. Nothing is appended on error.
func (r *Record) AddPhone(raw string) (*values.Field, error) {
	phone, err := values.NewPhone(raw)
	if err != nil {
		return nil, err
	}

	r.phones = append(r.phones, phone)
	return phone, nil
}

// RemovePhone removes the first phone equal to raw and reports whether one
// was removed. raw is compared as given, without trimming.
func (r *Record) RemovePhone(raw string) bool {
	i := r.indexOf(raw)
	if i < 0 {
		return false
	}

	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

// EditPhone replaces the value of the first phone equal to old. The phone
// keeps its position; if next fails validation the old value stays.
func (r *Record) EditPhone(old, next string) error {
	phone := r.FindPhone(old)
	if phone == nil {
		return errors.NewNotFoundError(errors.ErrPhoneNotFound.Code, errors.ErrPhoneNotFound.Message).
			WithDetails(map[string]interface{}{"phone": old, "contact": r.name.Text()})
	}

	return phone.Set(next)
}

// FindPhone returns the first phone equal to raw, or nil
func (r *Record) FindPhone(raw string) *values.Field {
	if i := r.indexOf(raw); i >= 0 {
		return r.phones[i]
	}
	return nil
}

func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.Text() == raw {
			return i
		}
	}
	return -1
}

// String renders "Contact name: <name>, phones: <p1>; <p2>"
func (r *Record) String() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.Text()
	}
	return "Contact name: " + r.name.Text() + ", phones: " + strings.Join(parts, "; ")
}
