package values

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/errors"
)

// Kind selects the validation rule a Field applies on every assignment
type Kind int

const (
	// KindPlain accepts any value unchanged
	KindPlain Kind = iota
	// KindName requires a non-empty string after trimming
	KindName
	// KindPhone requires exactly 10 decimal digits after trimming
	KindPhone
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindName:
		return "name"
	case KindPhone:
		return "phone"
	default:
		return "unknown"
	}
}

var validate = validator.New()

// Field is a validated value holder. The value is only ever replaced after
// the kind's rule has accepted the candidate.
type Field struct {
	kind  Kind
	value any
}

// NewField creates a Field of the given kind, validating raw immediately
func NewField(kind Kind, raw any) (*Field, error) {
	value, err := check(kind, raw)
	if err != nil {
		return nil, err
	}
	return &Field{kind: kind, value: value}, nil
}

// NewName creates a contact name field
func NewName(raw any) (*Field, error) {
	return NewField(KindName, raw)
}

// NewPhone creates a phone number field. Integers are accepted and
// converted to their base-10 form before the digit check.
func NewPhone(raw any) (*Field, error) {
	return NewField(KindPhone, raw)
}

// MustNewName creates a name field and panics on error (for constants/tests)
func MustNewName(raw any) *Field {
	f, err := NewName(raw)
	if err != nil {
		panic(err)
	}
	return f
}

// MustNewPhone creates a phone field and panics on error (for constants/tests)
func MustNewPhone(raw any) *Field {
	f, err := NewPhone(raw)
	if err != nil {
		panic(err)
	}
	return f
}

// Set validates raw and commits it. On error the previous value is kept.
func (f *Field) Set(raw any) error {
	value, err := check(f.kind, raw)
	if err != nil {
		return err
	}
	f.value = value
	return nil
}

// Kind returns the field's validation kind
func (f *Field) Kind() Kind {
	return f.kind
}

// Value returns the committed value
func (f *Field) Value() any {
	return f.value
}

// Text returns the committed value as a string
func (f *Field) Text() string {
	if s, ok := f.value.(string); ok {
		return s
	}
	return fmt.Sprint(f.value)
}

// String returns the display form of the field
func (f *Field) String() string {
	return f.Text()
}

// Equal checks if two fields have the same kind and value
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.kind == other.kind && reflect.DeepEqual(f.value, other.value)
}

func check(kind Kind, raw any) (any, error) {
	switch kind {
	case KindName:
		return checkName(raw)
	case KindPhone:
		return checkPhone(raw)
	default:
		return raw, nil
	}
}

func checkName(raw any) (string, error) {
	s, ok := asString(raw)
	if !ok {
		return "", invalid(errors.ErrEmptyName, raw)
	}

	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required"); err != nil {
		return "", invalid(errors.ErrEmptyName, raw)
	}

	return s, nil
}

func checkPhone(raw any) (string, error) {
	if digits, ok := asInteger(raw); ok {
		raw = digits
	}

	s, ok := asString(raw)
	if !ok {
		return "", invalid(errors.ErrInvalidPhoneType, raw)
	}

	s = strings.TrimSpace(s)
	if err := validate.Var(s, "len=10,number"); err != nil {
		return "", invalid(errors.ErrInvalidPhoneFormat, raw)
	}

	return s, nil
}

func invalid(kind *errors.AppError, raw any) *errors.AppError {
	return errors.NewValidationError(kind.Code, kind.Message).
		WithDetails(map[string]interface{}{"value": raw})
}

// asString accepts string and named string types
func asString(raw any) (string, bool) {
	if raw == nil {
		return "", false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// asInteger renders any signed or unsigned integer in base 10
func asInteger(raw any) (string, bool) {
	if raw == nil {
		return "", false
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	default:
		return "", false
	}
}
