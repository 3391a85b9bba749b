package values

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/errors"
)

type label string

func TestNewName(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected string
		wantErr  bool
	}{
		{
			name:     "plain name",
			raw:      "John",
			expected: "John",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  Jane Doe \t",
			expected: "Jane Doe",
		},
		{
			name:     "named string type",
			raw:      label("Alice"),
			expected: "Alice",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			raw:     " \n\t ",
			wantErr: true,
		},
		{
			name:    "integer",
			raw:     42,
			wantErr: true,
		},
		{
			name:    "nil",
			raw:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := NewName(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, field)
				assert.True(t, errors.Is(err, domainerrors.ErrEmptyName))
				assert.Equal(t, "empty name", err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, KindName, field.Kind())
			assert.Equal(t, tt.expected, field.Value())
			assert.Equal(t, tt.expected, field.String())
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected string
		wantErr  error
	}{
		{
			name:     "ten digits",
			raw:      "1234567890",
			expected: "1234567890",
		},
		{
			name:     "leading zero kept",
			raw:      "0001112222",
			expected: "0001112222",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  5555555555 ",
			expected: "5555555555",
		},
		{
			name:     "int",
			raw:      1234567890,
			expected: "1234567890",
		},
		{
			name:     "int64",
			raw:      int64(9876543210),
			expected: "9876543210",
		},
		{
			name:     "uint64",
			raw:      uint64(5551234567),
			expected: "5551234567",
		},
		{
			name:    "too few digits",
			raw:     "12345",
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "too many digits",
			raw:     "12345678901",
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "separators",
			raw:     "123-456-789",
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "inner space",
			raw:     "12345 67890",
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "letters",
			raw:     "abcdefghij",
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "negative integer",
			raw:     -123456789,
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "short integer",
			raw:     12345,
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: domainerrors.ErrInvalidPhoneFormat,
		},
		{
			name:    "float",
			raw:     1234567890.0,
			wantErr: domainerrors.ErrInvalidPhoneType,
		},
		{
			name:    "bool",
			raw:     true,
			wantErr: domainerrors.ErrInvalidPhoneType,
		},
		{
			name:    "nil",
			raw:     nil,
			wantErr: domainerrors.ErrInvalidPhoneType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := NewPhone(tt.raw)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, field)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.True(t, domainerrors.IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, KindPhone, field.Kind())
			assert.Equal(t, tt.expected, field.Value())
			assert.Equal(t, tt.expected, field.Text())
		})
	}
}

func TestField_SetKeepsPreviousValueOnError(t *testing.T) {
	phone := MustNewPhone("1234567890")

	err := phone.Set("123")
	require.Error(t, err)
	assert.Equal(t, "invalid phone format", err.Error())
	assert.Equal(t, "1234567890", phone.Value())

	err = phone.Set(3.14)
	require.Error(t, err)
	assert.Equal(t, "invalid phone type", err.Error())
	assert.Equal(t, "1234567890", phone.Value())

	require.NoError(t, phone.Set(" 1112223333 "))
	assert.Equal(t, "1112223333", phone.Value())

	name := MustNewName("John")
	require.Error(t, name.Set("   "))
	assert.Equal(t, "John", name.Value())

	require.NoError(t, name.Set(" Johnny "))
	assert.Equal(t, "Johnny", name.Value())
}

func TestField_ErrorDetails(t *testing.T) {
	_, err := NewPhone("555-1234")
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_PHONE_FORMAT", appErr.Code)
	assert.Equal(t, "555-1234", appErr.Details["value"])
}

func TestPlainField(t *testing.T) {
	field, err := NewField(KindPlain, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, field.Value())
	assert.Equal(t, "42", field.String())

	require.NoError(t, field.Set(""))
	assert.Equal(t, "", field.Value())

	require.NoError(t, field.Set(nil))
	assert.Nil(t, field.Value())
}

func TestField_Equal(t *testing.T) {
	a := MustNewPhone("1234567890")
	b := MustNewPhone(1234567890)
	c := MustNewPhone("5555555555")
	plain, err := NewField(KindPlain, "1234567890")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(plain))
	assert.False(t, a.Equal(nil))

	var none *Field
	assert.True(t, none.Equal(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "name", KindName.String())
	assert.Equal(t, "phone", KindPhone.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNewName("") })
	assert.Panics(t, func() { MustNewPhone("12") })
	assert.NotPanics(t, func() { MustNewPhone("0123456789") })
}
