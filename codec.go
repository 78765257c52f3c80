package fraction

import (
	"database/sql/driver"
	"fmt"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted fractions and unquoted decimal numbers are accepted:
//
//	"1 3/4"
//	"-3/4"
//	1.75
//
// See also constructors [Parse] and [ParseDecimal].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (f *Fraction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var err error
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		*f, err = Parse(string(data[1 : len(data)-1]))
	} else {
		*f, err = ParseDecimal(string(data))
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Fraction{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted string.
// See also method [Fraction.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f Fraction) MarshalJSON() ([]byte, error) {
	s := f.String()
	data := make([]byte, 0, len(s)+2)
	data = append(data, '"')
	data = append(data, s...)
	data = append(data, '"')
	return data, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Fraction{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Fraction.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (f Fraction) AppendText(text []byte) ([]byte, error) {
	return append(text, f.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The binary form is the same as the text form.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (f *Fraction) UnmarshalBinary(data []byte) error {
	return f.UnmarshalText(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The binary form is the same as the text form.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (f Fraction) MarshalBinary() ([]byte, error) {
	return f.MarshalText()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also constructor [Parse].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (f *Fraction) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*f, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Fraction{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string.
// See also method [Fraction.String].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (f Fraction) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, f.bsonString(), nil
}

// parseBSONString parses a BSON string to a fraction.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Fraction, error) {
	if len(data) < 4 {
		return Fraction{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidArgument, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Fraction{}, fmt.Errorf("%w: invalid string length %v", ErrInvalidArgument, l)
	}
	if data[l+4-1] != 0 {
		return Fraction{}, fmt.Errorf("%w: invalid null terminator %v", ErrInvalidArgument, data[l+4-1])
	}
	s := string(data[4 : l+4-1])
	return Parse(s)
}

// bsonString returns the BSON string representation of the fraction.
// The byte order of the result is little-endian.
func (f Fraction) bsonString() []byte {
	s := f.String()
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
// Strings are parsed with [Parse], integers are converted exactly,
// and floats are converted with [NewFromFloat64].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*f, err = Parse(value)
	case []byte:
		*f, err = Parse(string(value))
	case int64:
		*f, err = New(value, 1)
	case float64:
		*f, err = NewFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Fraction{}, NullFraction{}, Fraction{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Fraction{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Fraction.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// NullFraction represents a fraction that can be null.
// Its zero value is null.
// NullFraction is not thread-safe.
type NullFraction struct {
	Fraction Fraction
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Fraction.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFraction) Scan(value any) error {
	if value == nil {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Fraction.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFraction) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Fraction.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Fraction.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullFraction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.UnmarshalJSON(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Fraction.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullFraction) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Fraction.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Fraction.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullFraction) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Fraction.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullFraction) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Fraction.MarshalBSONValue()
}
