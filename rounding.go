package fraction

import (
	"fmt"
	"strings"
)

//go:generate go run scripts/rounding/codegen.go

// RoundingMode type represents a method of rounding used by [Fraction.Fixed]
// to drop digits beyond the requested precision.
// The zero value is [RoundHalfUp].
//
// Rounding is decided by a single guard digit, which is the first digit after
// the requested precision.
// If the guard digit is 0, the value is truncated regardless of the mode.
// Otherwise, each mode decides whether to increment the last kept digit:
//
//	| Mode           | Increments the last digit if              |
//	| -------------- | ----------------------------------------- |
//	| RoundUp        | always                                    |
//	| RoundDown      | never                                     |
//	| RoundCeil      | the value is positive                     |
//	| RoundFloor     | the value is negative                     |
//	| RoundHalfUp    | guard >= 5                                |
//	| RoundHalfDown  | guard > 5                                 |
//	| RoundHalfEven  | guard > 5, or guard = 5 and last is odd   |
//	| RoundHalfOdd   | guard > 5, or guard = 5 and last is even  |
//	| RoundHalfCeil  | guard >= 5                                |
//	| RoundHalfFloor | guard > 5, or guard = 5 and value < 0     |
//
// Incrementing always moves away from zero, as digits are processed
// without the sign.
type RoundingMode uint8

// ParseRoundingMode converts a string to a rounding mode.
// The input string is case-insensitive and may use hyphens or
// an optional "round" prefix:
//
//	half_even
//	HALF_EVEN
//	ROUND_HALF_EVEN
//	half-even
//
// ParseRoundingMode returns an error if the string does not represent
// a rounding mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	code = strings.ReplaceAll(code, "-", "_")
	code = strings.TrimPrefix(code, "round_")
	m, ok := modeLookup[code]
	if !ok {
		return RoundHalfUp, fmt.Errorf("%w: %q", ErrInvalidRoundingMode, s)
	}
	return m, nil
}

// MustParseRoundingMode is like [ParseRoundingMode] but panics if the string
// cannot be parsed.
func MustParseRoundingMode(s string) RoundingMode {
	m, err := ParseRoundingMode(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRoundingMode(%q) failed: %v", s, err))
	}
	return m
}

// IsValid returns true if the rounding mode is one of the predefined constants.
func (m RoundingMode) IsValid() bool {
	return int(m) < len(codeLookup)
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the rounding mode, such as "half_even".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
	return codeLookup[m]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundHalfUp, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [RoundingMode.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", m, ErrInvalidRoundingMode)
	}
	return []byte(m.String()), nil
}

// increment reports whether the last kept digit must be incremented,
// given the guard digit, the last kept digit and the sign of the value.
// Digits are in the range [0, 9].
func (m RoundingMode) increment(guard, last byte, neg bool) (bool, error) {
	switch m {
	case RoundUp:
		return true, nil
	case RoundDown:
		return false, nil
	case RoundCeil:
		return !neg, nil
	case RoundFloor:
		return neg, nil
	case RoundHalfUp:
		return guard >= 5, nil
	case RoundHalfDown:
		return guard > 5, nil
	case RoundHalfEven:
		if guard == 5 {
			return last%2 == 1, nil
		}
		return guard > 5, nil
	case RoundHalfOdd:
		if guard == 5 {
			return last%2 == 0, nil
		}
		return guard > 5, nil
	case RoundHalfCeil:
		if guard == 5 {
			return true, nil
		}
		return guard > 5, nil
	case RoundHalfFloor:
		if guard == 5 {
			return neg, nil
		}
		return guard > 5, nil
	}
	return false, fmt.Errorf("%w: %v", ErrInvalidRoundingMode, m)
}

// Fixed returns a string representation of the fraction with exactly scale
// digits after the decimal point, rounded using the given mode:
//
//	0.13
//	-2.50
//	1
//
// The value is computed with one guard digit using integer division, so
// no floating-point arithmetic is involved and any precision is supported.
// Negative results keep their sign even when all kept digits are zero,
// unless the result is exactly "0".
// See also methods [Fraction.String] and [Fraction.Decimal].
//
// Fixed returns an error if:
//   - the scale is negative;
//   - the rounding mode is not valid.
func (f Fraction) Fixed(scale int, mode RoundingMode) (string, error) {
	s, err := f.fixed(scale, mode)
	if err != nil {
		return "", fmt.Errorf("formatting %v with %v digit(s) after the decimal point: %w", f, scale, err)
	}
	return s, nil
}

func (f Fraction) fixed(scale int, mode RoundingMode) (string, error) {
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoundingMode, mode)
	}
	if scale < 0 {
		return "", fmt.Errorf("%w: negative scale %v", ErrInvalidArgument, scale)
	}
	neg := f.IsNeg()

	// Quotient with a guard digit, truncated toward zero
	q := new(bint).abs(f.numer())
	q.mul(q, pow10(scale+1))
	q.quo(q, f.denom())

	// Digits, with at least one digit before the decimal point
	text := q.string()
	width := max(len(text), scale+2)
	digs := make([]byte, width)
	pad := width - len(text)
	for i := 0; i < len(text); i++ {
		digs[pad+i] = text[i] - '0'
	}

	// Guard digit
	guard := digs[len(digs)-1]
	digs = digs[:len(digs)-1]
	point := len(digs) - scale

	// Rounding
	if guard != 0 {
		last := len(digs) - 1
		inc, err := mode.increment(guard, digs[last], neg)
		if err != nil {
			return "", err
		}
		if inc {
			digs[last]++
		}
		// Carry
		for i := last; i > 0 && digs[i] > 9; i-- {
			digs[i] -= 10
			digs[i-1]++
		}
		if digs[0] > 9 {
			digs[0] -= 10
			digs = append([]byte{1}, digs...)
			point++
		}
	}

	// Writing result
	buf := make([]byte, 0, len(digs)+2)
	if neg && !(scale == 0 && len(digs) == 1 && digs[0] == 0) {
		buf = append(buf, '-')
	}
	for i, d := range digs {
		if i == point && scale > 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, d+'0')
	}
	return string(buf), nil
}
