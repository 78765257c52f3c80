package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidNumerator is returned when a numerator is not an integer.
	ErrInvalidNumerator = errors.New("invalid numerator")
	// ErrInvalidDenominator is returned when a denominator is not an integer
	// or is less than 1, including division by a zero fraction.
	ErrInvalidDenominator = errors.New("invalid denominator")
	// ErrInvalidArgument is returned when a text or a float cannot be converted
	// to a fraction.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRoundingMode is returned when a rounding mode is not one of
	// the predefined constants.
	ErrInvalidRoundingMode = errors.New("invalid rounding mode")
)

var (
	fractionRegexp = regexp.MustCompile(`^(-?\d+)(?:(?: (\d+))?/(\d+))?$`)
	decimalRegexp  = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
)

// floatDigits is the number of fractional digits kept by [NewFromFloat64].
const floatDigits = 8

// Fraction type represents an exact rational number num / den.
// Its zero value corresponds to 0.
//
// A fraction is always kept in canonical form: the denominator is positive,
// the numerator and the denominator have no common factors, and zero is
// represented as 0/1.
// Fraction is designed to be safe for concurrent use by multiple goroutines.
type Fraction struct {
	num *bint // signed numerator
	den *bint // positive denominator
}

// newFractionUnsafe creates a new fraction without validation and simplification.
// Use it only if you are absolutely sure that the arguments are canonical.
func newFractionUnsafe(num, den *bint) Fraction {
	return Fraction{num: num, den: den}
}

// newFractionSafe validates the denominator and simplifies the fraction.
// It takes ownership of num and den.
func newFractionSafe(num, den *bint) (Fraction, error) {
	if den.sign() < 1 {
		return Fraction{}, fmt.Errorf("%w: %v is less than 1", ErrInvalidDenominator, den.string())
	}
	// Canonical zero
	if num.sign() == 0 {
		return newFractionUnsafe(bzero, bone), nil
	}
	// Simplification
	g := gcd(num, den)
	if g.cmp(bone) != 0 {
		num.quo(num, g)
		den.quo(den, g)
	}
	return newFractionUnsafe(num, den), nil
}

// New returns a fraction equal to num / den, reduced to lowest terms.
//
// New returns an error if the denominator is less than 1.
func New(num, den int64) (Fraction, error) {
	f, err := newFractionSafe(newBint(num), newBint(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("constructing [%v/%v]: %w", num, den, err)
	}
	return f, nil
}

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFromStrings returns a fraction equal to num / den, where both arguments
// are integers in decimal notation with an optional sign:
//
//	42
//	-42
//	+42
//
// NewFromStrings returns an error if:
//   - the numerator is not an integer string;
//   - the denominator is not an integer string;
//   - the denominator is less than 1.
func NewFromStrings(num, den string) (Fraction, error) {
	f, err := newFromStrings(num, den)
	if err != nil {
		return Fraction{}, fmt.Errorf("constructing [%v/%v]: %w", num, den, err)
	}
	return f, nil
}

func newFromStrings(num, den string) (Fraction, error) {
	n, ok := parseBint(num)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidNumerator, num)
	}
	d, ok := parseBint(den)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidDenominator, den)
	}
	return newFractionSafe(n, d)
}

// NewFromBigInt returns a fraction equal to num / den.
// The arguments are copied and can be modified afterwards.
//
// NewFromBigInt returns an error if:
//   - the numerator is nil;
//   - the denominator is nil or less than 1.
func NewFromBigInt(num, den *big.Int) (Fraction, error) {
	switch {
	case num == nil:
		return Fraction{}, fmt.Errorf("constructing fraction: %w: nil", ErrInvalidNumerator)
	case den == nil:
		return Fraction{}, fmt.Errorf("constructing fraction: %w: nil", ErrInvalidDenominator)
	}
	f, err := newFractionSafe((*bint)(num).clone(), (*bint)(den).clone())
	if err != nil {
		return Fraction{}, fmt.Errorf("constructing [%v/%v]: %w", num, den, err)
	}
	return f, nil
}

// NewFromRat converts a rational number from the standard library to a fraction.
// See also method [Fraction.Rat].
//
// NewFromRat returns an error if the argument is nil.
func NewFromRat(r *big.Rat) (Fraction, error) {
	if r == nil {
		return Fraction{}, fmt.Errorf("converting rat: %w: nil", ErrInvalidArgument)
	}
	return NewFromBigInt(r.Num(), r.Denom())
}

// NewFromDecimal converts a decimal to a fraction equal to coef / 10^scale.
// The conversion is exact.
// See also method [Fraction.Decimal].
func NewFromDecimal(d decimal.Decimal) Fraction {
	num := (*bint)(new(big.Int).SetUint64(d.Coef()))
	if d.IsNeg() {
		num.neg(num)
	}
	den := pow10(d.Scale()).clone()
	f, err := newFractionSafe(num, den)
	if err != nil {
		// The denominator is a power of 10 and is always positive.
		panic(fmt.Sprintf("NewFromDecimal(%v) failed: %v", d, err))
	}
	return f
}

// NewFromFloat64 converts a float to a fraction.
// Integral floats are converted exactly.
// Other floats are first rounded to 8 digits after the decimal point to
// suppress binary floating-point representation noise, so 0.1 becomes 1/10.
// See also method [Fraction.Float64].
//
// NewFromFloat64 returns an error if the float is a special value (NaN or Inf).
func NewFromFloat64(f float64) (Fraction, error) {
	r, err := newFromFloat64(f)
	if err != nil {
		return Fraction{}, fmt.Errorf("converting float: %w", err)
	}
	return r, nil
}

func newFromFloat64(f float64) (Fraction, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fraction{}, fmt.Errorf("%w: special value %v", ErrInvalidArgument, f)
	}
	// Integral value
	if f == math.Trunc(f) {
		num, _ := new(big.Float).SetFloat64(f).Int(nil)
		return newFractionSafe((*bint)(num), bone.clone())
	}
	// Fractional value
	s := strconv.FormatFloat(f, 'f', floatDigits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return parseDecimal(s)
}

// ParseDecimal converts a decimal string to an exact fraction.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//
// The denominator of the result before simplification is 10^k,
// where k is the number of digits after the decimal point.
//
// Unlike [NewFromFloat64], which rounds to 8 digits after the decimal
// point, ParseDecimal keeps every digit of the input.
//
// ParseDecimal returns an error if the string does not represent
// a decimal number.
// Scientific notation is not supported.
func ParseDecimal(s string) (Fraction, error) {
	f, err := parseDecimal(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing decimal: %w", err)
	}
	return f, nil
}

func parseDecimal(s string) (Fraction, error) {
	if !decimalRegexp.MatchString(s) {
		return Fraction{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidArgument, s)
	}
	scale := 0
	if pos := strings.IndexByte(s, '.'); pos >= 0 {
		scale = len(s) - pos - 1
		s = s[:pos] + s[pos+1:]
	}
	num, ok := parseBint(s)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidArgument, s)
	}
	return newFractionSafe(num, pow10(scale).clone())
}

// Parse converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	7
//	-7
//	3/4
//	-3/4
//	1 3/4
//	-1 3/4
//
// The last two formats are mixed numbers.
// The fractional part of a mixed number takes the sign of its whole part,
// so "-1 3/4" is equal to -7/4.
// See also method [Fraction.String].
//
// Parse returns an error if:
//   - the string does not match any of the formats above;
//   - the denominator is less than 1.
func Parse(s string) (Fraction, error) {
	f, err := parse(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing fraction: %w", err)
	}
	return f, nil
}

func parse(s string) (Fraction, error) {
	m := fractionRegexp.FindStringSubmatch(s)
	if m == nil {
		return Fraction{}, fmt.Errorf("%w: %q is not a fraction", ErrInvalidArgument, s)
	}
	whole, num, den := m[1], m[2], m[3]
	switch {
	case den == "":
		// Whole number
		return newFromStrings(whole, "1")
	case num == "":
		// Simple fraction
		return newFromStrings(whole, den)
	}
	// Mixed number
	w, err := newFromStrings(whole, "1")
	if err != nil {
		return Fraction{}, err
	}
	r, err := newFromStrings(num, den)
	if err != nil {
		return Fraction{}, err
	}
	if strings.HasPrefix(whole, "-") {
		r = r.Neg()
	}
	return w.add(r)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return f
}

// numer returns the numerator without copying.
// The result must not be modified.
func (f Fraction) numer() *bint {
	if f.num == nil {
		return bzero
	}
	return f.num
}

// denom returns the denominator without copying.
// The result must not be modified.
func (f Fraction) denom() *bint {
	if f.den == nil {
		return bone
	}
	return f.den
}

// Num returns a copy of the numerator.
// The sign of the fraction is carried by the numerator.
func (f Fraction) Num() *big.Int {
	return f.numer().clone().big()
}

// Denom returns a copy of the denominator, which is always positive.
func (f Fraction) Denom() *big.Int {
	return f.denom().clone().big()
}

// Rat returns the fraction as a rational number from the standard library.
// See also constructor [NewFromRat].
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac(f.numer().big(), f.denom().big())
}

// Float64 returns the nearest binary floating-point number.
// The second result reports whether the conversion is exact.
// See also constructor [NewFromFloat64].
//
// This conversion may lose data, as float64 has a smaller precision
// than the fraction type.
func (f Fraction) Float64() (x float64, exact bool) {
	return f.Rat().Float64()
}

// Decimal returns the fraction rounded to the given number of digits after
// the decimal point as a decimal.
// See also constructor [NewFromDecimal] and method [Fraction.Fixed].
//
// Decimal returns an error if:
//   - the rounding mode is not valid;
//   - the scale is negative;
//   - the result cannot be represented as a decimal.
func (f Fraction) Decimal(scale int, mode RoundingMode) (decimal.Decimal, error) {
	s, err := f.fixed(scale, mode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	return d, nil
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return f.numer().sign()
}

// IsNeg returns:
//
//	true  if f < 0
//	false otherwise
func (f Fraction) IsNeg() bool {
	return f.Sign() < 0
}

// IsPos returns:
//
//	true  if f > 0
//	false otherwise
func (f Fraction) IsPos() bool {
	return f.Sign() > 0
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fraction) IsZero() bool {
	return f.Sign() == 0
}

// IsOne returns:
//
//	true  if f = -1 or f = 1
//	false otherwise
func (f Fraction) IsOne() bool {
	return f.IsInt() && f.numer().cmpAbs(bone) == 0
}

// IsInt returns true if the denominator is equal to 1.
func (f Fraction) IsInt() bool {
	return f.denom().cmp(bone) == 0
}

// Abs returns the absolute value of the fraction.
func (f Fraction) Abs() Fraction {
	if !f.IsNeg() {
		return f
	}
	return f.Neg()
}

// Neg returns a fraction with the opposite sign.
func (f Fraction) Neg() Fraction {
	if f.IsZero() {
		return f
	}
	return newFractionUnsafe(new(bint).neg(f.numer()), f.denom())
}

// Inv returns the multiplicative inverse of the fraction.
//
// Inv returns an error if the fraction is zero.
func (f Fraction) Inv() (Fraction, error) {
	g, err := f.inv()
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [1 / %v]: %w", f, err)
	}
	return g, nil
}

func (f Fraction) inv() (Fraction, error) {
	num, den := f.denom().clone(), f.numer().clone()
	if den.sign() < 0 {
		num.neg(num)
		den.neg(den)
	}
	return newFractionSafe(num, den)
}

// Mul returns the product of fractions f and g.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	h, err := f.mul(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v * %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) mul(g Fraction) (Fraction, error) {
	num := new(bint).mul(f.numer(), g.numer())
	den := new(bint).mul(f.denom(), g.denom())
	return newFractionSafe(num, den)
}

// Quo returns the quotient of fractions f and g.
//
// Quo returns an error if the divisor is zero.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	h, err := f.quo(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) quo(g Fraction) (Fraction, error) {
	num := new(bint).mul(f.numer(), g.denom())
	den := new(bint).mul(f.denom(), g.numer())
	// Sign is carried by the numerator
	if den.sign() < 0 {
		num.neg(num)
		den.neg(den)
	}
	return newFractionSafe(num, den)
}

// Add returns the sum of fractions f and g.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	h, err := f.add(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v + %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) add(g Fraction) (Fraction, error) {
	num := new(bint).mul(f.numer(), g.denom())
	num.add(num, new(bint).mul(g.numer(), f.denom()))
	den := new(bint).mul(f.denom(), g.denom())
	return newFractionSafe(num, den)
}

// Sub returns the difference between fractions f and g.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	h, err := f.sub(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v - %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) sub(g Fraction) (Fraction, error) {
	num := new(bint).mul(f.numer(), g.denom())
	num.sub(num, new(bint).mul(g.numer(), f.denom()))
	den := new(bint).mul(f.denom(), g.denom())
	return newFractionSafe(num, den)
}

// Pow returns the fraction f raised to the integer power.
// Negative powers are computed as powers of the inverse.
// Pow(0) is 1 for any fraction, including zero.
//
// Pow returns an error if the fraction is zero and the power is negative.
func (f Fraction) Pow(power int) (Fraction, error) {
	g, err := f.pow(power)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v^%v]: %w", f, power, err)
	}
	return g, nil
}

func (f Fraction) pow(power int) (Fraction, error) {
	if power < 0 {
		var err error
		f, err = f.inv()
		if err != nil {
			return Fraction{}, err
		}
	}
	// Abs keeps math.MinInt positive
	e := new(big.Int).Abs(big.NewInt(int64(power)))
	// Powers of coprime integers are coprime
	num := new(big.Int).Exp(f.numer().big(), e, nil)
	den := new(big.Int).Exp(f.denom().big(), e, nil)
	return newFractionSafe((*bint)(num), (*bint)(den))
}

// Cmp compares fractions and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
//
// Both numerators are scaled to the least common multiple of the
// denominators before comparison.
func (f Fraction) Cmp(g Fraction) int {
	fd, gd := f.denom(), g.denom()
	m := lcm(fd, gd)
	x := new(bint).quo(m, fd)
	x.mul(x, f.numer())
	y := new(bint).quo(m, gd)
	y.mul(y, g.numer())
	return x.sub(x, y).sign()
}

// Gt returns true if f > g.
func (f Fraction) Gt(g Fraction) bool {
	return f.Cmp(g) == 1
}

// Gte returns true if f >= g.
func (f Fraction) Gte(g Fraction) bool {
	return f.Cmp(g) >= 0
}

// Lt returns true if f < g.
func (f Fraction) Lt(g Fraction) bool {
	return f.Cmp(g) == -1
}

// Lte returns true if f <= g.
func (f Fraction) Lte(g Fraction) bool {
	return f.Cmp(g) <= 0
}

// Eq returns true if f = g.
// See also method [Fraction.SameValueAs].
func (f Fraction) Eq(g Fraction) bool {
	return f.Cmp(g) == 0
}

// SameValueAs returns true if fractions have equal numerators and
// equal denominators.
// Since fractions are always canonical, the result is the same as of
// [Fraction.Eq], but no common denominator is computed.
func (f Fraction) SameValueAs(g Fraction) bool {
	return f.numer().cmp(g.numer()) == 0 && f.denom().cmp(g.denom()) == 0
}

// Min returns the smaller fraction.
func (f Fraction) Min(g Fraction) Fraction {
	if f.Lte(g) {
		return f
	}
	return g
}

// Max returns the larger fraction.
func (f Fraction) Max(g Fraction) Fraction {
	if f.Gte(g) {
		return f
	}
	return g
}

// String implements the [fmt.Stringer] interface and returns
// the shortest string representation of a fraction:
//
//	1
//	-3
//	3/4
//	-3/4
//	1 3/4
//	-1 3/4
//
// Fractions with an absolute value greater than 1 are formatted as
// mixed numbers. See also constructor [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	num, den := f.numer(), f.denom()

	// Integer
	if f.IsInt() {
		return num.string()
	}

	// Simple fraction
	if num.cmpAbs(den) < 0 {
		return num.string() + "/" + den.string()
	}

	// Mixed number
	w, r := new(bint), new(bint)
	w.quoRem(num, den, r)
	r.abs(r)
	return w.string() + " " + r.string() + "/" + den.string()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description                 |
//	| ------ | -------- | --------------------------- |
//	| %s, %v | 1 1/4    | Fraction                    |
//	| %q     | "1 1/4"  | Quoted fraction             |
//	| %f     | 1.250000 | Decimal, rounding half up   |
//
// The '-' format flag can be used with all verbs.
// The '0' format flag can be used with the %f verb.
//
// Precision is only supported for the %f verb.
// The default precision is 6.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
		}
		text, _ = f.fixed(prec, RoundHalfUp)
	case 'q', 'Q':
		text = `"` + f.String() + `"`
	default:
		text = f.String()
	}

	// Calculating padding
	width := len(text)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && (verb == 'f' || verb == 'F'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	for range lspaces {
		buf = append(buf, ' ')
	}

	// Sign goes before leading zeros
	if lzeros > 0 && strings.HasPrefix(text, "-") {
		buf = append(buf, '-')
		text = text[1:]
	}

	// Leading zeros
	for range lzeros {
		buf = append(buf, '0')
	}

	buf = append(buf, text...)

	// Trailing spaces
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fraction.Fraction="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
