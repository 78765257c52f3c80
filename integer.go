package fraction

import (
	"fmt"
	"math/big"
)

// bint (Big INTeger) is a wrapper around big.Int.
// Values referenced by a Fraction are never mutated after construction.
type bint big.Int

var (
	bzero = newBint(0)
	bone  = newBint(1)
	bten  = newBint(10)
)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = [...]*bint{
	newBint(1),                            // 10^0
	newBint(10),                           // 10^1
	newBint(100),                          // 10^2
	newBint(1_000),                        // 10^3
	newBint(10_000),                       // 10^4
	newBint(100_000),                      // 10^5
	newBint(1_000_000),                    // 10^6
	newBint(10_000_000),                   // 10^7
	newBint(100_000_000),                  // 10^8
	newBint(1_000_000_000),                // 10^9
	newBint(10_000_000_000),               // 10^10
	newBint(100_000_000_000),              // 10^11
	newBint(1_000_000_000_000),            // 10^12
	newBint(10_000_000_000_000),           // 10^13
	newBint(100_000_000_000_000),          // 10^14
	newBint(1_000_000_000_000_000),        // 10^15
	newBint(10_000_000_000_000_000),       // 10^16
	newBint(100_000_000_000_000_000),      // 10^17
	newBint(1_000_000_000_000_000_000),    // 10^18
	mustParseBint("10000000000000000000"), // 10^19
}

func newBint(x int64) *bint {
	return (*bint)(new(big.Int).SetInt64(x))
}

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := parseBint(s)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	return z
}

// parseBint converts a string of decimal digits with an optional sign to *big.Int.
func parseBint(s string) (*bint, bool) {
	if !isIntString(s) {
		return nil, false
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return (*bint)(z), true
}

// isIntString reports whether s matches [+-]?[0-9]+.
func isIntString(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (z *bint) big() *big.Int {
	return (*big.Int)(z)
}

// clone returns a copy of z that does not share memory with z.
func (z *bint) clone() *bint {
	return (*bint)(new(big.Int).Set(z.big()))
}

func (z *bint) sign() int {
	return z.big().Sign()
}

func (z *bint) cmp(x *bint) int {
	return z.big().Cmp(x.big())
}

func (z *bint) cmpAbs(x *bint) int {
	return z.big().CmpAbs(x.big())
}

func (z *bint) string() string {
	return z.big().String()
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) *bint {
	z.big().Abs(x.big())
	return z
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) *bint {
	z.big().Neg(x.big())
	return z
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) *bint {
	z.big().Add(x.big(), y.big())
	return z
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) *bint {
	z.big().Sub(x.big(), y.big())
	return z
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) *bint {
	z.big().Mul(x.big(), y.big())
	return z
}

// quo calculates z = x / y truncated toward zero.
func (z *bint) quo(x, y *bint) *bint {
	z.big().Quo(x.big(), y.big())
	return z
}

// rem calculates z = x - y * trunc(x / y).
// The sign of z is the same as the sign of x.
func (z *bint) rem(x, y *bint) *bint {
	z.big().Rem(x.big(), y.big())
	return z
}

// quoRem calculates z = trunc(x / y), r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	z.big().QuoRem(x.big(), y.big(), r.big())
}

// pow10 returns 10^power.
// The result may be shared and must not be modified.
// If power is negative, the result is unpredictable.
func pow10(power int) *bint {
	if power < len(bpow10) {
		return bpow10[power]
	}
	z := new(big.Int).Exp(bten.big(), big.NewInt(int64(power)), nil)
	return (*bint)(z)
}

// gcd returns the greatest common divisor of |x| and |y| computed
// with the Euclidean algorithm.
// gcd(0, 0) = 0.
func gcd(x, y *bint) *bint {
	a := new(bint).abs(x)
	b := new(bint).abs(y)
	if a.cmp(b) < 0 {
		a, b = b, a
	}
	r := new(bint)
	for b.sign() != 0 {
		r.rem(a, b)
		a, b, r = b, r, a
	}
	return a
}

// lcm returns the least common multiple of positive integers x and y.
func lcm(x, y *bint) *bint {
	z := new(bint).mul(x, y)
	return z.quo(z, gcd(x, y))
}
