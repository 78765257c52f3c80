/*
Package fraction implements exact rational numbers over arbitrary-precision
integers.
It is designed for quantities such as prices, measurements and ratios, where
binary floating-point error must not accumulate.

# Features

  - Immutable fractions, safe for concurrent use by multiple goroutines
  - Construction from integers, integer strings, decimal strings, floats,
    [decimal.Decimal] and [big.Rat] values
  - Parsing of whole numbers, simple fractions and mixed numbers
  - Exact arithmetic and comparison operations
  - Fixed-point rendering with ten rounding modes
  - Text, JSON, BSON and SQL encodings

# Representation

A [Fraction] is a pair of [big.Int] values: a signed numerator and a positive
denominator.
Fractions are always kept in canonical form:

  - the denominator is at least 1
  - the numerator and the denominator have no common factors
  - zero is represented as 0/1
  - the sign is carried by the numerator

Every constructor and every operation simplifies its result using the
Euclidean algorithm, so two equal fractions always have identical numerators
and denominators.
The zero value of a Fraction is 0.

# Operations

Arithmetic operations Add, Sub, Mul, Quo and Pow return a new fraction and
never modify their operands.
Comparison operations are derived from [Fraction.Cmp], which scales both
numerators to the least common multiple of the denominators.

# Rounding

Fractions are exact, so rounding only happens when a fraction is rendered as
a decimal by [Fraction.Fixed], [Fraction.Decimal] or the %f verb.
Rounding is decided by a single guard digit and one of the [RoundingMode]
constants.
No floating-point arithmetic is involved, so any number of digits after the
decimal point is supported.

# Errors

Errors are returned by constructors, parsers, [Fraction.Quo], [Fraction.Inv],
[Fraction.Pow] and [Fraction.Fixed].
All of them wrap one of [ErrInvalidNumerator], [ErrInvalidDenominator],
[ErrInvalidArgument] or [ErrInvalidRoundingMode], which can be checked with
[errors.Is].
Division by zero is reported as [ErrInvalidDenominator].
Functions with the Must prefix panic instead of returning an error.
*/
package fraction
