/*
 * Naftah - dynamic numeric tower for the Naftah programming language
 *
 * Copyright DaiiTech
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package number

import (
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/daiitech/naftah/errors"
)

// Exact decimal arithmetic for the BigDecimal kind and for the
// floating-point exactness checks. All conversions between binary
// floating point and decimal go through the float's shortest decimal
// form, never its binary expansion, so a Double produced from the
// literal "0.1" reads back as the decimal 0.1.

// maxExactPrecision caps the dynamically sized contexts below.
// Operand digit counts in practice stay far beneath it.
const maxExactPrecision = 100000

// reciprocalPrecision is the digit budget for rounded reciprocals and
// square roots, mirroring IEEE 754-2008 decimal128.
const reciprocalPrecision = 34

func decimalFromInt64(i int64) *apd.Decimal {
	return apd.New(i, 0)
}

func decimalFromBigInt(b *big.Int) *apd.Decimal {
	d, _, err := apd.NewFromString(b.String())
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return d
}

// decimalFromFloat converts a finite float to its exact shortest decimal
// form. bitSize is 32 for Float values and 64 for Double values.
func decimalFromFloat(f float64, bitSize int) *apd.Decimal {
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, bitSize))
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return d
}

func clampPrecision(digits int64) uint32 {
	if digits < 1 {
		digits = 1
	}
	if digits > maxExactPrecision {
		digits = maxExactPrecision
	}
	return uint32(digits)
}

// exactSumContext sizes a context so that addition and subtraction of the
// two operands cannot round: the result spans at most the distance from
// the highest to the lowest decimal digit position of either operand.
func exactSumContext(x, y *apd.Decimal) *apd.Context {
	hi := int64(x.Exponent) + x.NumDigits()
	if h := int64(y.Exponent) + y.NumDigits(); h > hi {
		hi = h
	}
	lo := int64(x.Exponent)
	if l := int64(y.Exponent); l < lo {
		lo = l
	}
	return apd.BaseContext.WithPrecision(clampPrecision(hi - lo + 2))
}

func decimalAdd(x, y *apd.Decimal) *apd.Decimal {
	var res apd.Decimal
	_, err := exactSumContext(x, y).Add(&res, x, y)
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return &res
}

func decimalSub(x, y *apd.Decimal) *apd.Decimal {
	var res apd.Decimal
	_, err := exactSumContext(x, y).Sub(&res, x, y)
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return &res
}

func decimalMul(x, y *apd.Decimal) *apd.Decimal {
	var res apd.Decimal
	ctx := apd.BaseContext.WithPrecision(
		clampPrecision(x.NumDigits() + y.NumDigits() + 1),
	)
	_, err := ctx.Mul(&res, x, y)
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return &res
}

// decimalQuoExact divides at unlimited precision. A quotient terminates
// only if the reduced divisor's prime factors are 2 and 5, so its
// fractional digit count is bounded by the divisor's 2- and 5-adic
// valuations, which log2 of the coefficient bounds comfortably.
func decimalQuoExact(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y.IsZero() {
		return nil, DivisionByZeroError{}
	}
	prec := clampPrecision(x.NumDigits() + 4*y.NumDigits() + 16)
	var res apd.Decimal
	cond, err := apd.BaseContext.WithPrecision(prec).Quo(&res, x, y)
	if err != nil {
		return nil, NonTerminatingDecimalError{}
	}
	if cond&apd.Inexact != 0 {
		return nil, NonTerminatingDecimalError{}
	}
	// the context pads the quotient to full precision; strip the
	// trailing zeros so 1/8 is 0.125, not 0.125000000000000000000
	res.Reduce(&res)
	return &res, nil
}

// decimalReciprocal computes 1/x, exactly when the expansion terminates,
// otherwise rounded half-up to the decimal128 digit budget.
func decimalReciprocal(x *apd.Decimal) (*apd.Decimal, error) {
	one := apd.New(1, 0)
	res, err := decimalQuoExact(one, x)
	if err == nil {
		return res, nil
	}
	if _, ok := err.(DivisionByZeroError); ok {
		return nil, err
	}
	ctx := apd.BaseContext.WithPrecision(reciprocalPrecision)
	ctx.Rounding = apd.RoundHalfUp
	var rounded apd.Decimal
	if _, err := ctx.Quo(&rounded, one, x); err != nil {
		return nil, NonTerminatingDecimalError{}
	}
	rounded.Reduce(&rounded)
	return &rounded, nil
}

func decimalRem(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y.IsZero() {
		return nil, DivisionByZeroError{}
	}
	prec := clampPrecision(x.NumDigits() + y.NumDigits() + 16)
	var res apd.Decimal
	_, err := apd.BaseContext.WithPrecision(prec).Rem(&res, x, y)
	if err != nil {
		return nil, DivisionByZeroError{}
	}
	return &res, nil
}

func decimalIsIntegral(d *apd.Decimal) bool {
	if d.Exponent >= 0 {
		return true
	}
	var reduced apd.Decimal
	reduced.Reduce(d)
	return reduced.Exponent >= 0
}

// decimalToBigInt converts an integral decimal to a big integer.
// The bool result is false if the decimal has a fractional part.
func decimalToBigInt(d *apd.Decimal) (*big.Int, bool) {
	if !decimalIsIntegral(d) {
		return nil, false
	}
	b, ok := new(big.Int).SetString(d.Text('f'), 10)
	if !ok {
		panic(errors.NewUnreachableError())
	}
	return b, true
}

// floatIsExact reports whether the naive binary floating-point result
// agrees with the exact decimal expectation, comparing through the
// float's shortest decimal form.
func floatIsExact(expected *apd.Decimal, res float64, bitSize int) bool {
	return expected.Cmp(decimalFromFloat(res, bitSize)) == 0
}
