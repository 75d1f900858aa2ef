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
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/daiitech/naftah/errors"
)

// decimalPow raises x to a non-negative integer power exactly,
// by binary exponentiation over exact multiplications.
func decimalPow(x *apd.Decimal, n uint64) *apd.Decimal {
	res := apd.New(1, 0)
	base := new(apd.Decimal)
	base.Set(x)
	for n > 0 {
		if n&1 == 1 {
			res = decimalMul(res, base)
		}
		n >>= 1
		if n > 0 {
			base = decimalMul(base, base)
		}
	}
	return res
}

func bigIntPow(base *big.Int, n uint64) *big.Int {
	return new(big.Int).Exp(base, new(big.Int).SetUint64(n), nil)
}

// Pow raises base to an integer exponent.
//
// An integer base with a non-negative exponent stays in the integer
// family, growing to BigInt as needed. A negative exponent produces the
// decimal reciprocal of the positive power, exact when the expansion
// terminates and rounded to 34 significant digits otherwise. A binary
// floating-point base uses the platform power function, falling back to
// exact decimal exponentiation when that overflows.
func Pow(base *Value, exponent int) (*Value, error) {
	switch base.kind {

	case KindByte, KindShort, KindInt, KindLong, KindBigInt:
		if exponent >= 0 {
			res := bigIntPow(base.AsBigInt(), uint64(exponent))
			return (&Value{}).setBigInt(res).Normalize(), nil
		}
		power := bigIntPow(base.AsBigInt(), uint64(-int64(exponent)))
		res, err := decimalReciprocal(decimalFromBigInt(power))
		if err != nil {
			return nil, err
		}
		return (&Value{}).setBigDecimal(res), nil

	case KindFloat, KindDouble:
		if !base.isFinite() {
			return NewDouble(math.Pow(base.f, float64(exponent))), nil
		}
		naive := math.Pow(base.f, float64(exponent))
		if !math.IsInf(naive, 0) {
			return NewDouble(naive), nil
		}
		return powExact(base.decimal(), exponent)

	case KindBigDecimal:
		return powExact(base.d, exponent)
	}

	panic(errors.NewUnreachableError())
}

func powExact(base *apd.Decimal, exponent int) (*Value, error) {
	if exponent >= 0 {
		return (&Value{}).setBigDecimal(decimalPow(base, uint64(exponent))), nil
	}
	power := decimalPow(base, uint64(-int64(exponent)))
	res, err := decimalReciprocal(power)
	if err != nil {
		return nil, err
	}
	return (&Value{}).setBigDecimal(res), nil
}

// Sqrt returns the square root. Negative values fail with
// NegativeSquareRootError. A BigInt root is the integer floor root and
// a BigDecimal root is rounded to 34 significant digits; every other
// kind goes through binary floating point and yields a Double.
func Sqrt(v *Value) (*Value, error) {
	if v.IsNaN() {
		return NewDouble(math.NaN()), nil
	}
	if v.IsInfinite() {
		if v.f < 0 {
			return nil, NegativeSquareRootError{Value: v.String()}
		}
		return NewDouble(math.Inf(1)), nil
	}
	if Compare(v, NewByte(0)) < 0 {
		return nil, NegativeSquareRootError{Value: v.String()}
	}

	switch v.kind {
	case KindBigInt:
		res := new(big.Int).Sqrt(v.b)
		return (&Value{}).setBigInt(res).Normalize(), nil
	case KindBigDecimal:
		ctx := apd.BaseContext.WithPrecision(reciprocalPrecision)
		ctx.Rounding = apd.RoundHalfUp
		var res apd.Decimal
		if _, err := ctx.Sqrt(&res, v.d); err != nil {
			panic(errors.NewUnreachableError())
		}
		// exact roots come back padded to the context precision
		res.Reduce(&res)
		return (&Value{}).setBigDecimal(&res), nil
	}
	return NewDouble(math.Sqrt(v.AsFloat64())), nil
}
