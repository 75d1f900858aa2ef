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

func roundToIntegral(d *apd.Decimal, rounding apd.Rounder) *apd.Decimal {
	ctx := apd.BaseContext.WithPrecision(clampPrecision(d.NumDigits() + 2))
	ctx.Rounding = rounding
	var res apd.Decimal
	if _, err := ctx.RoundToIntegralValue(&res, d); err != nil {
		panic(errors.NewUnreachableError())
	}
	return &res
}

// Round rounds to the nearest integer, with ties away from zero:
// 2.5 rounds to 3 and -2.5 to -3. The result is always in the integer
// family, at the narrowest kind that holds it. Rounding a NaN or an
// infinity fails, since neither has an integral value.
func Round(v *Value) (*Value, error) {
	if v.IsInteger() {
		return v.Clone().Normalize(), nil
	}
	if !v.isFinite() {
		return nil, NumericConversionOverflowError{
			Value:  v.String(),
			Target: KindBigInt,
		}
	}
	rounded := roundToIntegral(v.decimal(), apd.RoundHalfUp)
	b, ok := decimalToBigInt(rounded)
	if !ok {
		panic(errors.NewUnreachableError())
	}
	return (&Value{}).setBigInt(b).Normalize(), nil
}

// Floor rounds toward negative infinity. Decimal kinds keep their kind:
// a Double stays a Double and a BigDecimal a BigDecimal with scale zero.
// Integer kinds are returned unchanged.
func Floor(v *Value) (*Value, error) {
	switch v.kind {
	case KindFloat, KindDouble:
		return NewDouble(math.Floor(v.f)), nil
	case KindBigDecimal:
		return (&Value{}).setBigDecimal(roundToIntegral(v.d, apd.RoundFloor)), nil
	}
	return v.Clone().Normalize(), nil
}

// Ceil rounds toward positive infinity, mirroring Floor.
func Ceil(v *Value) (*Value, error) {
	switch v.kind {
	case KindFloat, KindDouble:
		return NewDouble(math.Ceil(v.f)), nil
	case KindBigDecimal:
		return (&Value{}).setBigDecimal(roundToIntegral(v.d, apd.RoundCeiling)), nil
	}
	return v.Clone().Normalize(), nil
}

// Neg returns the additive inverse. Negating the minimum value of a
// fixed integer kind promotes, since the magnitude has no two's
// complement counterpart at the same width.
func Neg(v *Value) (*Value, error) {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		if v.i == math.MinInt64 {
			res := new(big.Int).Neg(big.NewInt(v.i))
			return (&Value{}).setBigInt(res).Normalize(), nil
		}
		return (&Value{}).setLong(-v.i).Normalize(), nil
	case KindBigInt:
		return (&Value{}).setBigInt(new(big.Int).Neg(v.b)).Normalize(), nil
	case KindFloat:
		return NewFloat(-float32(v.f)), nil
	case KindDouble:
		return NewDouble(-v.f), nil
	case KindBigDecimal:
		var res apd.Decimal
		res.Neg(v.d)
		return (&Value{}).setBigDecimal(&res), nil
	}
	panic(errors.NewUnreachableError())
}

// Abs returns the absolute value, promoting on the same minimum-value
// edge as Neg.
func Abs(v *Value) (*Value, error) {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		if v.i >= 0 {
			return v.Clone().Normalize(), nil
		}
		return Neg(v)
	case KindBigInt:
		return (&Value{}).setBigInt(new(big.Int).Abs(v.b)).Normalize(), nil
	case KindFloat:
		return NewFloat(float32(math.Abs(v.f))), nil
	case KindDouble:
		return NewDouble(math.Abs(v.f)), nil
	case KindBigDecimal:
		var res apd.Decimal
		res.Abs(v.d)
		return (&Value{}).setBigDecimal(&res), nil
	}
	panic(errors.NewUnreachableError())
}

// Signum returns -1, 0 or 1 as a Byte. The sign of a NaN is NaN.
func Signum(v *Value) (*Value, error) {
	if v.IsNaN() {
		return NewDouble(math.NaN()), nil
	}
	var sign int
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		switch {
		case v.i < 0:
			sign = -1
		case v.i > 0:
			sign = 1
		}
	case KindBigInt:
		sign = v.b.Sign()
	case KindFloat, KindDouble:
		switch {
		case v.f < 0:
			sign = -1
		case v.f > 0:
			sign = 1
		}
	case KindBigDecimal:
		sign = v.d.Sign()
	default:
		panic(errors.NewUnreachableError())
	}
	return NewByte(int8(sign)), nil
}
