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

// resultKind picks the representation a binary operation computes in.
// Within a family the wider operand wins; across families the decimal
// operand wins, matching the usual numeric promotion of mixed operands.
func resultKind(a, b Kind) Kind {
	if a.IsDecimal() == b.IsDecimal() {
		return widest(a, b)
	}
	if a.IsDecimal() {
		return a
	}
	return b
}

// Add returns left + right. Fixed-width integer sums that overflow
// promote until the result fits; binary floating-point sums that are
// not exact in their own width fall back to the exact decimal sum.
func Add(left, right *Value) (*Value, error) {
	return binaryArithmetic(
		left, right,
		checkedAdd,
		(*big.Int).Add,
		func(a, b float64) float64 { return a + b },
		decimalAdd,
	)
}

// Sub returns left - right, with the same promotion and exactness
// behavior as Add.
func Sub(left, right *Value) (*Value, error) {
	return binaryArithmetic(
		left, right,
		checkedSub,
		(*big.Int).Sub,
		func(a, b float64) float64 { return a - b },
		decimalSub,
	)
}

// Mul returns left * right, with the same promotion and exactness
// behavior as Add.
func Mul(left, right *Value) (*Value, error) {
	return binaryArithmetic(
		left, right,
		checkedMul,
		(*big.Int).Mul,
		func(a, b float64) float64 { return a * b },
		decimalMul,
	)
}

func binaryArithmetic(
	left, right *Value,
	checkedOp func(a, b int64) (int64, bool),
	bigOp func(z, x, y *big.Int) *big.Int,
	floatOp func(a, b float64) float64,
	decimalOp func(x, y *apd.Decimal) *apd.Decimal,
) (*Value, error) {

	switch kind := resultKind(left.kind, right.kind); kind {

	case KindByte, KindShort, KindInt:
		// 32-bit operands computed in 64 bits never overflow
		res, _ := checkedOp(left.i, right.i)
		return (&Value{}).setLong(res).Normalize(), nil

	case KindLong:
		if res, ok := checkedOp(left.i, right.i); ok {
			return (&Value{}).setLong(res).Normalize(), nil
		}
		res := bigOp(new(big.Int), big.NewInt(left.i), big.NewInt(right.i))
		return (&Value{}).setBigInt(res).Normalize(), nil

	case KindBigInt:
		res := bigOp(new(big.Int), left.AsBigInt(), right.AsBigInt())
		return (&Value{}).setBigInt(res).Normalize(), nil

	case KindFloat:
		if !left.isFinite() || !right.isFinite() {
			return NewDouble(floatOp(left.AsFloat64(), right.AsFloat64())), nil
		}
		exact := decimalOp(left.decimal(), right.decimal())
		naive := float32(floatOp(float64(left.AsFloat32()), float64(right.AsFloat32())))
		if !math.IsInf(float64(naive), 0) && floatIsExact(exact, float64(naive), 32) {
			return NewFloat(naive), nil
		}
		wide := floatOp(left.AsFloat64(), right.AsFloat64())
		if !math.IsInf(wide, 0) && floatIsExact(exact, wide, 64) {
			return NewDouble(wide), nil
		}
		return (&Value{}).setBigDecimal(exact), nil

	case KindDouble:
		if !left.isFinite() || !right.isFinite() {
			return NewDouble(floatOp(left.AsFloat64(), right.AsFloat64())), nil
		}
		exact := decimalOp(left.decimal(), right.decimal())
		naive := floatOp(left.AsFloat64(), right.AsFloat64())
		if !math.IsInf(naive, 0) && floatIsExact(exact, naive, 64) {
			return NewDouble(naive), nil
		}
		return (&Value{}).setBigDecimal(exact), nil

	case KindBigDecimal:
		if !left.isFinite() || !right.isFinite() {
			return NewDouble(floatOp(left.AsFloat64(), right.AsFloat64())), nil
		}
		return (&Value{}).setBigDecimal(decimalOp(left.decimal(), right.decimal())), nil
	}

	panic(errors.NewUnreachableError())
}

// Div returns left / right. Integer division truncates toward zero and
// fails with DivisionByZeroError on a zero divisor; binary floats follow
// IEEE semantics, so a zero divisor yields an infinity instead. Decimal
// division is exact and fails with NonTerminatingDecimalError when the
// quotient has no finite expansion.
func Div(left, right *Value) (*Value, error) {
	switch kind := resultKind(left.kind, right.kind); kind {

	case KindByte, KindShort, KindInt, KindLong:
		if right.i == 0 {
			return nil, DivisionByZeroError{}
		}
		if left.i == math.MinInt64 && right.i == -1 {
			res := new(big.Int).Neg(big.NewInt(math.MinInt64))
			return (&Value{}).setBigInt(res).Normalize(), nil
		}
		return (&Value{}).setLong(left.i / right.i).Normalize(), nil

	case KindBigInt:
		divisor := right.AsBigInt()
		if divisor.Sign() == 0 {
			return nil, DivisionByZeroError{}
		}
		res := new(big.Int).Quo(left.AsBigInt(), divisor)
		return (&Value{}).setBigInt(res).Normalize(), nil

	case KindFloat:
		return NewFloat(left.AsFloat32() / right.AsFloat32()), nil

	case KindDouble:
		return NewDouble(left.AsFloat64() / right.AsFloat64()), nil

	case KindBigDecimal:
		if !left.isFinite() || !right.isFinite() {
			return NewDouble(left.AsFloat64() / right.AsFloat64()), nil
		}
		res, err := decimalQuoExact(left.decimal(), right.decimal())
		if err != nil {
			return nil, err
		}
		return (&Value{}).setBigDecimal(res), nil
	}

	panic(errors.NewUnreachableError())
}

// Mod returns the remainder of left / right. The result carries the
// dividend's sign. Integer and exact decimal remainders fail with
// DivisionByZeroError on a zero divisor; binary floats yield NaN.
func Mod(left, right *Value) (*Value, error) {
	switch kind := resultKind(left.kind, right.kind); kind {

	case KindByte, KindShort, KindInt, KindLong:
		if right.i == 0 {
			return nil, DivisionByZeroError{}
		}
		return (&Value{}).setLong(left.i % right.i).Normalize(), nil

	case KindBigInt:
		divisor := right.AsBigInt()
		if divisor.Sign() == 0 {
			return nil, DivisionByZeroError{}
		}
		res := new(big.Int).Rem(left.AsBigInt(), divisor)
		return (&Value{}).setBigInt(res).Normalize(), nil

	case KindFloat:
		return NewFloat(float32(math.Mod(
			float64(left.AsFloat32()),
			float64(right.AsFloat32()),
		))), nil

	case KindDouble:
		return NewDouble(math.Mod(left.AsFloat64(), right.AsFloat64())), nil

	case KindBigDecimal:
		if !left.isFinite() || !right.isFinite() {
			return NewDouble(math.Mod(left.AsFloat64(), right.AsFloat64())), nil
		}
		res, err := decimalRem(left.decimal(), right.decimal())
		if err != nil {
			return nil, err
		}
		return (&Value{}).setBigDecimal(res), nil
	}

	panic(errors.NewUnreachableError())
}

// Min returns the smaller operand under the total order of Compare,
// normalized. Either input may be returned; the result is a copy.
func Min(left, right *Value) (*Value, error) {
	if Compare(left, right) <= 0 {
		return left.Clone().Normalize(), nil
	}
	return right.Clone().Normalize(), nil
}

// Max returns the larger operand under the total order of Compare,
// normalized. Either input may be returned; the result is a copy.
func Max(left, right *Value) (*Value, error) {
	if Compare(left, right) >= 0 {
		return left.Clone().Normalize(), nil
	}
	return right.Clone().Normalize(), nil
}
