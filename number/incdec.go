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

	"github.com/daiitech/naftah/errors"
)

func fitsKind(i int64, k Kind) bool {
	switch k {
	case KindByte:
		return i >= math.MinInt8 && i <= math.MaxInt8
	case KindShort:
		return i >= math.MinInt16 && i <= math.MaxInt16
	case KindInt:
		return i >= math.MinInt32 && i <= math.MaxInt32
	case KindLong:
		return true
	}
	return false
}

// step adds delta (±1) in place, widening the kind when the stepped
// value no longer fits. The kind never narrows here; stepping away
// from a boundary keeps the operand's kind.
func step(v *Value, delta int64) {
	switch v.kind {
	case KindByte, KindShort, KindInt:
		res := v.i + delta
		for !fitsKind(res, v.kind) {
			v.kind = v.kind.Wider()
		}
		v.i = res

	case KindLong:
		res, ok := checkedAdd(v.i, delta)
		if !ok {
			v.setBigInt(new(big.Int).Add(big.NewInt(v.i), big.NewInt(delta)))
			return
		}
		v.i = res

	case KindBigInt:
		v.b.Add(v.b, big.NewInt(delta))

	case KindFloat:
		if !v.isFinite() || math.Abs(v.f) == math.MaxFloat32 {
			v.Promote()
			step(v, delta)
			return
		}
		v.f = float64(float32(v.f) + float32(delta))

	case KindDouble:
		if v.isFinite() && math.Abs(v.f) == math.MaxFloat64 {
			v.Promote()
			step(v, delta)
			return
		}
		v.f += float64(delta)

	case KindBigDecimal:
		v.d = decimalAdd(v.d, decimalFromInt64(delta))

	default:
		panic(errors.NewUnreachableError())
	}
}

// PreInc increments the operand in place and returns it, normalized.
// Incrementing past the maximum of a fixed kind widens: a Byte at 127
// becomes a Short 128, a Long at its maximum becomes a BigInt. A step
// back into a narrower kind's range narrows like every other operation.
func PreInc(v *Value) (*Value, error) {
	step(v, 1)
	return v.Normalize(), nil
}

// PreDec decrements the operand in place and returns it, normalized,
// widening past the minimum of a fixed kind like PreInc does past the
// maximum.
func PreDec(v *Value) (*Value, error) {
	step(v, -1)
	return v.Normalize(), nil
}

// PostInc increments the operand in place, leaving it normalized, and
// returns a normalized snapshot of the value it held before.
func PostInc(v *Value) (*Value, error) {
	before := v.Clone().Normalize()
	step(v, 1)
	v.Normalize()
	return before, nil
}

// PostDec decrements the operand in place, leaving it normalized, and
// returns a normalized snapshot of the value it held before.
func PostDec(v *Value) (*Value, error) {
	before := v.Clone().Normalize()
	step(v, -1)
	v.Normalize()
	return before, nil
}
