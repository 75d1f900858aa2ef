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
)

func shiftOperand(operation string, v *Value) error {
	if v.IsDecimal() {
		return UnsupportedBitwiseOnDecimalError{
			Operation: operation,
			Kinds:     []Kind{v.kind},
		}
	}
	return nil
}

// ShiftLeft shifts an integer-family value left by the given number of
// bit positions. For fixed-width kinds the count must lie in
// [0, bit width); a shift that would overflow promotes instead of
// wrapping. BigInt accepts any non-negative count. Shifting zero is
// zero for any count.
func ShiftLeft(v *Value, positions int) (*Value, error) {
	if err := shiftOperand("shiftLeft", v); err != nil {
		return nil, err
	}
	if v.IsZero() {
		return v.Clone().Normalize(), nil
	}

	if v.kind == KindBigInt {
		if positions < 0 {
			return nil, InvalidShiftAmountError{Positions: positions}
		}
		res := new(big.Int).Lsh(v.b, uint(positions))
		return (&Value{}).setBigInt(res).Normalize(), nil
	}

	width := v.kind.BitWidth()
	if positions < 0 || positions >= width {
		return nil, InvalidShiftAmountError{Positions: positions, BitWidth: width}
	}
	// predict 64-bit overflow before shifting
	maxSafe := int64(math.MaxInt64) >> positions
	minSafe := int64(math.MinInt64) >> positions
	if v.i > maxSafe || v.i < minSafe {
		res := new(big.Int).Lsh(big.NewInt(v.i), uint(positions))
		return (&Value{}).setBigInt(res).Normalize(), nil
	}
	return (&Value{}).setLong(v.i << positions).Normalize(), nil
}

// ShiftRight shifts right arithmetically, preserving the sign. For
// fixed-width kinds the count must lie in [0, bit width); for BigInt it
// must not reach the operand's bit length. Shifting zero is zero.
func ShiftRight(v *Value, positions int) (*Value, error) {
	if err := shiftOperand("shiftRight", v); err != nil {
		return nil, err
	}
	if v.IsZero() {
		return v.Clone().Normalize(), nil
	}

	if v.kind == KindBigInt {
		if positions < 0 || positions >= v.b.BitLen() {
			return nil, InvalidShiftAmountError{
				Positions: positions,
				BitWidth:  v.b.BitLen(),
			}
		}
		res := new(big.Int).Rsh(v.b, uint(positions))
		return (&Value{}).setBigInt(res).Normalize(), nil
	}

	width := v.kind.BitWidth()
	if positions < 0 || positions >= width {
		return nil, InvalidShiftAmountError{Positions: positions, BitWidth: width}
	}
	return (&Value{}).setLong(v.i >> positions).Normalize(), nil
}

// UnsignedShiftRight shifts right filling with zero bits at the
// operand's own width, so a negative Byte is shifted as an 8-bit
// pattern, not a 32- or 64-bit one. A negative BigInt is shifted as
// the unsigned pattern of its own bit length. The count rules match
// ShiftRight.
func UnsignedShiftRight(v *Value, positions int) (*Value, error) {
	if err := shiftOperand("unsignedShiftRight", v); err != nil {
		return nil, err
	}
	if v.IsZero() {
		return v.Clone().Normalize(), nil
	}

	if v.kind == KindBigInt {
		if positions < 0 || positions >= v.b.BitLen() {
			return nil, InvalidShiftAmountError{
				Positions: positions,
				BitWidth:  v.b.BitLen(),
			}
		}
		operand := v.b
		if operand.Sign() < 0 {
			// reinterpret as the unsigned value of the same bit pattern
			modulus := new(big.Int).Lsh(big.NewInt(1), uint(operand.BitLen()))
			operand = new(big.Int).Add(operand, modulus)
		}
		res := new(big.Int).Rsh(operand, uint(positions))
		return (&Value{}).setBigInt(res).Normalize(), nil
	}

	width := v.kind.BitWidth()
	if positions < 0 || positions >= width {
		return nil, InvalidShiftAmountError{Positions: positions, BitWidth: width}
	}
	var res int64
	switch width {
	case 8:
		res = int64(uint8(v.i) >> positions)
	case 16:
		res = int64(uint16(v.i) >> positions)
	case 32:
		res = int64(uint32(v.i) >> positions)
	case 64:
		res = int64(uint64(v.i) >> positions)
	}
	return (&Value{}).setLong(res).Normalize(), nil
}
