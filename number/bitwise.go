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
)

// And returns the bitwise conjunction of two integer-family values.
// Operands of different widths are combined at the wider width; sign
// extension makes the two's complement result independent of the
// original widths. Decimal operands are rejected.
func And(left, right *Value) (*Value, error) {
	return bitwiseBinary(
		"and", left, right,
		func(a, b int64) int64 { return a & b },
		(*big.Int).And,
	)
}

// Or returns the bitwise disjunction, with the same width rules as And.
func Or(left, right *Value) (*Value, error) {
	return bitwiseBinary(
		"or", left, right,
		func(a, b int64) int64 { return a | b },
		(*big.Int).Or,
	)
}

// Xor returns the bitwise exclusive disjunction, with the same width
// rules as And.
func Xor(left, right *Value) (*Value, error) {
	return bitwiseBinary(
		"xor", left, right,
		func(a, b int64) int64 { return a ^ b },
		(*big.Int).Xor,
	)
}

func bitwiseBinary(
	operation string,
	left, right *Value,
	fixedOp func(a, b int64) int64,
	bigOp func(z, x, y *big.Int) *big.Int,
) (*Value, error) {
	if left.IsDecimal() || right.IsDecimal() {
		return nil, UnsupportedBitwiseOnDecimalError{
			Operation: operation,
			Kinds:     []Kind{left.kind, right.kind},
		}
	}
	if widest(left.kind, right.kind) == KindBigInt {
		res := bigOp(new(big.Int), left.AsBigInt(), right.AsBigInt())
		return (&Value{}).setBigInt(res).Normalize(), nil
	}
	return (&Value{}).setLong(fixedOp(left.i, right.i)).Normalize(), nil
}

// Not returns the bitwise complement of an integer-family value,
// equal to -(v)-1 in two's complement at any width.
func Not(v *Value) (*Value, error) {
	if v.IsDecimal() {
		return nil, UnsupportedBitwiseOnDecimalError{
			Operation: "not",
			Kinds:     []Kind{v.kind},
		}
	}
	if v.kind == KindBigInt {
		res := new(big.Int).Not(v.b)
		return (&Value{}).setBigInt(res).Normalize(), nil
	}
	return (&Value{}).setLong(^v.i).Normalize(), nil
}
