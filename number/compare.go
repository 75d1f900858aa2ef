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

// Compare orders two values regardless of kind, returning -1, 0 or 1.
//
// The order is total: NaN sorts below every other value and equals
// itself, and an infinity sorts above every finite value. Finite values
// compare by exact numeric magnitude, so Long 1 equals Double 1.0.
func Compare(left, right *Value) int {
	switch {
	case left.IsNaN():
		if right.IsNaN() {
			return 0
		}
		return -1
	case right.IsNaN():
		return 1
	case left.IsInfinite():
		if right.IsInfinite() {
			return 0
		}
		return 1
	case right.IsInfinite():
		return -1
	}

	if left.IsInteger() && right.IsInteger() {
		if left.kind != KindBigInt && right.kind != KindBigInt {
			switch {
			case left.i < right.i:
				return -1
			case left.i > right.i:
				return 1
			}
			return 0
		}
		return left.AsBigInt().Cmp(right.AsBigInt())
	}

	return left.decimal().Cmp(right.decimal())
}

// Equal reports whether two values are numerically equal.
// Unlike Compare, NaN is not equal to anything, itself included.
func Equal(left, right *Value) bool {
	if left.IsNaN() || right.IsNaN() {
		return false
	}
	return Compare(left, right) == 0
}
