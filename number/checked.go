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

import "math"

// Overflow-checked 64-bit arithmetic. Overflow is detected up front and
// reported through the ok result; it is ordinary control flow for the
// promotion machinery, never an error surfaced to callers.

func checkedAdd(a, b int64) (int64, bool) {
	// INT32-C
	if (b > 0 && a > math.MaxInt64-b) ||
		(b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func checkedSub(a, b int64) (int64, bool) {
	// INT32-C
	if (b > 0 && a < math.MinInt64+b) ||
		(b < 0 && a > math.MaxInt64+b) {
		return 0, false
	}
	return a - b, true
}

func checkedMul(a, b int64) (int64, bool) {
	// INT32-C
	if a > 0 {
		if b > 0 {
			if a > math.MaxInt64/b {
				return 0, false
			}
		} else {
			if b < math.MinInt64/a {
				return 0, false
			}
		}
	} else if a < 0 {
		if b > 0 {
			if a < math.MinInt64/b {
				return 0, false
			}
		} else {
			if b < 0 && a < math.MaxInt64/b {
				return 0, false
			}
		}
	}
	return a * b, true
}
