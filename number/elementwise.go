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

// ApplyElementwise evaluates a binary operation pairwise over two
// operand slices. The lengths must match, and are checked before any
// element is evaluated; a failing element aborts with that element's
// error and no partial result.
func ApplyElementwise(operation string, left, right []any) ([]any, error) {
	if len(left) != len(right) {
		return nil, SizeMismatchError{
			LeftLength:  len(left),
			RightLength: len(right),
		}
	}
	results := make([]any, len(left))
	for i := range left {
		res, err := Apply(operation, left[i], right[i])
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}
