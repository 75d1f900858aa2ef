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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertExact(t *testing.T) {

	t.Parallel()

	res, err := Convert(NewDouble(3), KindInt)
	require.NoError(t, err)
	assert.Equal(t, KindInt, res.Kind())
	assert.Equal(t, int64(3), res.AsInt64())

	res, err = Convert(NewLong(127), KindByte)
	require.NoError(t, err)
	assert.Equal(t, KindByte, res.Kind())

	res, err = Convert(NewByte(3), KindBigDecimal)
	require.NoError(t, err)
	assert.Equal(t, "3", res.String())

	res, err = Convert(NewDouble(0.1), KindFloat)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, res.Kind())
	assert.Equal(t, "0.1", res.String())

	res, err = Convert(NewFloat(1.5), KindDouble)
	require.NoError(t, err)
	assert.Equal(t, 1.5, res.AsFloat64())

	res, err = Convert(NewBigDecimal(requireDecimal(t, "42")), KindLong)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.AsInt64())

	// same kind is a plain copy
	original := NewLong(9)
	res, err = Convert(original, KindLong)
	require.NoError(t, err)
	assert.NotSame(t, original, res)
	assert.Equal(t, int64(9), res.AsInt64())
}

func TestConvertRejectsInexact(t *testing.T) {

	t.Parallel()

	_, err := Convert(NewDouble(3.5), KindInt)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})

	_, err = Convert(NewLong(300), KindByte)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})

	_, err = Convert(NewLong(1<<40), KindInt)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})

	huge, ok := new(big.Int).SetString("18446744073709551616", 10)
	require.True(t, ok)
	_, err = Convert(NewBigInt(huge), KindLong)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})

	// 17 significant digits do not survive a float32
	_, err = Convert(NewDouble(0.12345678901234567), KindFloat)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})

	_, err = Convert(NewDouble(math.MaxFloat64), KindFloat)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})

	_, err = Convert(NewDouble(math.NaN()), KindLong)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})

	_, err = Convert(NewDouble(math.Inf(1)), KindBigDecimal)
	require.ErrorAs(t, err, &NumericConversionOverflowError{})
}

func TestConvertNonFiniteBetweenBinaryKinds(t *testing.T) {

	t.Parallel()

	res, err := Convert(NewDouble(math.NaN()), KindFloat)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, res.Kind())
	assert.True(t, res.IsNaN())

	res, err = Convert(NewFloat(float32(math.Inf(-1))), KindDouble)
	require.NoError(t, err)
	assert.True(t, res.IsInfinite())
}
