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

func TestRoundTiesAwayFromZero(t *testing.T) {

	t.Parallel()

	tests := []struct {
		input    *Value
		expected string
	}{
		{NewDouble(2.5), "3"},
		{NewDouble(-2.5), "-3"},
		{NewDouble(2.4), "2"},
		{NewDouble(-2.4), "-2"},
		{NewBigDecimal(requireDecimal(t, "7.5")), "8"},
		{NewBigDecimal(requireDecimal(t, "-7.5")), "-8"},
		{NewFloat(0.5), "1"},
	}

	for _, test := range tests {
		res, err := Round(test.input)
		require.NoError(t, err)
		assert.True(t, res.IsInteger(), "round(%s)", test.input)
		assert.Equal(t, test.expected, res.String())
	}

	// integers round to themselves
	res, err := Round(NewLong(12))
	require.NoError(t, err)
	assert.Equal(t, KindByte, res.Kind())

	_, err = Round(NewDouble(math.NaN()))
	require.Error(t, err)
	_, err = Round(NewDouble(math.Inf(1)))
	require.Error(t, err)
}

func TestFloorCeilStayDecimal(t *testing.T) {

	t.Parallel()

	res, err := Floor(NewDouble(2.7))
	require.NoError(t, err)
	assert.Equal(t, KindDouble, res.Kind())
	assert.Equal(t, 2.0, res.AsFloat64())

	res, err = Floor(NewDouble(-2.1))
	require.NoError(t, err)
	assert.Equal(t, -3.0, res.AsFloat64())

	res, err = Ceil(NewDouble(2.1))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.AsFloat64())

	res, err = Ceil(NewBigDecimal(requireDecimal(t, "2.0001")))
	require.NoError(t, err)
	assert.Equal(t, KindBigDecimal, res.Kind())
	assert.Equal(t, "3", res.String())

	res, err = Floor(NewBigDecimal(requireDecimal(t, "-2.0001")))
	require.NoError(t, err)
	assert.Equal(t, "-3", res.String())

	res, err = Floor(NewLong(12345))
	require.NoError(t, err)
	assert.Equal(t, int64(12345), res.AsInt64())
}

func TestNegPromotesAtMinimum(t *testing.T) {

	t.Parallel()

	res, err := Neg(NewByte(-128))
	require.NoError(t, err)
	assert.Equal(t, KindShort, res.Kind())
	assert.Equal(t, int64(128), res.AsInt64())

	res, err = Neg(NewLong(math.MinInt64))
	require.NoError(t, err)
	assert.Equal(t, KindBigInt, res.Kind())
	assert.Equal(t, "9223372036854775808", res.String())

	res, err = Neg(NewDouble(1.5))
	require.NoError(t, err)
	assert.Equal(t, -1.5, res.AsFloat64())
}

func TestAbsSignum(t *testing.T) {

	t.Parallel()

	res, err := Abs(NewInt(-42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.AsInt64())

	res, err = Abs(NewBigInt(big.NewInt(-1000000)))
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), res.AsInt64())

	res, err = Abs(NewFloat(-0.5))
	require.NoError(t, err)
	assert.Equal(t, KindFloat, res.Kind())
	assert.Equal(t, float32(0.5), res.AsFloat32())

	for _, test := range []struct {
		input    *Value
		expected int64
	}{
		{NewInt(-9), -1},
		{NewInt(0), 0},
		{NewLong(9), 1},
		{NewDouble(-0.25), -1},
		{NewBigDecimal(requireDecimal(t, "0.00")), 0},
		{NewBigInt(big.NewInt(77)), 1},
	} {
		res, err := Signum(test.input)
		require.NoError(t, err)
		assert.Equal(t, KindByte, res.Kind())
		assert.Equal(t, test.expected, res.AsInt64())
	}

	res, err = Signum(NewDouble(math.NaN()))
	require.NoError(t, err)
	assert.True(t, res.IsNaN())
}

func TestPow(t *testing.T) {

	t.Parallel()

	res, err := Pow(NewInt(2), 10)
	require.NoError(t, err)
	assert.Equal(t, KindShort, res.Kind())
	assert.Equal(t, int64(1024), res.AsInt64())

	// grows past Long without wrapping
	res, err = Pow(NewInt(2), 100)
	require.NoError(t, err)
	assert.Equal(t, KindBigInt, res.Kind())
	assert.Equal(t, "1267650600228229401496703205376", res.String())

	res, err = Pow(NewInt(5), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.AsInt64())

	// negative exponent moves to the decimal family
	res, err = Pow(NewInt(2), -3)
	require.NoError(t, err)
	assert.Equal(t, KindBigDecimal, res.Kind())
	assert.Equal(t, "0.125", res.String())

	_, err = Pow(NewInt(0), -1)
	require.ErrorAs(t, err, &DivisionByZeroError{})

	res, err = Pow(NewDouble(1.5), 2)
	require.NoError(t, err)
	assert.Equal(t, KindDouble, res.Kind())
	assert.Equal(t, 2.25, res.AsFloat64())

	// overflowing the binary range falls back to exact decimals
	res, err = Pow(NewDouble(1e300), 2)
	require.NoError(t, err)
	assert.Equal(t, KindBigDecimal, res.Kind())
}

func TestSqrt(t *testing.T) {

	t.Parallel()

	res, err := Sqrt(NewInt(9))
	require.NoError(t, err)
	assert.Equal(t, KindDouble, res.Kind())
	assert.Equal(t, 3.0, res.AsFloat64())

	_, err = Sqrt(NewInt(-1))
	require.ErrorAs(t, err, &NegativeSquareRootError{})

	_, err = Sqrt(NewDouble(-0.5))
	require.ErrorAs(t, err, &NegativeSquareRootError{})

	square, ok := new(big.Int).SetString("15241578750190521", 10)
	require.True(t, ok)
	res, err = Sqrt(NewBigInt(square))
	require.NoError(t, err)
	assert.Equal(t, "123456789", res.String())

	res, err = Sqrt(NewBigDecimal(requireDecimal(t, "2.25")))
	require.NoError(t, err)
	assert.Equal(t, KindBigDecimal, res.Kind())
	assert.Equal(t, "1.5", res.String())

	res, err = Sqrt(NewDouble(math.NaN()))
	require.NoError(t, err)
	assert.True(t, res.IsNaN())
}
