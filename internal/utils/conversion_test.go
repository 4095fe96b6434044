package utils

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{name: "nil", value: nil, expected: 0},
		{name: "empty string", value: "", expected: 0},
		{name: "whitespace string", value: "   ", expected: 0},
		{name: "base-unit string one token", value: "1000000000000000000", expected: 1.0},
		{name: "base-unit string fractional token", value: "500000000000000000", expected: 0.5},
		{name: "base-unit string large", value: "2500000000000000000000", expected: 2500.0},
		{name: "decimal string", value: "1.5", expected: 1.5},
		{name: "decimal string with leading dot amount", value: "0.001", expected: 0.001},
		{name: "exponent notation", value: "1.5e3", expected: 1500.0},
		{name: "exponent notation capital", value: "2E2", expected: 200.0},
		{name: "negative decimal substitutes zero", value: "-5.5", expected: 0},
		{name: "garbage string substitutes zero", value: "not-a-number", expected: 0},
		{name: "native int is base units", value: int(1000000000000000000), expected: 1.0},
		{name: "native int64 is base units", value: int64(1000000000000000000), expected: 1.0},
		{name: "native uint64 is base units", value: uint64(2000000000000000000), expected: 2.0},
		{name: "native float is human units", value: 2.5, expected: 2.5},
		{name: "negative float substitutes zero", value: -2.5, expected: 0},
		{name: "sdk int is base units", value: sdkmath.NewInt(3).Mul(sdkmath.NewIntWithDecimal(1, 18)), expected: 3.0},
		{name: "unsupported type substitutes zero", value: struct{}{}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.value)
			require.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestAmountFromBaseUnits(t *testing.T) {
	amount, err := AmountFromBaseUnits(sdkmath.NewIntWithDecimal(125, 16), TokenPrecision)
	require.NoError(t, err)
	require.InDelta(t, 1.25, amount, 1e-12)

	_, err = AmountFromBaseUnits(sdkmath.NewInt(1), -1)
	require.ErrorIs(t, err, ErrInvalidPrecision)

	_, err = AmountFromBaseUnits(sdkmath.NewInt(1), 19)
	require.ErrorIs(t, err, ErrInvalidPrecision)

	_, err = AmountFromBaseUnits(sdkmath.NewInt(-1), TokenPrecision)
	require.ErrorIs(t, err, ErrAmountNegative)

	_, err = AmountFromBaseUnits(sdkmath.Int{}, TokenPrecision)
	require.ErrorIs(t, err, ErrAmountNil)
}

func TestAmountFromDecimalString(t *testing.T) {
	amount, err := AmountFromDecimalString("123.456")
	require.NoError(t, err)
	require.InDelta(t, 123.456, amount, 1e-9)

	amount, err = AmountFromDecimalString("1e2")
	require.NoError(t, err)
	require.InDelta(t, 100.0, amount, 1e-9)

	_, err = AmountFromDecimalString("")
	require.ErrorIs(t, err, ErrConversionFailed)

	_, err = AmountFromDecimalString("-1.0")
	require.ErrorIs(t, err, ErrAmountNegative)
}

func TestAmountToBaseUnitsRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{name: "whole token", amount: 1.0},
		{name: "fractional token", amount: 0.125},
		{name: "large amount", amount: 9876.543},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := AmountToBaseUnits(tt.amount, TokenPrecision)
			require.NoError(t, err)

			back, err := AmountFromBaseUnits(base, TokenPrecision)
			require.NoError(t, err)
			require.InDelta(t, tt.amount, back, 1e-9)
		})
	}

	zero, err := AmountToBaseUnits(0, TokenPrecision)
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = AmountToBaseUnits(-1, TokenPrecision)
	require.ErrorIs(t, err, ErrAmountNegative)
}
