/*
This file is the single numeric boundary of the engine. Deposit amounts
arrive from event logs in mixed encodings (18-decimal base-unit integers,
human-readable decimal strings, native numbers); everything is coerced here
into a canonical human-unit float64 so that no other component needs to
guess at representations or guard against malformed input.
*/

package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
)

// TokenPrecision is the number of decimals in the token's base unit.
const TokenPrecision = 18

// Error definitions for the conversion boundary
var (
	ErrInvalidPrecision = errors.New("precision is invalid")
	ErrAmountNil        = errors.New("amount is nil")
	ErrAmountNegative   = errors.New("amount is negative")
	ErrNotFinite        = errors.New("value is not finite")
	ErrConversionFailed = errors.New("conversion failed")
)

var parseLogger = logger.GetForComponent("numeric_parser")

// AmountFromBaseUnits converts an integer base-unit amount (10^-precision of
// the display unit) into a human-unit float64.
func AmountFromBaseUnits(amount sdkmath.Int, precision int) (float64, error) {
	if precision < 0 || precision > 18 {
		return 0, fmt.Errorf("%w: %d (must be between 0 and 18)", ErrInvalidPrecision, precision)
	}
	if amount.IsNil() {
		return 0, ErrAmountNil
	}
	if amount.IsNegative() {
		return 0, ErrAmountNegative
	}

	decAmount := sdkmath.LegacyNewDecFromInt(amount)
	factor := sdkmath.LegacyNewDec(1)
	for i := 0; i < precision; i++ {
		factor = factor.Mul(sdkmath.LegacyNewDec(10))
	}

	result := decAmount.Quo(factor)
	resultFloat, err := result.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	if math.IsNaN(resultFloat) || math.IsInf(resultFloat, 0) {
		return 0, fmt.Errorf("%w: result is %f", ErrNotFinite, resultFloat)
	}

	return resultFloat, nil
}

// AmountFromBaseUnitString parses an integer base-unit string ("wei"-style)
// into a human-unit float64.
func AmountFromBaseUnitString(value string, precision int) (float64, error) {
	raw, ok := sdkmath.NewIntFromString(strings.TrimSpace(value))
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a valid base-unit integer", ErrConversionFailed, value)
	}
	return AmountFromBaseUnits(raw, precision)
}

// AmountFromDecimalString parses a human-readable decimal token amount.
func AmountFromDecimalString(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty decimal string", ErrConversionFailed)
	}

	var result float64
	dec, err := sdkmath.LegacyNewDecFromStr(trimmed)
	if err != nil {
		// LegacyDec rejects exponent notation; fall back to the standard
		// library for values like "1.5e3".
		parsed, perr := strconv.ParseFloat(trimmed, 64)
		if perr != nil {
			return 0, fmt.Errorf("%w: failed to create decimal from string: %w", ErrConversionFailed, err)
		}
		result = parsed
	} else {
		result, err = dec.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrConversionFailed, err)
		}
	}
	if result < 0 {
		return 0, ErrAmountNegative
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: result is %f", ErrNotFinite, result)
	}
	return result, nil
}

// AmountToBaseUnits converts a human-unit amount to base units with proper
// precision handling.
func AmountToBaseUnits(amount float64, precision int) (sdkmath.Int, error) {
	if precision < 0 || precision > 18 {
		return sdkmath.ZeroInt(), fmt.Errorf("%w: %d (must be between 0 and 18)", ErrInvalidPrecision, precision)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return sdkmath.ZeroInt(), fmt.Errorf("%w: amount is %f", ErrNotFinite, amount)
	}
	if amount < 0 {
		return sdkmath.ZeroInt(), ErrAmountNegative
	}
	if amount == 0 {
		return sdkmath.ZeroInt(), nil
	}

	// Use string conversion to avoid floating point precision issues
	formatStr := fmt.Sprintf("%%.%df", precision)
	amountStr := fmt.Sprintf(formatStr, amount)

	decAmount, err := sdkmath.LegacyNewDecFromStr(amountStr)
	if err != nil {
		return sdkmath.ZeroInt(), fmt.Errorf("%w: failed to create decimal from string: %w", ErrConversionFailed, err)
	}

	factor := sdkmath.LegacyNewDec(1)
	for i := 0; i < precision; i++ {
		factor = factor.Mul(sdkmath.LegacyNewDec(10))
	}

	result := decAmount.Mul(factor).TruncateInt()
	if result.IsNegative() {
		return sdkmath.ZeroInt(), ErrAmountNegative
	}

	return result, nil
}

// ParseAmount coerces a heterogeneously encoded amount into a human-unit
// float64. Rules, in order: nil and empty strings yield 0; strings that look
// like decimals (containing '.' or exponent notation) are parsed as
// human-readable token amounts; any other string is treated as an integer
// base-unit amount and divided by 10^18; native integers are base units and
// native floats are human units. The dual string representation is a
// documented policy of the deposit event feed, not a guess: callers may
// supply either form and get a consistent result.
//
// ParseAmount never fails: any malformed value is logged and substituted
// with 0 so that one bad field cannot sink a whole analysis.
func ParseAmount(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0
		}
		if strings.ContainsAny(trimmed, ".eE") {
			amount, err := AmountFromDecimalString(trimmed)
			if err != nil {
				parseLogger.Warn().Err(err).Str("value", trimmed).Msg("Unparseable decimal amount, substituting zero")
				return 0
			}
			return amount
		}
		amount, err := AmountFromBaseUnitString(trimmed, TokenPrecision)
		if err != nil {
			parseLogger.Warn().Err(err).Str("value", trimmed).Msg("Unparseable base-unit amount, substituting zero")
			return 0
		}
		return amount
	case sdkmath.Int:
		amount, err := AmountFromBaseUnits(v, TokenPrecision)
		if err != nil {
			parseLogger.Warn().Err(err).Str("value", v.String()).Msg("Unparseable base-unit amount, substituting zero")
			return 0
		}
		return amount
	case int:
		return ParseAmount(sdkmath.NewInt(int64(v)))
	case int64:
		return ParseAmount(sdkmath.NewInt(v))
	case uint64:
		return ParseAmount(sdkmath.NewIntFromUint64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			parseLogger.Warn().Float64("value", v).Msg("Invalid float amount, substituting zero")
			return 0
		}
		return v
	case float32:
		return ParseAmount(float64(v))
	default:
		parseLogger.Warn().Interface("value", value).Msg("Unsupported amount type, substituting zero")
		return 0
	}
}
