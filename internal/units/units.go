// Package units converts between byte counts and the human-readable size
// strings used throughout dirt.
//
// The conventions are fixed: sizes are base-1024 and labelled
// Byte, Kb, Mb, Gb, Tb, Pb, Xb, Zb and Yb. Parsing is case-insensitive
// and a bare number is taken as bytes.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxPrecision is the largest supported number of decimal places.
const MaxPrecision = 11

// symbols holds the size labels, one per 1024 step.
//
//nolint:gochecknoglobals // Unit label table
var symbols = [...]string{"Byte", "Kb", "Mb", "Gb", "Tb", "Pb", "Xb", "Zb", "Yb"}

// ErrInvalidSize is returned when a size string cannot be parsed.
var ErrInvalidSize = errors.New("invalid size")

// Parse converts a human-readable size string to bytes.
//
//	Parse("400") == Parse("400 byte") == 400
//	Parse("2 Kb") == 2048
//	Parse("2.4kb") == 2457
//	Parse("1 Gb") == 1073741824
//
// Fractional byte counts are truncated. Sizes that do not fit in an int64
// are rejected.
func Parse(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSize)
	}

	// Two-letter symbol suffix (Kb..Yb)
	if len(value) > 2 {
		if index := symbolIndex(value[len(value)-2:]); index > 0 {
			num, err := parseNumber(value[:len(value)-2], value)
			if err != nil {
				return 0, err
			}

			return scale(num, index, value)
		}
	}

	// "byte" suffix
	if len(value) > 4 && strings.EqualFold(value[len(value)-4:], "byte") {
		num, err := parseNumber(value[:len(value)-4], value)
		if err != nil {
			return 0, err
		}

		return int64(num), nil
	}

	// No symbol given, take the value as plain bytes
	num, err := parseNumber(value, value)
	if err != nil {
		return 0, err
	}

	return int64(num), nil
}

// Format converts a byte count to its human-readable representation,
// rounded to the given number of decimal places with trailing zeros
// trimmed:
//
//	Format(1024+512, 2) == "1.5 Kb"
//	Format(2456, 11) == "2.3984375 Kb"
//	Format(1048576, 2) == "1 Mb"
//
// Negative values are treated as zero.
func Format(value int64, precision int) string {
	if value < 0 {
		value = 0
	}

	if value < 1024 {
		return fmt.Sprintf("%d %s", value, symbols[0])
	}

	for i := len(symbols) - 1; i >= 1; i-- {
		shift := uint(10 * i) //nolint:gosec // i is a small positive constant

		size := value >> shift
		if size == 0 {
			continue
		}

		// Whole units at this scale plus the fractional remainder
		whole := size << shift
		remaining := float64(value-whole) / float64(int64(1)<<shift)
		scaled := roundTo(float64(size)+remaining, precision)

		if scaled == math.Trunc(scaled) {
			return fmt.Sprintf("%d %s", int64(scaled), symbols[i])
		}

		return strconv.FormatFloat(scaled, 'f', -1, 64) + " " + symbols[i]
	}

	return fmt.Sprintf("%d %s", value, symbols[0])
}

// symbolIndex returns the index of a two-letter size symbol, matched
// case-insensitively, or 0 when it is not one.
func symbolIndex(symbol string) int {
	for i, known := range symbols[1:] {
		if strings.EqualFold(symbol, known) {
			return i + 1
		}
	}

	return 0
}

// parseNumber parses the numeric part of a size string.
func parseNumber(num, original string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot convert %q to a number", ErrInvalidSize, original)
	}

	return parsed, nil
}

// scale multiplies a parsed number by 1024^index, truncating the result.
func scale(num float64, index int, original string) (int64, error) {
	scaled := num * math.Ldexp(1, 10*index)
	if scaled >= math.MaxInt64 || scaled <= math.MinInt64 {
		return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrInvalidSize, original)
	}

	return int64(scaled), nil
}

// roundTo rounds to the given number of decimal places, clamped to
// [0, MaxPrecision].
func roundTo(value float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}

	if precision > MaxPrecision {
		precision = MaxPrecision
	}

	pow := math.Pow(10, float64(precision))

	return math.Round(value*pow) / pow
}
