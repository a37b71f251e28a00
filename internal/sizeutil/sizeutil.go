// Package sizeutil parses and formats human-readable byte sizes using
// binary units (1 KB = 1024 B).
//
// Parsing is strict: malformed input is reported through distinct sentinel
// errors rather than being coerced, and mantissa-times-multiplier products
// that would exceed the unsigned 64-bit range fail with ErrOverflow instead
// of wrapping.
package sizeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel parse errors, matchable with errors.Is.
var (
	// ErrEmpty is returned for empty or whitespace-only input.
	ErrEmpty = fmt.Errorf("empty size")
	// ErrInvalidNumber is returned when the mantissa is not a valid
	// decimal number.
	ErrInvalidNumber = fmt.Errorf("invalid number")
	// ErrInvalidUnit is returned for an unrecognized unit suffix.
	ErrInvalidUnit = fmt.Errorf("invalid unit")
	// ErrNegative is returned for a negative mantissa.
	ErrNegative = fmt.Errorf("negative size")
	// ErrOverflow is returned when the byte count would exceed the
	// representable unsigned 64-bit range.
	ErrOverflow = fmt.Errorf("size overflow")
)

// Binary unit multipliers.
const (
	Byte uint64 = 1
	KB          = 1024 * Byte
	MB          = 1024 * KB
	GB          = 1024 * MB
	TB          = 1024 * GB
)

var multipliers = map[string]uint64{
	"":   Byte,
	"b":  Byte,
	"kb": KB,
	"mb": MB,
	"gb": GB,
	"tb": TB,
}

// Parse converts a human-readable size string such as "500", "1KB" or
// "1.5 MB" into a byte count. The unit suffix is case-insensitive and
// defaults to bytes when absent; whitespace between mantissa and unit is
// tolerated. Units are binary multiples: 1 KB = 1024 B.
func Parse(text string) (uint64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("parse size %q: %w", text, ErrEmpty)
	}

	// Split into mantissa and unit at the first non-numeric rune.
	split := len(trimmed)
	for i, r := range trimmed {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			split = i
			break
		}
	}

	numPart := strings.TrimSpace(trimmed[:split])
	unitPart := strings.ToLower(strings.TrimSpace(trimmed[split:]))

	if numPart == "" {
		return 0, fmt.Errorf("parse size %q: %w", text, ErrInvalidNumber)
	}

	mantissa, err := strconv.ParseFloat(numPart, 64)
	if err != nil || math.IsNaN(mantissa) || math.IsInf(mantissa, 0) {
		return 0, fmt.Errorf("parse size %q: %w", text, ErrInvalidNumber)
	}
	if mantissa < 0 || strings.HasPrefix(numPart, "-") {
		return 0, fmt.Errorf("parse size %q: %w", text, ErrNegative)
	}

	mult, ok := multipliers[unitPart]
	if !ok {
		return 0, fmt.Errorf("parse size %q: unit %q: %w", text, unitPart, ErrInvalidUnit)
	}

	product := mantissa * float64(mult)
	// float64 comparison against MaxUint64 is conservative near the
	// boundary, which is acceptable: bounds that large are nonsensical.
	if product >= float64(math.MaxUint64) {
		return 0, fmt.Errorf("parse size %q: %w", text, ErrOverflow)
	}

	return uint64(product), nil
}

// Format renders a byte count with binary-unit scaling: the smallest unit
// that keeps the mantissa in [1, 1024), one decimal place, and a bare
// integer with a "B" suffix below 1024 (2048 -> "2.0 KB", 500 -> "500 B").
func Format(bytes uint64) string {
	if bytes < KB {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes) / 1024
	unit := "KB"
	for _, u := range []string{"KB", "MB", "GB", "TB"} {
		unit = u
		if value < 1024 || u == "TB" {
			break
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f %s", value, unit)
}
