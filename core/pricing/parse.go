// ABOUTME: Price and rating parsing from raw storefront text fragments
// ABOUTME: Tolerates currency symbols, thousands separators and missing values

package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the first contiguous run of digits with at most
// one decimal separator, e.g. "1234.56" in "$1,234.56 per unit".
var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)

// ParsePrice extracts a price from raw storefront text. Thousands
// separators are stripped before matching. A missing or unparseable
// price returns 0, not an error: source markup legitimately omits
// prices for out-of-stock or ad placements, so absence is a valid,
// silent outcome. Callers filter zero-price entries before ranking.
func ParsePrice(text string) float64 {
	cleaned := strings.ReplaceAll(text, ",", "")
	match := numberPattern.FindString(cleaned)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// ParseRating extracts the first decimal number found in free text,
// e.g. "4.5 out of 5 stars" yields 4.5. Returns nil when the text
// contains no number; the caller records the product without a rating.
func ParseRating(text string) *float64 {
	match := numberPattern.FindString(text)
	if match == "" {
		return nil
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}

	return &value
}
