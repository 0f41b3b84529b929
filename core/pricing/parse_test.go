package pricing

import "testing"

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  float64
	}{
		{"dollar with thousands separator", "$1,234.56", 1234.56},
		{"plain number", "19.99", 19.99},
		{"currency prefix", "USD 42.00", 42.00},
		{"whole price fragment", "249", 249},
		{"embedded in text", "Now only $15.49 while stocks last", 15.49},
		{"leading decimal point", ".99", 0.99},
		{"empty string", "", 0},
		{"no digits", "Free", 0},
		{"whitespace only", "   ", 0},
		{"large value", "$12,345,678.90", 12345678.90},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePrice(tc.input)
			if got != tc.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParsePrice_NeverNegative(t *testing.T) {
	inputs := []string{"-5.00", "discount -20%", "$-3"}

	for _, input := range inputs {
		got := ParsePrice(input)
		if got < 0 {
			t.Errorf("ParsePrice(%q) = %v, want >= 0", input, got)
		}
	}
}

func TestParseRating(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  float64
	}{
		{"stars phrase", "4.5 out of 5 stars", 4.5},
		{"bare number", "3.8", 3.8},
		{"integer rating", "5 stars", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseRating(tc.input)
			if got == nil {
				t.Fatalf("ParseRating(%q) = nil, want %v", tc.input, tc.want)
			}
			if *got != tc.want {
				t.Errorf("ParseRating(%q) = %v, want %v", tc.input, *got, tc.want)
			}
		})
	}
}

func TestParseRating_Absent(t *testing.T) {
	inputs := []string{"", "No reviews", "not yet rated"}

	for _, input := range inputs {
		if got := ParseRating(input); got != nil {
			t.Errorf("ParseRating(%q) = %v, want nil", input, *got)
		}
	}
}
