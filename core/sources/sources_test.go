package sources

import (
	"net/url"
	"testing"
	"time"
)

func TestOptions_WithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	if opts.Timeout != 10*time.Second {
		t.Errorf("default Timeout = %v, want 10s", opts.Timeout)
	}
	if opts.MaxResults != 3 {
		t.Errorf("default MaxResults = %v, want 3", opts.MaxResults)
	}
}

func TestOptions_WithDefaults_KeepsExplicitValues(t *testing.T) {
	opts := Options{Timeout: 2 * time.Second, MaxResults: 5}.withDefaults()

	if opts.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", opts.Timeout)
	}
	if opts.MaxResults != 5 {
		t.Errorf("MaxResults = %v, want 5", opts.MaxResults)
	}
}

func TestResolveLink(t *testing.T) {
	base, _ := url.Parse("https://www.example.com")

	testCases := []struct {
		name string
		href string
		want string
	}{
		{"relative path", "/dp/B012345", "https://www.example.com/dp/B012345"},
		{"absolute URL kept", "https://other.example.com/x", "https://other.example.com/x"},
		{"empty href", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveLink(base, tc.href)
			if got != tc.want {
				t.Errorf("resolveLink(%q) = %v, want %v", tc.href, got, tc.want)
			}
		})
	}
}
