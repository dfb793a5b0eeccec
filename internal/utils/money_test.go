package utils

import "testing"

func TestFormatLKR(t *testing.T) {
	cases := map[int64]string{
		0:       "LKR 0",
		950:     "LKR 950",
		1600:    "LKR 1,600",
		3200:    "LKR 3,200",
		1000000: "LKR 1,000,000",
		-2700:   "-LKR 2,700",
	}
	for amount, want := range cases {
		if got := FormatLKR(amount); got != want {
			t.Fatalf("FormatLKR(%d) = %q, want %q", amount, got, want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(`a b/c:d`); got != "a_b_c_d" {
		t.Fatalf("SafeFilenamePart = %q", got)
	}
	if got := SafeFilenamePart("  "); got != "NA" {
		t.Fatalf("SafeFilenamePart(blank) = %q", got)
	}
}
