package domain

import "testing"

func TestNormalizePaymentStatus(t *testing.T) {
	cases := map[string]PaymentStatus{
		"Confirmed": PaymentConfirmed,
		"paid":      PaymentConfirmed,
		"FAILED":    PaymentFailed,
		"rejected":  PaymentFailed,
		"Pending":   PaymentPending,
		"":          PaymentPending,
		"  ":        PaymentPending,
		"weird":     PaymentPending,
	}
	for in, want := range cases {
		if got := NormalizePaymentStatus(in); got != want {
			t.Fatalf("NormalizePaymentStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
