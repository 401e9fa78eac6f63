package lead

import (
	"testing"

	"studio/services/catalog"
)

func TestComputeQuoteBundle(t *testing.T) {
	reg := catalog.NewRegistry()

	quote := ComputeQuote(reg, "vitrine", []string{"cv"})
	if quote.TotalCFA != 69800 {
		t.Errorf("TotalCFA = %d, want 69800", quote.TotalCFA)
	}
	if quote.TotalUSD != "116.33" {
		t.Errorf("TotalUSD = %q, want 116.33", quote.TotalUSD)
	}
}

func TestComputeQuoteSingleService(t *testing.T) {
	reg := catalog.NewRegistry()

	quote := ComputeQuote(reg, "cv", nil)
	if quote.TotalCFA != 9900 {
		t.Errorf("TotalCFA = %d, want 9900", quote.TotalCFA)
	}
	if quote.TotalUSD != "16.50" {
		t.Errorf("TotalUSD = %q, want 16.50", quote.TotalUSD)
	}
}

func TestComputeQuoteQuoteRequiredContributesZero(t *testing.T) {
	reg := catalog.NewRegistry()

	// A quote-required add-on slipping into a bundle must not break the sum.
	quote := ComputeQuote(reg, "vitrine", []string{"audit"})
	if quote.TotalCFA != 59900 {
		t.Errorf("TotalCFA = %d, want 59900", quote.TotalCFA)
	}

	// Same with a quote-required primary.
	quote = ComputeQuote(reg, "audit", []string{"cv"})
	if quote.TotalCFA != 9900 {
		t.Errorf("TotalCFA = %d, want 9900", quote.TotalCFA)
	}
}

func TestComputeQuoteUnknownIDs(t *testing.T) {
	reg := catalog.NewRegistry()

	quote := ComputeQuote(reg, "inconnu", []string{"aussi-inconnu"})
	if quote.TotalCFA != 0 {
		t.Errorf("TotalCFA = %d, want 0", quote.TotalCFA)
	}
	if quote.TotalUSD != "0.00" {
		t.Errorf("TotalUSD = %q, want 0.00", quote.TotalUSD)
	}
}
