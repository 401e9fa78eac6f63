package lead

import (
	"studio/models"
	"studio/services/catalog"
)

// ComputeQuote totals a bundle: the primary service plus the additional
// bundled services. A service without a numeric price contributes 0 rather
// than erroring; quote-required services are not offered as add-ons in the
// primary flow, but one slipping through must not break the total. Unknown
// identifiers contribute 0 as well.
//
// The returned quote carries only numbers; a "starting at" prefix on the
// primary price is the caller's concern when displaying the total.
func ComputeQuote(reg *catalog.Registry, primaryID string, addonIDs []string) models.Quote {
	var total int64
	if svc, ok := reg.ServiceByID(primaryID); ok && svc.HasPrice() {
		total += *svc.PriceCFA
	}
	for _, id := range addonIDs {
		if svc, ok := reg.ServiceByID(id); ok && svc.HasPrice() {
			total += *svc.PriceCFA
		}
	}
	return models.Quote{
		TotalCFA: total,
		TotalUSD: catalog.FormatUSD(total),
	}
}
