package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"studio/models"
)

// QuoteRequiredLabel is shown in place of a numeric price when a service has
// no fixed price.
const QuoteRequiredLabel = "Sur devis"

var frPrinter = message.NewPrinter(language.French)

// FormatCFA renders an integer CFA amount with French thousands grouping.
func FormatCFA(value int64) string {
	return frPrinter.Sprintf("%d", value)
}

// FormatUSD renders the USD approximation of a CFA amount at the fixed rate,
// to two decimal places.
func FormatUSD(value int64) string {
	return decimal.NewFromInt(value).
		Div(decimal.NewFromInt(RateUSD)).
		StringFixed(2)
}

// PriceLabel formats a service price line, e.g.
// "A partir de 59 900 CFA (~$99.83)". Quote-required services get the fixed
// label instead of a number.
func PriceLabel(svc *models.Service) string {
	if !svc.HasPrice() {
		return QuoteRequiredLabel
	}
	return fmt.Sprintf("%s%s CFA (~$%s)", svc.PricePrefix, FormatCFA(*svc.PriceCFA), FormatUSD(*svc.PriceCFA))
}
