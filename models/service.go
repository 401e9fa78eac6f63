package models

// Category groups services for catalog browsing.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Service is one entry of the static service catalog.
type Service struct {
	ID              string   `json:"id"`
	ModeAliases     []string `json:"modeAliases"`
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Short           string   `json:"short"`
	CardDescription string   `json:"cardDescription"`
	HeroTitle       string   `json:"heroTitle"`
	HeroSubtitle    string   `json:"heroSubtitle"`
	// PriceCFA is nil for "quote required" services; those never enter
	// numeric total computation.
	PriceCFA    *int64 `json:"priceCfa"`
	PricePrefix string `json:"pricePrefix,omitempty"`
	HasHosting  bool   `json:"hasHosting"`
}

// HasPrice reports whether the service carries a numeric price.
func (s *Service) HasPrice() bool {
	return s != nil && s.PriceCFA != nil
}
