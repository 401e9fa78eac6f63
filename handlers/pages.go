package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/services/assistant"
	"studio/services/catalog"
	"studio/services/forms"
)

// PageHandler serves the server-rendered storefront pages.
type PageHandler struct {
	Registry *catalog.Registry
	Schemas  forms.SchemaRegistry
	Renderer *forms.Renderer
}

func NewPageHandler(reg *catalog.Registry, schemas forms.SchemaRegistry, renderer *forms.Renderer) *PageHandler {
	return &PageHandler{Registry: reg, Schemas: schemas, Renderer: renderer}
}

type serviceCard struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	PriceLabel  string
}

// HomeHandler renders the landing page: the four headline services plus the
// hosting price ribbon.
func (h *PageHandler) HomeHandler(c *gin.Context) {
	var headline []serviceCard
	for _, svc := range h.Registry.Services() {
		if len(svc.ModeAliases) == 0 {
			continue
		}
		headline = append(headline, serviceCard{
			ID:          svc.ID,
			Title:       svc.Title,
			Subtitle:    svc.HeroSubtitle,
			Description: svc.CardDescription,
			PriceLabel:  catalog.PriceLabel(svc),
		})
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"BrandTitle":     "Mon Portfolio Studio",
		"BrandSubtitle":  "Portfolio, Vitrine, CV, Lettre",
		"Headline":       headline,
		"HostingMonthly": fmt.Sprintf("%s CFA (~$%s) / mois", catalog.FormatCFA(catalog.HostingMonthlyCFA), catalog.FormatUSD(catalog.HostingMonthlyCFA)),
		"HostingYearly":  fmt.Sprintf("%s CFA (~$%s) / an", catalog.FormatCFA(catalog.HostingYearlyCFA), catalog.FormatUSD(catalog.HostingYearlyCFA)),
		"ContactEmail":   catalog.ContactEmail,
		"WhatsAppLink":   catalog.WhatsAppLink,
		"WhatsAppNumber": catalog.WhatsAppNumber,
	})
}

// ServicesHandler renders the full catalog grouped by category.
func (h *PageHandler) ServicesHandler(c *gin.Context) {
	type categoryView struct {
		Label    string
		Count    int
		Services []serviceCard
	}

	var groups []categoryView
	for _, group := range h.Registry.ByCategory() {
		view := categoryView{Label: group.Label, Count: len(group.Services)}
		for _, svc := range group.Services {
			view.Services = append(view.Services, serviceCard{
				ID:          svc.ID,
				Title:       svc.Title,
				Description: svc.CardDescription,
				PriceLabel:  catalog.PriceLabel(svc),
			})
		}
		groups = append(groups, view)
	}

	c.HTML(http.StatusOK, "services.tmpl", gin.H{
		"BrandTitle":    "Nos services",
		"BrandSubtitle": "Catalogue complet",
		"Groups":        groups,
		"ContactEmail":  catalog.ContactEmail,
		"WhatsAppLink":  catalog.WhatsAppLink,
	})
}

// OrderPageHandler renders a service's dedicated intake form. An unknown
// identifier gets a "service introuvable" page with a link back to the
// catalog instead of a blank or crashing page.
func (h *PageHandler) OrderPageHandler(c *gin.Context) {
	serviceID := c.Param("service")
	svc, ok := h.Registry.ServiceByID(serviceID)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{
			"ServiceID": serviceID,
		})
		return
	}

	type addonView struct {
		ID    string
		Label string
	}
	var addons []addonView
	for _, addon := range h.Registry.PricedServicesExcept(svc.ID) {
		addons = append(addons, addonView{
			ID:    addon.ID,
			Label: fmt.Sprintf("%s - %s", addon.Short, catalog.PriceLabel(addon)),
		})
	}

	sections := h.Schemas.Resolve(svc.ID)

	c.HTML(http.StatusOK, "order.tmpl", gin.H{
		"BrandTitle":     svc.Title,
		"BrandSubtitle":  "Formulaire dedie",
		"Service":        svc,
		"PriceLabel":     catalog.PriceLabel(svc),
		"FormID":         forms.FormID(svc.ID),
		"Sections":       h.Renderer.Sections(sections, nil),
		"Addons":         addons,
		"SubmitURL":      "/api/leads/" + svc.ID,
		"WhatsAppLink":   catalog.WhatsAppLink,
		"ContactEmail":   catalog.ContactEmail,
		"WhatsAppText":   fmt.Sprintf("Bonjour, je viens de soumettre le formulaire %s.", svc.Title),
		"QuickQuestions": assistant.QuickQuestions,
		"Greeting":       assistant.Greeting,
	})
}

// LegacyServiceHandler redirects the superseded mode-letter routing
// (/service?mode=A|B|CV|LM) to the identifier-based order pages. Unknown
// modes land on the catalog.
func (h *PageHandler) LegacyServiceHandler(c *gin.Context) {
	if svc, ok := h.Registry.ServiceByMode(c.Query("mode")); ok {
		c.Redirect(http.StatusFound, "/order/"+svc.ID)
		return
	}
	c.Redirect(http.StatusFound, "/services")
}
