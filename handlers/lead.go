package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/models"
	"studio/services/lead"
	"studio/utils"
)

// LeadHandler exposes the lead submission endpoint.
type LeadHandler struct {
	Controller *lead.Controller
}

func NewLeadHandler(ctl *lead.Controller) *LeadHandler {
	return &LeadHandler{Controller: ctl}
}

// SubmitLeadHandler accepts one intake form submission and returns the
// resulting notice. The response status is 200 for both success and error
// notices; the notice itself carries the outcome the page renders.
func (h *LeadHandler) SubmitLeadHandler(c *gin.Context) {
	serviceID := c.Param("service")
	if _, ok := h.Controller.Registry.ServiceByID(serviceID); !ok {
		utils.JSONError(c, http.StatusNotFound, "Service introuvable", "aucun service "+serviceID)
		return
	}

	entries, err := lead.EntriesFromRequest(c.Request)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Formulaire invalide", err.Error())
		return
	}

	order := models.OrderContext{
		ServiceID: serviceID,
		Addons:    addonSelection(entries),
	}

	notice, err := h.Controller.Submit(c.Request.Context(), EnsureSession(c), order, entries)
	if errors.Is(err, lead.ErrInFlight) {
		// A submission is already running for this visitor; the new trigger
		// is dropped, not queued.
		c.JSON(http.StatusConflict, models.Notice{Status: models.NoticeInfo, Text: "Envoi en cours..."})
		return
	}
	c.JSON(http.StatusOK, notice)
}

// addonSelection pulls the bundled add-on service ids out of the raw entries.
// The add-on checkboxes share one field name, so repeated occurrences arrive
// in submission order. The primary is excluded upstream by construction.
func addonSelection(entries []models.Entry) []string {
	var addons []string
	for _, e := range entries {
		if e.Name == "addons" && e.File == nil && e.Text != "" {
			addons = append(addons, e.Text)
		}
	}
	return addons
}
