package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"studio/models"
	"studio/services/catalog"
	"studio/utils"
)

// ErrInFlight is returned when a visitor triggers a second submission while
// the first is still running. The trigger is dropped, never queued.
var ErrInFlight = errors.New("lead: submission already in flight")

const (
	genericServerError  = "Erreur serveur"
	genericNetworkError = "Erreur d envoi: la requete n a pas abouti. Veuillez reessayer."
)

// Controller orchestrates one lead submission: serialize the entries, attach
// the computed pricing and service selection, POST to the backend and map the
// outcome to a user-visible notice. All failures become error notices; none
// propagate.
type Controller struct {
	Registry   *catalog.Registry
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger

	inflight *utils.InFlight
}

func NewController(reg *catalog.Registry, baseURL string, logger *zap.Logger) *Controller {
	return &Controller{
		Registry:   reg,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
		inflight:   utils.NewInFlight(),
	}
}

// Submit runs one submission for the given visitor. On success the notice
// carries the backend reference plus any advisory follow-up questions and
// delivery status; the form resets. On failure the notice carries the
// submitted values so the form re-renders pre-filled for a manual retry.
func (ctl *Controller) Submit(ctx context.Context, visitorID string, order models.OrderContext, entries []models.Entry) (models.Notice, error) {
	if !ctl.inflight.Begin(visitorID) {
		return models.Notice{}, ErrInFlight
	}
	defer ctl.inflight.End(visitorID)

	req := models.LeadRequest{
		ServiceType: order.ServiceID,
		Data:        Serialize(entries),
	}

	primary, known := ctl.Registry.ServiceByID(order.ServiceID)
	if (known && primary.HasPrice()) || len(order.Addons) > 0 {
		quote := ComputeQuote(ctl.Registry, order.ServiceID, order.Addons)
		req.Addons = order.Addons
		req.TotalCFA = &quote.TotalCFA
		req.TotalUSD = quote.TotalUSD
	}

	body, err := json.Marshal(req)
	if err != nil {
		ctl.Logger.Error("Failed to marshal lead request", zap.Error(err))
		return errorNotice(genericNetworkError, entries), nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, ctl.BaseURL+"/leads", bytes.NewReader(body))
	if err != nil {
		ctl.Logger.Error("Failed to build lead request", zap.Error(err))
		return errorNotice(genericNetworkError, entries), nil
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := ctl.HTTPClient.Do(httpReq)
	if err != nil {
		ctl.Logger.Error("Failed to call lead endpoint", zap.Error(err))
		return errorNotice(genericNetworkError, entries), nil
	}
	defer resp.Body.Close()

	// A malformed body is treated as an empty one; defaults fill the gaps.
	var result models.LeadResult
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		result = models.LeadResult{}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := result.Detail
		if detail == "" {
			detail = genericServerError
		}
		ctl.Logger.Warn("Lead endpoint returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail))
		return errorNotice("Erreur d envoi: "+detail, entries), nil
	}

	reference := "n/a"
	if result.ID != nil {
		reference = fmt.Sprint(result.ID)
	}
	ctl.Logger.Info("Lead submitted",
		zap.String("service", order.ServiceID),
		zap.String("reference", reference))

	return models.Notice{
		Status:      models.NoticeSuccess,
		Text:        fmt.Sprintf("Demande recue. Reference: %s.", reference),
		Reference:   reference,
		Questions:   result.Questions,
		EmailStatus: result.EmailStatus,
	}, nil
}

func errorNotice(text string, entries []models.Entry) models.Notice {
	return models.Notice{
		Status:   models.NoticeError,
		Text:     text,
		Retained: RetainedValues(entries),
	}
}
