package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studio/handlers"
	"studio/models"
	"studio/routes"
	"studio/services/assistant"
	"studio/services/catalog"
	"studio/services/forms"
	"studio/services/lead"
	"studio/templates"
)

// newRouter wires the full storefront against the given backend base URL,
// mirroring the assembly in main.
func newRouter(apiBase string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	r := gin.New()
	r.SetHTMLTemplate(templates.Load())

	registry := catalog.NewRegistry()
	schemas := forms.NewSchemaRegistry()
	renderer := forms.NewRenderer()

	pages := handlers.NewPageHandler(registry, schemas, renderer)
	leads := handlers.NewLeadHandler(lead.NewController(registry, apiBase, logger))
	chat := handlers.NewAssistantHandler(assistant.NewClient(apiBase, assistant.NewMemoryStore(30*time.Minute), logger))

	hb := &handlers.HandlerBundle{
		HomeHandler:             pages.HomeHandler,
		ServicesHandler:         pages.ServicesHandler,
		OrderPageHandler:        pages.OrderPageHandler,
		LegacyServiceHandler:    pages.LegacyServiceHandler,
		SubmitLeadHandler:       leads.SubmitLeadHandler,
		AssistantSendHandler:    chat.SendMessageHandler,
		AssistantHistoryHandler: chat.HistoryHandler,
	}
	routes.RegisterRoutes(r, hb)
	return r
}

func TestHomePage(t *testing.T) {
	r := newRouter("http://backend.invalid")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Mon Portfolio Studio") {
		t.Error("home page missing brand title")
	}
	for _, id := range []string{"portfolio", "vitrine", "cv", "lettre"} {
		if !strings.Contains(body, "/order/"+id) {
			t.Errorf("home page missing headline link to %s", id)
		}
	}
}

func TestServicesPage(t *testing.T) {
	r := newRouter("http://backend.invalid")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Nos services") {
		t.Error("services page missing title")
	}
	// Every catalog entry gets a card.
	for _, id := range []string{"portfolio", "vitrine", "cv", "lettre", "linkedin", "audit", "landing-page", "google-business", "dashboard", "formulaire-base"} {
		if !strings.Contains(body, "/order/"+id) {
			t.Errorf("services page missing link to %s", id)
		}
	}
}

func TestOrderPage(t *testing.T) {
	r := newRouter("http://backend.invalid")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/vitrine", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="order-form-vitrine"`) {
		t.Error("order page missing form element")
	}
	if !strings.Contains(body, "/api/leads/vitrine") {
		t.Error("order page missing submit endpoint")
	}
	if strings.Contains(body, `value="vitrine" name="addons"`) || strings.Contains(body, `name="addons" value="vitrine"`) {
		t.Error("primary service must not appear among the add-ons")
	}
}

func TestOrderPageUnknownService(t *testing.T) {
	r := newRouter("http://backend.invalid")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Service introuvable") {
		t.Error("missing not-found message")
	}
}

func TestLegacyServiceRedirect(t *testing.T) {
	cases := []struct {
		mode string
		want string
	}{
		{"A", "/order/portfolio"},
		{"b", "/order/vitrine"},
		{"CV", "/order/cv"},
		{"lm", "/order/lettre"},
		{"Z", "/services"},
		{"", "/services"},
	}

	r := newRouter("http://backend.invalid")
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/service?mode="+tc.mode, nil))

		if w.Code != http.StatusFound {
			t.Errorf("mode %q: status = %d, want 302", tc.mode, w.Code)
			continue
		}
		if got := w.Header().Get("Location"); got != tc.want {
			t.Errorf("mode %q: redirect to %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestSubmitLeadUnknownService(t *testing.T) {
	r := newRouter("http://backend.invalid")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads/nope", strings.NewReader("nom=Test"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSubmitLead(t *testing.T) {
	var got models.LeadRequest
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode upstream body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "ref-1", "email_status": "sent"})
	}))
	defer backend.Close()

	r := newRouter(backend.URL)

	form := url.Values{}
	form.Set("nom", "Awa")
	form.Set("email", "awa@example.com")
	form.Add("addons", "cv")
	form.Add("addons", "lettre")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads/vitrine", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var notice models.Notice
	if err := json.Unmarshal(w.Body.Bytes(), &notice); err != nil {
		t.Fatalf("decode notice: %v", err)
	}
	if notice.Status != models.NoticeSuccess {
		t.Fatalf("notice = %+v", notice)
	}
	if notice.Reference != "ref-1" {
		t.Errorf("reference = %q", notice.Reference)
	}

	if got.ServiceType != "vitrine" {
		t.Errorf("upstream service_type = %q", got.ServiceType)
	}
	if len(got.Addons) != 2 || got.Addons[0] != "cv" || got.Addons[1] != "lettre" {
		t.Errorf("upstream addons = %v", got.Addons)
	}

	// A session cookie is issued on the first submission.
	var sessionSet bool
	for _, c := range w.Result().Cookies() {
		if c.Name == assistant.SessionCookie && c.Value != "" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Error("session cookie not set")
	}
}

func TestAssistantSend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ChatResponse{Reply: "Bonjour !"})
	}))
	defer backend.Close()

	r := newRouter(backend.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/send", strings.NewReader(`{"message":"salut"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if out.Reply != "Bonjour !" {
		t.Errorf("reply = %q", out.Reply)
	}
}

func TestAssistantSendRejectsEmpty(t *testing.T) {
	r := newRouter("http://backend.invalid")

	for _, body := range []string{`{}`, `{"message":"   "}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/assistant/send", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestAssistantHistory(t *testing.T) {
	r := newRouter("http://backend.invalid")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assistant/history", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(out.Messages) != 1 || out.Messages[0].Role != models.RoleBot {
		t.Errorf("fresh history should hold the greeting only, got %+v", out.Messages)
	}
}

func TestHealthRoute(t *testing.T) {
	r := newRouter("http://backend.invalid")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
