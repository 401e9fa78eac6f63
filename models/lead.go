package models

// FileMeta describes a selected file. Only metadata travels in the payload,
// never the file content.
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Payload maps field names to a scalar string, a FileMeta, or an ordered
// sequence of either (when the same name recurs in the submission).
type Payload map[string]any

// Entry is one raw name/value pair in browser submission order. Exactly one
// of Text and File is meaningful; File wins when set.
type Entry struct {
	Name string
	Text string
	File *FileMeta
}

// OrderContext carries the selected primary service and its bundled add-ons
// for one submission. Built fresh per request, consumed once, discarded.
type OrderContext struct {
	ServiceID string
	Addons    []string
}

// Quote is the computed bundle total in both display currencies.
type Quote struct {
	TotalCFA int64
	TotalUSD string
}

// LeadRequest is the body sent to the backend lead endpoint.
type LeadRequest struct {
	ServiceType string   `json:"service_type"`
	Data        Payload  `json:"data"`
	Addons      []string `json:"addons,omitempty"`
	TotalCFA    *int64   `json:"total_cfa,omitempty"`
	TotalUSD    string   `json:"total_usd,omitempty"`
}

// LeadResult is the backend response for a lead submission. ID may arrive as
// a number or a string depending on the backend version.
type LeadResult struct {
	ID          any      `json:"id"`
	Questions   []string `json:"questions"`
	EmailStatus string   `json:"email_status"`
	Detail      string   `json:"detail"`
}

// Notice states shown to the visitor after a submission attempt.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is the user-visible outcome of one submission attempt.
type Notice struct {
	Status    string   `json:"status"`
	Text      string   `json:"text"`
	Reference string   `json:"reference,omitempty"`
	// Advisory extras on success; they never block the success state.
	Questions   []string `json:"questions,omitempty"`
	EmailStatus string   `json:"email_status,omitempty"`
	// Retained holds the submitted scalar values on error so the form can be
	// re-rendered pre-filled. Empty on success: the form resets.
	Retained map[string]string `json:"retained,omitempty"`
}
