package models

// FieldKind is the closed set of form control variants. The renderer matches
// exhaustively on it; adding a kind means adding a rendering strategy.
type FieldKind uint8

const (
	FieldText FieldKind = iota
	FieldTel
	FieldEmail
	FieldURL
	FieldTextarea
	FieldSelect
	FieldFile
)

// InputType returns the HTML input type attribute for the single-line kinds.
func (k FieldKind) InputType() string {
	switch k {
	case FieldTel:
		return "tel"
	case FieldEmail:
		return "email"
	case FieldURL:
		return "url"
	default:
		return "text"
	}
}

// Option is one value/label pair of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one form control. Name is the payload key and must stay
// stable across renders of the same service.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	// Options is set for FieldSelect only.
	Options []Option `json:"options,omitempty"`
	// Multiple is honored for FieldFile only.
	Multiple bool `json:"multiple,omitempty"`
}

// Section is an ordered group of fields with a title and an optional hint.
// Sections are shared templates; renderers must never mutate them.
type Section struct {
	Title  string  `json:"title"`
	Hint   string  `json:"hint,omitempty"`
	Fields []Field `json:"fields"`
}
