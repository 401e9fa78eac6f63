package forms

import (
	"fmt"
	"html/template"
	"strings"

	"studio/models"
)

// Renderer turns section templates into HTML controls. Rendering is a pure
// function of the sections and the optional pre-fill values; it never writes
// back into the shared section definitions.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

var controlTemplates = template.Must(template.New("controls").Parse(`
{{define "input"}}<div><label for="field_{{.ID}}">{{.Label}}{{if .Required}} *{{end}}</label><input id="field_{{.ID}}" class="input" name="{{.Name}}" type="{{.InputType}}"{{if .Required}} required{{end}}{{with .Placeholder}} placeholder="{{.}}"{{end}}{{with .Value}} value="{{.}}"{{end}}></div>{{end}}
{{define "textarea"}}<div><label for="field_{{.ID}}">{{.Label}}{{if .Required}} *{{end}}</label><textarea id="field_{{.ID}}" name="{{.Name}}"{{if .Required}} required{{end}}{{with .Placeholder}} placeholder="{{.}}"{{end}}>{{.Value}}</textarea></div>{{end}}
{{define "select"}}<div><label for="field_{{.ID}}">{{.Label}}{{if .Required}} *{{end}}</label><select id="field_{{.ID}}" class="input" name="{{.Name}}"{{if .Required}} required{{end}}><option value="">Selectionner</option>{{$v := .Value}}{{range .Options}}<option value="{{.Value}}"{{if eq .Value $v}} selected{{end}}>{{.Label}}</option>{{end}}</select></div>{{end}}
{{define "file"}}<div><label for="field_{{.ID}}">{{.Label}}{{if .Required}} *{{end}}</label><input id="field_{{.ID}}" class="input" name="{{.Name}}" type="file"{{if .Required}} required{{end}}{{if .Multiple}} multiple{{end}}></div>{{end}}
{{define "section"}}<section class="form-block"><div class="section-head compact"><h3>{{.Title}}</h3>{{with .Hint}}<p>{{.}}</p>{{end}}</div><div class="form-grid">{{range .Fields}}{{.}}{{end}}</div></section>{{end}}
`))

type fieldView struct {
	models.Field
	ID        string
	InputType string
	Value     string
}

type sectionView struct {
	Title  string
	Hint   string
	Fields []template.HTML
}

// Field renders one interactive control bound to the field name. Required
// fields rely on the browser's built-in required validation to block native
// submission. The value, when present, pre-fills the control on an error
// re-render.
func (r *Renderer) Field(f models.Field, value string) template.HTML {
	view := fieldView{Field: f, ID: f.Name, Value: value}

	var name string
	switch f.Kind {
	case models.FieldText, models.FieldTel, models.FieldEmail, models.FieldURL:
		name = "input"
		view.InputType = f.Kind.InputType()
	case models.FieldTextarea:
		name = "textarea"
	case models.FieldSelect:
		// The leading empty option keeps "not yet chosen" distinguishable
		// from the first real option.
		name = "select"
	case models.FieldFile:
		// File selections are never echoed back.
		name = "file"
		view.Value = ""
	default:
		panic(fmt.Sprintf("forms: unhandled field kind %d", f.Kind))
	}

	var buf strings.Builder
	if err := controlTemplates.ExecuteTemplate(&buf, name, view); err != nil {
		panic(fmt.Sprintf("forms: render field %q: %v", f.Name, err))
	}
	return template.HTML(buf.String())
}

// Section renders a grouped fieldset for one section.
func (r *Renderer) Section(s models.Section, values map[string]string) template.HTML {
	view := sectionView{Title: s.Title, Hint: s.Hint}
	for _, f := range s.Fields {
		view.Fields = append(view.Fields, r.Field(f, values[f.Name]))
	}
	var buf strings.Builder
	if err := controlTemplates.ExecuteTemplate(&buf, "section", view); err != nil {
		panic(fmt.Sprintf("forms: render section %q: %v", s.Title, err))
	}
	return template.HTML(buf.String())
}

// Sections renders the full ordered section list. The caller keys the
// enclosing <form> on the service id (see FormID) so switching services
// remounts every control from empty.
func (r *Renderer) Sections(sections []models.Section, values map[string]string) []template.HTML {
	out := make([]template.HTML, 0, len(sections))
	for _, s := range sections {
		out = append(out, r.Section(s, values))
	}
	return out
}

// FormID derives the DOM id for a service's form element. Keying the form
// subtree on the active service prevents stale values surviving a service
// switch.
func FormID(serviceID string) string {
	return "order-form-" + serviceID
}
