package forms

import "studio/models"

// SchemaRegistry resolves a service identifier to its ordered form sections.
type SchemaRegistry interface {
	Resolve(serviceID string) []models.Section
}

// DefaultSchemaRegistry implements SchemaRegistry over the static section
// definitions. Sections are shared templates; Resolve hands them out without
// copying, so callers must treat them as read-only.
type DefaultSchemaRegistry struct {
	common   []models.Section
	specific map[string][]models.Section
}

func NewSchemaRegistry() *DefaultSchemaRegistry {
	return &DefaultSchemaRegistry{
		common:   commonSections,
		specific: serviceSections,
	}
}

// Resolve returns the common sections followed by the service-specific ones.
// An unknown service id yields the common sections alone: the page degrades
// to a generic intake form instead of failing closed.
func (r *DefaultSchemaRegistry) Resolve(serviceID string) []models.Section {
	specific := r.specific[serviceID]
	out := make([]models.Section, 0, len(r.common)+len(specific))
	out = append(out, r.common...)
	out = append(out, specific...)
	return out
}

var commonSections = []models.Section{
	{
		Title: "Coordonnees",
		Hint:  "Ces informations nous permettent de vous recontacter rapidement.",
		Fields: []models.Field{
			{Name: "full_name", Label: "Nom et prenom", Kind: models.FieldText, Required: true},
			{Name: "phone", Label: "WhatsApp / Telephone", Kind: models.FieldTel, Required: true},
			{Name: "email", Label: "Email (optionnel)", Kind: models.FieldEmail},
			{Name: "country", Label: "Pays", Kind: models.FieldText, Required: true},
			{Name: "city", Label: "Ville", Kind: models.FieldText, Required: true},
		},
	},
	{
		Title: "Delai & budget",
		Hint:  "Si vous avez une urgence ou un budget cible, indiquez-le ici.",
		Fields: []models.Field{
			{Name: "deadline", Label: "Delai souhaite", Kind: models.FieldSelect, Required: true, Options: []models.Option{
				{Value: "24-72h", Label: "24-72h"},
				{Value: "3-7j", Label: "3-7j"},
				{Value: "autre", Label: "Autre"},
			}},
			{Name: "budget_range", Label: "Budget (plage) (optionnel)", Kind: models.FieldText},
		},
	},
	{
		Title: "Message & fichiers",
		Hint:  "Ajoutez tout detail utile. Vous pouvez aussi partager un lien Drive.",
		Fields: []models.Field{
			{Name: "message", Label: "Message complementaire", Kind: models.FieldTextarea},
			{Name: "files_common", Label: "Fichiers (optionnel)", Kind: models.FieldFile, Multiple: true},
		},
	},
}
