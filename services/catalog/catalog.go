package catalog

import (
	"strings"

	"studio/models"
)

// Registry is the immutable service catalog. It is built once at startup and
// injected into every consumer; nothing mutates it afterwards.
type Registry struct {
	categories []models.Category
	services   []models.Service
	byID       map[string]*models.Service
	byMode     map[string]*models.Service
}

// CategoryGroup pairs a category with its services, in declaration order.
type CategoryGroup struct {
	models.Category
	Services []*models.Service
}

// NewRegistry builds the registry from the static catalog data.
func NewRegistry() *Registry {
	return newRegistry(defaultCategories, defaultServices)
}

func newRegistry(categories []models.Category, services []models.Service) *Registry {
	reg := &Registry{
		categories: categories,
		services:   services,
		byID:       make(map[string]*models.Service, len(services)),
		byMode:     make(map[string]*models.Service),
	}
	for i := range reg.services {
		svc := &reg.services[i]
		reg.byID[svc.ID] = svc
		for _, alias := range svc.ModeAliases {
			reg.byMode[strings.ToUpper(alias)] = svc
		}
	}
	return reg
}

// ServiceByID looks up a service by its identifier.
func (r *Registry) ServiceByID(id string) (*models.Service, bool) {
	svc, ok := r.byID[id]
	return svc, ok
}

// ServiceByMode resolves a legacy mode short code (A, B, CV, LM) to its
// service. Matching is case-insensitive. Used only by the one-time
// compatibility redirect from the old mode-based routing.
func (r *Registry) ServiceByMode(mode string) (*models.Service, bool) {
	svc, ok := r.byMode[strings.ToUpper(strings.TrimSpace(mode))]
	return svc, ok
}

// Services returns all services in catalog order.
func (r *Registry) Services() []*models.Service {
	out := make([]*models.Service, len(r.services))
	for i := range r.services {
		out[i] = &r.services[i]
	}
	return out
}

// ByCategory returns the catalog grouped by category, both in declaration
// order.
func (r *Registry) ByCategory() []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(r.categories))
	for _, cat := range r.categories {
		group := CategoryGroup{Category: cat}
		for i := range r.services {
			if r.services[i].Category == cat.ID {
				group.Services = append(group.Services, &r.services[i])
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// PricedServicesExcept returns every service with a numeric price except the
// given one. These are the services offered as bundle add-ons on an order
// page; quote-required services are not offered for bundling.
func (r *Registry) PricedServicesExcept(id string) []*models.Service {
	var out []*models.Service
	for i := range r.services {
		svc := &r.services[i]
		if svc.ID != id && svc.HasPrice() {
			out = append(out, svc)
		}
	}
	return out
}
