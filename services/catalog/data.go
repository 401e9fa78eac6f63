package catalog

import "studio/models"

// Fixed CFA -> USD conversion rate used for the secondary price display.
const RateUSD = 600

// Hosting add-on prices in CFA.
const (
	HostingMonthlyCFA = 2000
	HostingYearlyCFA  = 24000
)

// Direct contact channels shown across the storefront and named in the
// assistant fallback messages.
const (
	WhatsAppNumber = "+22892092572"
	WhatsAppLink   = "https://wa.me/22892092572"
	ContactEmail   = "senirolamadokou@gmail.com"
)

func cfa(v int64) *int64 { return &v }

var defaultCategories = []models.Category{
	{ID: "candidature", Label: "Candidature"},
	{ID: "web", Label: "Web"},
	{ID: "data", Label: "Data"},
}

var defaultServices = []models.Service{
	{
		ID:              "portfolio",
		ModeAliases:     []string{"A"},
		Category:        "candidature",
		Title:           "Portfolio candidat",
		Short:           "Portfolio (A)",
		CardDescription: "Portfolio pro pour convaincre en 2 minutes : projets, preuves, contacts, WhatsApp.",
		HeroTitle:       "Portfolio candidat clair et credible",
		HeroSubtitle:    "Projets, preuves et positionnement pour accelerer votre candidature.",
		PriceCFA:        cfa(29900),
	},
	{
		ID:              "vitrine",
		ModeAliases:     []string{"B"},
		Category:        "web",
		Title:           "Vitrine entreprise",
		Short:           "Vitrine (B)",
		CardDescription: "Site business oriente conversion : pages, preuves, CTA, contact.",
		HeroTitle:       "Vitrine entreprise a partir de 59 900 CFA",
		HeroSubtitle:    "Site vitrine structure pour obtenir des demandes qualifiees.",
		PriceCFA:        cfa(59900),
		PricePrefix:     "A partir de ",
		HasHosting:      true,
	},
	{
		ID:              "cv",
		ModeAliases:     []string{"CV"},
		Category:        "candidature",
		Title:           "CV professionnel",
		Short:           "CV",
		CardDescription: "CV clair, cible et optimise : structure, mots-cles, version finale.",
		HeroTitle:       "CV professionnel",
		HeroSubtitle:    "CV optimise pour emploi, stage, alternance et mobilite internationale.",
		PriceCFA:        cfa(9900),
	},
	{
		ID:              "lettre",
		ModeAliases:     []string{"LM"},
		Category:        "candidature",
		Title:           "Lettre de motivation",
		Short:           "Lettre",
		CardDescription: "Lettre adaptee au poste/programme : argumentaire, coherence, impact.",
		HeroTitle:       "Lettre de motivation",
		HeroSubtitle:    "Pour emploi, universite et bourse, avec un message solide et adapte.",
		PriceCFA:        cfa(4900),
	},
	{
		ID:              "linkedin",
		ModeAliases:     []string{},
		Category:        "candidature",
		Title:           "Optimisation LinkedIn",
		Short:           "LinkedIn",
		CardDescription: "Profil LinkedIn optimise : titre, resume, experience + positionnement pro.",
		HeroTitle:       "Optimisation LinkedIn",
		HeroSubtitle:    "Profil optimise pour recruteurs, clients et opportunites business.",
	},
	{
		ID:              "audit",
		ModeAliases:     []string{},
		Category:        "candidature",
		Title:           "Audit CV / Lettre",
		Short:           "Audit",
		CardDescription: "Analyse complete + corrections : points faibles, reformulation, version amelioree.",
		HeroTitle:       "Audit CV / Lettre",
		HeroSubtitle:    "Diagnostic rapide avec corrections actionnables et priorisees.",
	},
	{
		ID:              "landing-page",
		ModeAliases:     []string{},
		Category:        "web",
		Title:           "Landing page 1 page",
		Short:           "Landing",
		CardDescription: "Page unique rapide : offre, preuves, CTA WhatsApp, formulaire, conversion.",
		HeroTitle:       "Landing page 1 page",
		HeroSubtitle:    "Offre claire + CTA pour transformer le trafic en prospects.",
		HasHosting:      true,
	},
	{
		ID:              "google-business",
		ModeAliases:     []string{},
		Category:        "web",
		Title:           "Google Business Profile",
		Short:           "Google Business",
		CardDescription: "Creation/optimisation fiche Google Maps : infos, categories, visibilite locale.",
		HeroTitle:       "Google Business Profile",
		HeroSubtitle:    "Visibilite locale renforcee avec une fiche claire et bien optimisee.",
	},
	{
		ID:              "dashboard",
		ModeAliases:     []string{},
		Category:        "data",
		Title:           "Dashboard simple (ONG/PME)",
		Short:           "Dashboard",
		CardDescription: "Tableau de bord pour piloter : indicateurs, suivi, reporting clair.",
		HeroTitle:       "Dashboard simple ONG/PME",
		HeroSubtitle:    "Indicateurs utiles pour decider plus vite avec des donnees propres.",
	},
	{
		ID:              "formulaire-base",
		ModeAliases:     []string{},
		Category:        "data",
		Title:           "Formulaire + Base de donnees structuree",
		Short:           "Formulaire + Base",
		CardDescription: "Collecte + base propre : champs utiles, anti-doublons, organisation.",
		HeroTitle:       "Formulaire + Base de donnees structuree",
		HeroSubtitle:    "Collecte fiable et base exploitable pour vos operations quotidiennes.",
	},
}
