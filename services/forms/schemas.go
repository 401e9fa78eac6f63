package forms

import "studio/models"

var yesNoOptions = []models.Option{
	{Value: "oui", Label: "Oui"},
	{Value: "non", Label: "Non"},
}

var serviceSections = map[string][]models.Section{
	"portfolio": {
		{
			Title: "Cible et positionnement",
			Hint:  "Ces informations servent a construire le message central du portfolio.",
			Fields: []models.Field{
				{Name: "objectif", Label: "Objectif", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "emploi", Label: "Emploi"},
					{Value: "stage", Label: "Stage"},
					{Value: "alternance", Label: "Alternance"},
					{Value: "freelance", Label: "Freelance"},
				}},
				{Name: "metier_vise", Label: "Metier vise", Kind: models.FieldText, Required: true},
				{Name: "liens", Label: "Liens a integrer (LinkedIn, GitHub, Behance, etc.)", Kind: models.FieldTextarea, Required: true},
				{Name: "projets", Label: "Projets (3 a 6) : titre + description + lien/preuve", Kind: models.FieldTextarea, Required: true},
				{Name: "about", Label: "Section a propos (5 a 10 lignes)", Kind: models.FieldTextarea, Required: true},
				{Name: "contacts", Label: "Contacts a afficher (email, WhatsApp)", Kind: models.FieldTextarea, Required: true},
				{Name: "style", Label: "Style souhaite", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "sobre", Label: "Sobre"},
					{Value: "moderne", Label: "Moderne"},
					{Value: "creatif", Label: "Creatif"},
				}},
				{Name: "photo", Label: "Photo (optionnel)", Kind: models.FieldFile},
			},
		},
	},
	"vitrine": {
		{
			Title: "Entreprise",
			Hint:  "Base legale et commerciale du projet.",
			Fields: []models.Field{
				{Name: "company_name", Label: "Nom entreprise", Kind: models.FieldText, Required: true},
				{Name: "sector", Label: "Activite / secteur", Kind: models.FieldText, Required: true},
				{Name: "offre_principale", Label: "Offre principale (ce que vous vendez)", Kind: models.FieldTextarea, Required: true},
				{Name: "objectif", Label: "Objectif", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "whatsapp", Label: "Leads WhatsApp"},
					{Value: "appels", Label: "Appels"},
					{Value: "email", Label: "Email"},
					{Value: "vente", Label: "Vente"},
				}},
				{Name: "pages_souhaitees", Label: "Pages souhaitees", Kind: models.FieldTextarea, Required: true},
				{Name: "preuves", Label: "Preuves (temoignages, realisations, clients)", Kind: models.FieldTextarea},
				{Name: "logo_couleurs", Label: "Logo + couleurs (optionnel)", Kind: models.FieldTextarea},
				{Name: "domaine", Label: "Domaine (si deja)", Kind: models.FieldText},
				{Name: "hebergement", Label: "Hebergement", Kind: models.FieldSelect, Required: true, Options: yesNoOptions},
			},
		},
	},
	"cv": {
		{
			Title: "CV professionnel",
			Hint:  "Informations necessaires pour livrer un CV cible et efficace.",
			Fields: []models.Field{
				{Name: "poste_vise", Label: "Poste vise", Kind: models.FieldText, Required: true},
				{Name: "niveau", Label: "Niveau", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "debutant", Label: "Debutant"},
					{Value: "intermediaire", Label: "Intermediaire"},
					{Value: "senior", Label: "Senior"},
				}},
				{Name: "pays_secteur", Label: "Pays/secteur cible", Kind: models.FieldText, Required: true},
				{Name: "cv_actuel", Label: "CV actuel (upload)", Kind: models.FieldFile, Required: true},
				{Name: "points_corriger", Label: "Points a corriger (optionnel)", Kind: models.FieldTextarea},
				{Name: "langue", Label: "Langue", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "FR", Label: "FR"},
					{Value: "EN", Label: "EN"},
					{Value: "FR+EN", Label: "FR + EN"},
				}},
			},
		},
	},
	"lettre": {
		{
			Title: "Lettre de motivation",
			Hint:  "Informations necessaires pour une lettre ciblee.",
			Fields: []models.Field{
				{Name: "type", Label: "Type", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "emploi", Label: "Emploi"},
					{Value: "universite", Label: "Universite"},
					{Value: "bourse", Label: "Bourse"},
				}},
				{Name: "poste_formation", Label: "Poste/formation cible", Kind: models.FieldText, Required: true},
				{Name: "organisation", Label: "Organisation/ecole", Kind: models.FieldText, Required: true},
				{Name: "cv_actuel", Label: "CV actuel (upload)", Kind: models.FieldFile, Required: true},
				{Name: "points_cles", Label: "Points cles a mettre en avant (3 a 6 bullets)", Kind: models.FieldTextarea, Required: true},
				{Name: "langue", Label: "Langue", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "FR", Label: "FR"},
					{Value: "EN", Label: "EN"},
				}},
			},
		},
	},
	"linkedin": {
		{
			Title: "Optimisation LinkedIn",
			Hint:  "Informations pour optimiser votre profil et votre positionnement.",
			Fields: []models.Field{
				{Name: "profil_linkedin", Label: "Lien du profil LinkedIn", Kind: models.FieldURL, Required: true},
				{Name: "metier_positionnement", Label: "Metier / positionnement vise", Kind: models.FieldText, Required: true},
				{Name: "cibles", Label: "Cibles (recruteurs / clients / ONG / etc.)", Kind: models.FieldTextarea, Required: true},
				{Name: "competences", Label: "5 competences a mettre en avant", Kind: models.FieldTextarea, Required: true},
				{Name: "experiences", Label: "Experiences cles (resume)", Kind: models.FieldTextarea, Required: true},
				{Name: "langue", Label: "Langue", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "FR", Label: "FR"},
					{Value: "EN", Label: "EN"},
				}},
				{Name: "post_linkedin", Label: "1 post LinkedIn pret a publier", Kind: models.FieldSelect, Options: yesNoOptions},
			},
		},
	},
	"audit": {
		{
			Title: "Audit CV / Lettre",
			Hint:  "Nous analysons et corrigeons vos documents.",
			Fields: []models.Field{
				{Name: "type_audit", Label: "Type audit", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "cv", Label: "CV"},
					{Value: "lettre", Label: "Lettre"},
					{Value: "les-deux", Label: "Les deux"},
				}},
				{Name: "fichiers", Label: "Fichiers (upload)", Kind: models.FieldFile, Required: true, Multiple: true},
				{Name: "poste_cible", Label: "Poste/formation cible", Kind: models.FieldText, Required: true},
				{Name: "attentes", Label: "Attentes (clarte / impact / coherence / mots-cles)", Kind: models.FieldTextarea, Required: true},
				{Name: "langue", Label: "Langue", Kind: models.FieldSelect, Options: []models.Option{
					{Value: "FR", Label: "FR"},
					{Value: "EN", Label: "EN"},
				}},
			},
		},
	},
	"landing-page": {
		{
			Title: "Landing page 1 page",
			Hint:  "Offre, preuves et CTA pour convertir.",
			Fields: []models.Field{
				{Name: "nom_activite", Label: "Nom activite", Kind: models.FieldText, Required: true},
				{Name: "offre_principale", Label: "Offre principale", Kind: models.FieldTextarea, Required: true},
				{Name: "public_cible", Label: "Public cible", Kind: models.FieldText, Required: true},
				{Name: "cta_principal", Label: "CTA principal", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "whatsapp", Label: "WhatsApp"},
					{Value: "formulaire", Label: "Formulaire"},
					{Value: "appel", Label: "Appel"},
				}},
				{Name: "texte_existant", Label: "Texte existant (optionnel)", Kind: models.FieldTextarea},
				{Name: "preuves", Label: "References/preuves (optionnel)", Kind: models.FieldTextarea},
				{Name: "logo_couleurs", Label: "Logo + couleurs (optionnel)", Kind: models.FieldTextarea},
				{Name: "domaine_hebergement", Label: "Domaine/hebergement (oui/non)", Kind: models.FieldSelect, Options: yesNoOptions},
			},
		},
	},
	"google-business": {
		{
			Title: "Google Business Profile",
			Hint:  "Ameliorez votre visibilite locale.",
			Fields: []models.Field{
				{Name: "nom_etablissement", Label: "Nom de l etablissement", Kind: models.FieldText, Required: true},
				{Name: "adresse_zone", Label: "Adresse / zone", Kind: models.FieldText, Required: true},
				{Name: "telephone", Label: "Telephone", Kind: models.FieldTel, Required: true},
				{Name: "categorie", Label: "Categorie principale", Kind: models.FieldText, Required: true},
				{Name: "horaires", Label: "Horaires", Kind: models.FieldTextarea, Required: true},
				{Name: "description_courte", Label: "Description courte", Kind: models.FieldTextarea, Required: true},
				{Name: "lien_site", Label: "Lien site (optionnel)", Kind: models.FieldURL},
				{Name: "photos", Label: "Photos disponibles (upload) (optionnel)", Kind: models.FieldFile, Multiple: true},
				{Name: "acces_fiche", Label: "Acces a la fiche (deja existante ? oui/non)", Kind: models.FieldSelect, Required: true, Options: yesNoOptions},
			},
		},
	},
	"dashboard": {
		{
			Title: "Dashboard simple ONG/PME",
			Hint:  "Un tableau de bord clair pour piloter vos activites.",
			Fields: []models.Field{
				{Name: "type_organisation", Label: "Type organisation", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "ong", Label: "ONG"},
					{Value: "pme", Label: "PME"},
					{Value: "projet", Label: "Projet"},
				}},
				{Name: "objectif_dashboard", Label: "Objectif du dashboard", Kind: models.FieldTextarea, Required: true},
				{Name: "source_donnees", Label: "Source des donnees", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "excel", Label: "Excel"},
					{Value: "google-sheet", Label: "Google Sheet"},
					{Value: "csv", Label: "CSV"},
					{Value: "autre", Label: "Autre"},
				}},
				{Name: "fichier", Label: "Fichier (upload) (optionnel)", Kind: models.FieldFile, Multiple: true},
				{Name: "lien_fichier", Label: "Lien (si pas upload)", Kind: models.FieldURL, Required: true},
				{Name: "indicateurs", Label: "Indicateurs souhaites (liste)", Kind: models.FieldTextarea, Required: true},
				{Name: "frequence", Label: "Frequence mise a jour", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "hebdo", Label: "Hebdo"},
					{Value: "mensuel", Label: "Mensuel"},
					{Value: "manuel", Label: "Manuel"},
				}},
			},
		},
	},
	"formulaire-base": {
		{
			Title: "Formulaire + Base de donnees structuree",
			Hint:  "Collecte fiable et base propre pour vos operations.",
			Fields: []models.Field{
				{Name: "type_base", Label: "Type de base", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "membres", Label: "Membres"},
					{Value: "beneficiaires", Label: "Beneficiaires"},
					{Value: "clients", Label: "Clients"},
					{Value: "projets", Label: "Projets"},
				}},
				{Name: "champs_indispensables", Label: "Champs indispensables (liste)", Kind: models.FieldTextarea, Required: true},
				{Name: "volume", Label: "Volume estime (approx)", Kind: models.FieldText, Required: true},
				{Name: "canal_collecte", Label: "Canal de collecte", Kind: models.FieldSelect, Required: true, Options: []models.Option{
					{Value: "google-form", Label: "Google Form"},
					{Value: "whatsapp", Label: "WhatsApp"},
					{Value: "appel", Label: "Appel"},
					{Value: "terrain", Label: "Terrain"},
				}},
				{Name: "anti_doublons", Label: "Besoin anti-doublons", Kind: models.FieldSelect, Required: true, Options: yesNoOptions},
				{Name: "export_excel", Label: "Besoin export (Excel)", Kind: models.FieldSelect, Required: true, Options: yesNoOptions},
				{Name: "multi_users", Label: "Besoin acces multi-utilisateurs", Kind: models.FieldSelect, Required: true, Options: yesNoOptions},
			},
		},
	},
}
