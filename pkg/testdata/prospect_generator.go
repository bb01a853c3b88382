package testdata

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/prospect"
)

// ProspectGeneratorConfig configures prospect generation parameters
type ProspectGeneratorConfig struct {
	Type          string
	Count         int
	City          string
	CreatorID     uuid.UUID
	CompanyID     uuid.UUID
	EmailChance   float64 // 0.0-1.0 (probability of having email)
	PhoneChance   float64
	WebsiteChance float64
	AddressChance float64
}

type cityLocation struct {
	Latitude  float64
	Longitude float64
}

// CityCoordinates maps major French cities to their center coordinates
var CityCoordinates = map[string]cityLocation{
	"Paris":       {48.8566, 2.3522},
	"Marseille":   {43.2965, 5.3698},
	"Lyon":        {45.7640, 4.8357},
	"Toulouse":    {43.6047, 1.4442},
	"Nice":        {43.7102, 7.2620},
	"Nantes":      {47.2184, -1.5536},
	"Strasbourg":  {48.5734, 7.7521},
	"Montpellier": {43.6108, 3.8767},
	"Bordeaux":    {44.8378, -0.5792},
	"Lille":       {50.6292, 3.0573},
}

// Establishment-type name prefixes and suffixes
var establishmentNameParts = map[string]struct {
	Prefixes []string
	Suffixes []string
}{
	"hotel": {
		Prefixes: []string{"Hôtel", "Grand Hôtel", "Le Relais", "La Résidence", "Auberge", "Villa", "Château", "Le Clos", "Domaine", "Pavillon"},
		Suffixes: []string{"du Parc", "de la Gare", "Saint-Michel", "des Arts", "Beau Rivage", "de France", "Royal", "du Centre", "Bellevue", "des Vignes"},
	},
	"restaurant": {
		Prefixes: []string{"Le Bistrot", "La Table", "Chez", "L'Assiette", "Le Comptoir", "La Brasserie", "Au Coin", "Le Petit", "La Cantine", "L'Atelier"},
		Suffixes: []string{"Gourmand", "de Marcel", "du Marché", "des Halles", "Provençal", "du Port", "de la Place", "Savoyard", "Lyonnais", "des Chefs"},
	},
	"traiteur": {
		Prefixes: []string{"Traiteur", "Maison", "Les Saveurs", "Délices", "Réceptions", "Cuisine", "Au Banquet", "Gastronomie", "Buffets", "L'Art"},
		Suffixes: []string{"Dubois", "Gourmandes", "et Festins", "de Fête", "Martin", "Événements", "du Terroir", "Prestige", "et Saveurs", "de la Table"},
	},
	"ecole": {
		Prefixes: []string{"École", "Collège", "Lycée", "Institut", "Groupe Scolaire", "École Primaire", "Cité Scolaire"},
		Suffixes: []string{"Jules Ferry", "Victor Hugo", "Jean Moulin", "Sainte-Marie", "Pasteur", "Voltaire", "Camus", "Jean Jaurès", "Curie", "Molière"},
	},
	"hopital": {
		Prefixes: []string{"Centre Hospitalier", "Clinique", "Hôpital", "Polyclinique", "EHPAD", "Maison de Santé"},
		Suffixes: []string{"Saint-Joseph", "du Parc", "des Lilas", "Pasteur", "Sainte-Anne", "de la Côte", "Ambroise Paré", "du Val", "des Cèdres", "Bellevue"},
	},
}

// GenerateEstablishmentName creates type-specific realistic French business names
func GenerateEstablishmentName(establishmentType string) string {
	parts, ok := establishmentNameParts[establishmentType]
	if !ok {
		// Fallback for unknown types
		return fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.LastName())
	}

	prefix := parts.Prefixes[rand.Intn(len(parts.Prefixes))]
	suffix := parts.Suffixes[rand.Intn(len(parts.Suffixes))]

	return fmt.Sprintf("%s %s", prefix, suffix)
}

// GenerateProspect builds a single prospect create with realistic data
func GenerateProspect(client *ent.Client, config ProspectGeneratorConfig) *ent.ProspectCreate {
	name := GenerateEstablishmentName(config.Type)

	create := client.Prospect.Create().
		SetName(name).
		SetType(prospect.Type(config.Type)).
		SetCity(config.City).
		SetCountry("France").
		SetCreatorID(config.CreatorID)

	if config.CompanyID != uuid.Nil {
		create.SetCompanyID(config.CompanyID)
	}

	if loc, ok := CityCoordinates[config.City]; ok {
		// Scatter within roughly 5km of the city center
		create.SetLatitude(loc.Latitude + (rand.Float64()-0.5)*0.09)
		create.SetLongitude(loc.Longitude + (rand.Float64()-0.5)*0.09)
	}

	domain := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	domain = strings.Map(func(r rune) rune {
		if r == '\'' || r == 'é' || r == 'è' || r == 'ê' || r == 'ô' || r == 'î' || r == 'â' {
			return -1
		}
		return r
	}, domain)
	if len(domain) > 20 {
		domain = domain[:20]
	}

	if rand.Float64() < config.EmailChance {
		create.SetEmail(fmt.Sprintf("contact@%s.fr", domain))
	}
	if rand.Float64() < config.PhoneChance {
		create.SetPhone(fmt.Sprintf("+331%08d", rand.Intn(100000000)))
	}
	if rand.Float64() < config.WebsiteChance {
		create.SetWebsite(fmt.Sprintf("https://www.%s.fr", domain))
	}
	if rand.Float64() < config.AddressChance {
		create.SetAddress(fmt.Sprintf("%d %s", 1+rand.Intn(150), gofakeit.Street()))
		create.SetPostalCode(gofakeit.Zip())
	}

	return create
}

// GenerateProspects builds multiple prospect creates with the given config
func GenerateProspects(client *ent.Client, config ProspectGeneratorConfig) []*ent.ProspectCreate {
	creates := make([]*ent.ProspectCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		creates[i] = GenerateProspect(client, config)
	}
	return creates
}

// GenerateProspectsForType generates prospects of one type in a random city
func GenerateProspectsForType(client *ent.Client, establishmentType string, count int, creatorID uuid.UUID, companyID uuid.UUID) []*ent.ProspectCreate {
	cities := make([]string, 0, len(CityCoordinates))
	for city := range CityCoordinates {
		cities = append(cities, city)
	}
	city := cities[rand.Intn(len(cities))]

	return GenerateProspects(client, ProspectGeneratorConfig{
		Type:          establishmentType,
		Count:         count,
		City:          city,
		CreatorID:     creatorID,
		CompanyID:     companyID,
		EmailChance:   0.6,
		PhoneChance:   0.7,
		WebsiteChance: 0.5,
		AddressChance: 0.8,
	})
}
