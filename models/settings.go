package models

// ActivityIcon names the icon the frontend renders next to an activity.
// The set is closed; the frontend maps each name to a glyph.
type ActivityIcon string

const (
	IconWaves       ActivityIcon = "Waves"
	IconFlag        ActivityIcon = "Flag"
	IconUsers       ActivityIcon = "Users"
	IconShoppingBag ActivityIcon = "ShoppingBag"
	IconUtensils    ActivityIcon = "Utensils"
	IconStar        ActivityIcon = "Star"
	IconSun         ActivityIcon = "Sun"
	IconCoffee      ActivityIcon = "Coffee"
	IconAnchor      ActivityIcon = "Anchor"
)

func (i ActivityIcon) Valid() bool {
	switch i {
	case IconWaves, IconFlag, IconUsers, IconShoppingBag, IconUtensils,
		IconStar, IconSun, IconCoffee, IconAnchor:
		return true
	}
	return false
}

// SpotCategory buckets a local spot on the lifestyle page.
type SpotCategory string

const (
	CategoryDining     SpotCategory = "Dining"
	CategoryShopping   SpotCategory = "Shopping"
	CategoryAttraction SpotCategory = "Attraction"
)

func (c SpotCategory) Valid() bool {
	switch c {
	case CategoryDining, CategoryShopping, CategoryAttraction:
		return true
	}
	return false
}

// Activity is one entry in the lifestyle page's activity list.
// Its id is unique within that list only.
type Activity struct {
	ID          string       `json:"id"`
	Icon        ActivityIcon `json:"icon"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Highlights  []string     `json:"highlights"`
}

// LocalSpot is one entry in the lifestyle page's local recommendations list.
type LocalSpot struct {
	ID          string       `json:"id"`
	Category    SpotCategory `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	IsFeatured  bool         `json:"isFeatured"`
}

// ActivityPatch carries a partial activity update; nil fields are left unchanged.
type ActivityPatch struct {
	Icon        *ActivityIcon `json:"icon,omitempty"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Highlights  *[]string     `json:"highlights,omitempty"`
}

// LocalSpotPatch carries a partial local spot update; nil fields are left unchanged.
type LocalSpotPatch struct {
	Category    *SpotCategory `json:"category,omitempty"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Image       *string       `json:"image,omitempty"`
	IsFeatured  *bool         `json:"isFeatured,omitempty"`
}

// SiteSettings is the single site-wide configuration record. Exactly one
// exists per deployment; absent persisted data yields DefaultSettings.
type SiteSettings struct {
	// Brand
	LogoImage   string `json:"logoImage"`
	CompanyName string `json:"companyName"`
	// Hero (home page)
	HeroImage       string `json:"heroImage"`
	HeroHeadline    string `json:"heroHeadline"`
	HeroSubheadline string `json:"heroSubheadline"`
	// Hero (lifestyle page)
	LifestyleHeroImage       string `json:"lifestyleHeroImage"`
	LifestyleHeroHeadline    string `json:"lifestyleHeroHeadline"`
	LifestyleHeroSubheadline string `json:"lifestyleHeroSubheadline"`
	// Lifestyle teaser on the home page
	LifestyleHeadline    string `json:"lifestyleHeadline"`
	LifestyleSubheadline string `json:"lifestyleSubheadline"`
	LifestyleImage       string `json:"lifestyleImage"`
	LifestyleQuote       string `json:"lifestyleQuote"`
	LifestyleQuoteAuthor string `json:"lifestyleQuoteAuthor"`
	// Lists
	Activities []Activity  `json:"activities"`
	LocalSpots []LocalSpot `json:"localSpots"`
	// Metadata and contact
	Neighborhoods []string `json:"neighborhoods"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	// Opaque markup injected by the frontend for trusted admin integrations.
	// Stored and served verbatim; replaced wholesale on every save.
	ExternalScripts string `json:"externalScripts"`
}

// Clone returns a deep copy of the settings record.
func (s SiteSettings) Clone() SiteSettings {
	c := s
	if s.Activities != nil {
		c.Activities = make([]Activity, len(s.Activities))
		for i, a := range s.Activities {
			c.Activities[i] = a
			if a.Highlights != nil {
				c.Activities[i].Highlights = append([]string(nil), a.Highlights...)
			}
		}
	}
	if s.LocalSpots != nil {
		c.LocalSpots = append([]LocalSpot(nil), s.LocalSpots...)
	}
	if s.Neighborhoods != nil {
		c.Neighborhoods = append([]string(nil), s.Neighborhoods...)
	}
	return c
}
