package models

// DefaultSettings returns the hardcoded site configuration used when no
// settings record has been persisted yet. Callers get a fresh copy.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		LogoImage:                "logo.png",
		CompanyName:              "Cedar Lux Properties",
		HeroImage:                "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&q=80&w=2070",
		HeroHeadline:             "Crafting Legacies on the Waterfront.",
		HeroSubheadline:          "Bespoke architectural masterpieces designed for those who demand the pinnacle of Cedar Creek Lake living.",
		LifestyleHeroImage:       "https://images.unsplash.com/photo-1526495124232-a02e18491103?auto=format&fit=crop&q=80&w=2070",
		LifestyleHeroHeadline:    "Texas' Premier Waterfront Sanctuary",
		LifestyleHeroSubheadline: "Discover the perfect balance of adrenaline-fueled adventure and serene lakeside tranquility, just 60 minutes from the heart of Dallas.",
		LifestyleHeadline:        "Elevate Your Lakeside Living.",
		LifestyleSubheadline:     "Unrivaled access, proximity to Dallas, and turn-key luxury for the discerning homeowner.",
		LifestyleImage:           "https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd?auto=format&fit=crop&q=80&w=2070",
		LifestyleQuote:           "It's more than a home; it's a legacy of summer memories.",
		LifestyleQuoteAuthor:     "The Thompson Family, Dallas TX",
		Activities: []Activity{
			{
				ID:          "1",
				Icon:        IconWaves,
				Title:       "Water Sports",
				Description: "Experience some of the deepest water in Texas. Perfect for high-performance wakeboarding, private sailing excursions, and jet skiing. Our estates include bespoke boat houses designed for rapid deployment.",
				Highlights:  []string{"Private Boat Slips", "Sunset Cruising"},
			},
			{
				ID:          "2",
				Icon:        IconFlag,
				Title:       "Elite Golfing",
				Description: "Home to the prestigious Pinnacle Golf Club and The King’s Creek. Enjoy manicured fairways that trace the shoreline, offering a world-class golfing experience just minutes from your front door.",
				Highlights:  []string{"Pro-Shop Services", "Lakeside Fairways"},
			},
			{
				ID:          "3",
				Icon:        IconUsers,
				Title:       "Family Traditions",
				Description: "From the legendary Fourth of July fireworks over the bay to weekend hikes at nearby Purtis Creek State Park. Create memories with family movie nights on the lawn and local Mabank festivals.",
				Highlights:  []string{"Local Festivities", "Nature Trails"},
			},
		},
		LocalSpots: []LocalSpot{
			{
				ID:          "1",
				Category:    CategoryDining,
				Title:       "Vetoni's Italian",
				Description: "The pinnacle of local dining. Authentic Italian cuisine in a refined setting, perfect for celebratory dinners.",
				Image:       "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?auto=format&fit=crop&q=80&w=2070",
				IsFeatured:  true,
			},
			{
				ID:          "2",
				Category:    CategoryDining,
				Title:       "Boondocks",
				Description: "A waterfront favorite for casual sunset cocktails and quality comfort food accessible directly by boat.",
				Image:       "https://images.unsplash.com/photo-1559339352-11d035aa65de?auto=format&fit=crop&q=80&w=2074",
				IsFeatured:  false,
			},
			{
				ID:          "3",
				Category:    CategoryShopping,
				Title:       "Old Main Street",
				Description: "Explore the historic boutiques in Mabank and Gun Barrel City for curated home decor and local artisan goods.",
				Image:       "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&q=80&w=2070",
				IsFeatured:  false,
			},
		},
		Neighborhoods:   []string{"Long Cove", "Enchanted Isle", "Pinnacle Club", "Star Harbor", "Beacon Hill"},
		Phone:           "214-555-0199",
		Email:           "info@cedarluxproperties.com",
		Address:         "Mabank, TX 75147",
		ExternalScripts: "",
	}
}

// SeedProperties returns the starter catalog shown before any listing has
// been saved. Callers get a fresh copy.
func SeedProperties() []Property {
	return []Property{
		{
			ID:          "1",
			Title:       "The Azure Peninsula Estate",
			Price:       3450000,
			Beds:        5,
			Baths:       6.5,
			Sqft:        6200,
			Description: "A masterpiece of modern lakefront living. Floor-to-ceiling windows offer 270-degree views of Cedar Creek Lake. Includes a double-decker boat house and infinity edge pool.",
			Image:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&q=80&w=2070",
			Gallery: []string{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&q=80&w=2070",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=2070",
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?auto=format&fit=crop&q=80&w=2090",
				"https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd?auto=format&fit=crop&q=80&w=2070",
			},
			Status:       StatusAvailable,
			Neighborhood: "Enchanted Isle",
			Features:     []string{"Wine Cellar", "Infinity Pool", "Private Beach", "Chef's Kitchen"},
		},
		{
			ID:          "2",
			Title:       "Sunset Cove Sanctuary",
			Price:       2890000,
			Beds:        4,
			Baths:       4.5,
			Sqft:        4800,
			Description: "Rustic elegance meets high-end luxury in this custom timber-frame home. Nestled in a private cove, offering the ultimate in tranquility.",
			Image:       "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=2070",
			Gallery: []string{
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=2070",
				"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?auto=format&fit=crop&q=80&w=1974",
			},
			Status:       StatusUnderConstruction,
			Neighborhood: "Pinnacle Golf Club",
			Features:     []string{"Outdoor Kitchen", "Guest Casita", "Boat Lift", "Smart Home System"},
		},
		{
			ID:          "3",
			Title:       "Waterfront Modernist",
			Price:       4200000,
			Beds:        6,
			Baths:       7.5,
			Sqft:        7500,
			Description: "The pinnacle of luxury in East Texas. This sprawling estate features marble throughout, a private theater, and a master suite that defines opulence.",
			Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?auto=format&fit=crop&q=80&w=2090",
			Gallery: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?auto=format&fit=crop&q=80&w=2090",
				"https://images.unsplash.com/photo-1600566753376-12c8ab7fb75b?auto=format&fit=crop&q=80&w=2070",
			},
			Status:       StatusSold,
			Neighborhood: "Long Cove",
			Features:     []string{"Home Theater", "Elevator", "Putting Green", "Steam Room"},
		},
	}
}
