package content

// HeroWords rotate inside the landing headline brackets.
var HeroWords = []string{"MEMORY", "PASSION", "CRAFT"}

// HeroLede sits under the landing headline.
const HeroLede = "Ember & Oak is a sensory-first destination where every course is plated like theater: smoke, " +
	"texture, and flame orchestrated into a warm, high-end dining ritual."

// Story is the sourcing section of the landing page.
var Story = Page{
	Slug:     "/#story",
	Title:    "Story",
	Kicker:   "The Story",
	Headline: "Built from provenance. Finished in flame.",
	Lede: "Head Chef Elias Marrow sources from regenerative farms within 90 miles, then layers each plate " +
		"with open-fire technique and old-world restraint.",
	Sections: []Section{{
		Heading: "Ingredient Origin",
		Entries: []Entry{
			{Title: "Highland Ranch Cooperative", Detail: "Grass-fed beef, finished for deep marbling and clean mineral notes."},
			{Title: "Riverbend Market Garden", Detail: "Seasonal roots, bitter greens, and aromatic herbs harvested pre-dawn."},
			{Title: "Blackline Millworks", Detail: "Custom-aged oak and fruitwood blocks chosen for nuanced smoke profiles."},
		},
	}},
}

// BeyondThePlate previews the two informational pages.
var BeyondThePlate = Page{
	Slug:     "/#culture-preview",
	Title:    "Beyond the Plate",
	Kicker:   "Beyond the Plate",
	Headline: "Understand the food before you order it.",
	Lede: "Explore dedicated pages that explain ingredients, technique, dining rhythm, and the cultural " +
		"influences that shape each chapter of the menu.",
	Sections: []Section{{
		Heading: "Dedicated pages",
		Entries: []Entry{
			{Title: "How to read the menu and pair confidently.", Detail: "Learn flavor profiles, heat levels, dietary symbols, and pairing logic so ordering feels simple on any device."},
			{Title: "The stories, rituals, and people behind the kitchen.", Detail: "See how sourcing, seasonality, and service traditions come together to create the Ember & Oak dining culture."},
		},
	}},
	Links: []Link{
		{Label: "Open Food Guide", Target: "/food-guide"},
		{Label: "Explore Culture", Target: "/culture"},
	},
}

// FoodGuide is the /food-guide page.
var FoodGuide = Page{
	Slug:        "/food-guide",
	Title:       "Food Guide | EMBER & OAK",
	Description: "Understand heat levels, dietary tags, and pairing logic before you browse the menu.",
	Kicker:      "Food Guide",
	Headline:    "A practical guide to flavor, tags, and pairings.",
	Lede: "This page helps guests understand the live menu quickly, especially on small screens where " +
		"speed and clarity matter.",
	Sections: []Section{
		{
			Heading: "Menu signals",
			Entries: []Entry{
				{Title: "Heat Labels", Detail: "Mild, Warm, and Bold labels help guests quickly find comfort or intensity before opening a dish card."},
				{Title: "Dietary Tags", Detail: "Vegetarian, Vegan, Gluten Free, and Signature badges stay visible on every card and in plate details."},
				{Title: "Pairing Hint", Detail: "Each dish includes a pairing recommendation to reduce guesswork and improve first-time ordering confidence."},
			},
		},
		{
			Heading: "Pairing rules",
			Entries: []Entry{
				{Title: "Earth + Mineral Whites", Detail: "Roasted vegetables and herb-driven plates pair well with bright whites that keep smoky sweetness in balance."},
				{Title: "Fire + Structured Reds", Detail: "Bold proteins need tannin and body. Cabernet and Syrah match oakfire texture without muting spice."},
				{Title: "Sea + Citrus Lift", Detail: "Use high-acid wines and clean cocktails to cut richness in butter and charred shellfish dishes."},
				{Title: "Sweet + Aged Fortified", Detail: "Late-harvest and tawny profiles echo caramelized notes while preserving contrast in desserts."},
			},
		},
		{
			Heading: "Dietary keys",
			Entries: []Entry{
				{Title: "Vegetarian", Detail: "No meat or fish. May include dairy or egg."},
				{Title: "Vegan", Detail: "No animal products. Great for plant-forward courses."},
				{Title: "Gluten Free", Detail: "Prepared without gluten-containing ingredients."},
				{Title: "Signature", Detail: "Chef-defining dish and ideal first pick for new guests."},
			},
		},
	},
	Closing: "Ready to apply this guide? Open the live menu atlas and browse dishes with confidence.",
	Links: []Link{
		{Label: "Open Menu Atlas", Target: "/#menu"},
		{Label: "Explore Culture", Target: "/culture"},
	},
}

// Culture is the /culture page.
var Culture = Page{
	Slug:        "/culture",
	Title:       "Food Culture | EMBER & OAK",
	Description: "Learn about sourcing culture, service rituals, and regional influences behind the Ember & Oak menu.",
	Kicker:      "Food Culture",
	Headline:    "The stories, rituals, and people behind the kitchen.",
	Lede: "Ember & Oak treats culture as part of the menu. Every dish reflects sourcing relationships, " +
		"regional influence, and service rituals that make the dining experience easier to understand for new guests.",
	Sections: []Section{
		{
			Heading: "Culture pillars",
			Entries: []Entry{
				{Title: "Seasonal Sourcing", Detail: "The kitchen rotates ingredients weekly based on harvest windows from nearby growers and fisheries."},
				{Title: "Open-Fire Craft", Detail: "Heat is layered in stages: smoke for aroma, ember for texture, and rest for flavor concentration."},
				{Title: "Shared Table Ritual", Detail: "Courses are paced for conversation, with sides and pairings designed for communal tasting."},
			},
		},
		{
			Heading:  "Dining flow",
			Numbered: true,
			Entries: []Entry{
				{Step: "01", Title: "Arrival Pour", Detail: "Guests start with a welcome sip chosen for season and climate."},
				{Step: "02", Title: "Warm Starter", Detail: "Vegetable-forward plates open the palate before heavier fire cuts."},
				{Step: "03", Title: "Fire Chapter", Detail: "Core protein course is synchronized with cellar pairings and hearth sides."},
				{Step: "04", Title: "Sweet Finish", Detail: "Dessert and digestif service close the experience with lighter aromatic notes."},
			},
		},
		{
			Heading: "Community nights",
			Entries: []Entry{
				{Title: "Producer Thursday", Detail: "Farm and fishery partners join service for ingredient storytelling at table side."},
				{Title: "Regional Sunday Supper", Detail: "A weekly menu inspired by one food region and its cooking traditions."},
				{Title: "Zero-Waste Lab", Detail: "Monthly dinner that highlights full-ingredient use and preservation methods."},
			},
		},
	},
	Links: []Link{
		{Label: "View Story Section", Target: "/#story"},
		{Label: "Read Food Guide", Target: "/food-guide"},
	},
}
