package catalog

import "github.com/contactvanshdev-code/restaurant-website/internal/model"

// items is the full menu in declaration order. Declaration order is the
// display order; nothing re-sorts it.
var items = []model.Item{
	{
		ID:          "earth-01",
		Category:    model.CategoryEarth,
		Name:        "Coal-Roasted Beet Carpaccio",
		Description: "Black garlic crema, preserved citrus, dill pollen.",
		Price:       "$21",
		Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Heirloom beet", "Black garlic", "Citrus oil", "Dill pollen"},
		Allergens:   []string{"Dairy"},
		Pairing:     "Dry Riesling, Finger Lakes",
		Dietary:     []model.DietaryTag{model.TagVegetarian, model.TagSignature},
		Heat:        model.HeatMild,
	},
	{
		ID:          "earth-02",
		Category:    model.CategoryEarth,
		Name:        "Fire-Leaf Caesar",
		Description: "Charred gem lettuce, anchovy crumb, sourdough ash crisp.",
		Price:       "$19",
		Image:       "https://images.unsplash.com/photo-1547592180-85f173990554?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Gem lettuce", "Aged parmesan", "Anchovy", "Sourdough"},
		Allergens:   []string{"Fish", "Dairy", "Gluten"},
		Pairing:     "Vermentino, Sardinia",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatMild,
	},
	{
		ID:          "earth-03",
		Category:    model.CategoryEarth,
		Name:        "Smoked Wild Mushroom Pot",
		Description: "King oyster, chestnut cream, sherry reduction.",
		Price:       "$23",
		Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"King oyster mushroom", "Chestnut", "Sherry", "Thyme smoke"},
		Allergens:   []string{"Dairy"},
		Pairing:     "Oaked Chardonnay, Sonoma",
		Dietary:     []model.DietaryTag{model.TagVegetarian, model.TagSignature},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "earth-04",
		Category:    model.CategoryEarth,
		Name:        "Tomato Ember Tartine",
		Description: "Confit tomato, basil coal oil, whipped ricotta.",
		Price:       "$18",
		Image:       "https://images.unsplash.com/photo-1498837167922-ddd27525d352?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Tomato confit", "Ricotta", "Basil oil", "Country bread"},
		Allergens:   []string{"Dairy", "Gluten"},
		Pairing:     "Rose, Provence",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatMild,
	},
	{
		ID:          "earth-05",
		Category:    model.CategoryEarth,
		Name:        "Ash-Baked Celeriac",
		Description: "Brown butter, hazelnut granola, apple skin powder.",
		Price:       "$22",
		Image:       "https://images.unsplash.com/photo-1506368249639-73a05d6f6488?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Celeriac", "Brown butter", "Hazelnut", "Apple"},
		Allergens:   []string{"Tree nuts", "Dairy"},
		Pairing:     "Chenin Blanc, Loire",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "earth-06",
		Category:    model.CategoryEarth,
		Name:        "Garden Ember Board",
		Description: "Seasonal grilled vegetables, smoked tahini, herbs.",
		Price:       "$25",
		Image:       "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Seasonal vegetables", "Tahini", "Lemon", "Mint"},
		Allergens:   []string{"Sesame"},
		Pairing:     "Assyrtiko, Santorini",
		Dietary:     []model.DietaryTag{model.TagVegan, model.TagGlutenFree},
		Heat:        model.HeatMild,
	},
	{
		ID:          "fire-01",
		Category:    model.CategoryFire,
		Name:        "48-Hour Oakfire Ribeye",
		Description: "Bone marrow butter, ember onion, pepper jus.",
		Price:       "$68",
		Image:       "https://images.unsplash.com/photo-1558030006-450675393462?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Dry-aged ribeye", "Bone marrow", "Pepper jus", "Charred onion"},
		Allergens:   []string{"Dairy"},
		Pairing:     "Cabernet Sauvignon, Napa",
		Dietary:     []model.DietaryTag{model.TagSignature, model.TagGlutenFree},
		Heat:        model.HeatBold,
	},
	{
		ID:          "fire-02",
		Category:    model.CategoryFire,
		Name:        "Coal-Hung Lamb Saddle",
		Description: "Sunchoke puree, blackberry gastrique, rosemary smoke.",
		Price:       "$55",
		Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Lamb saddle", "Sunchoke", "Blackberry", "Rosemary"},
		Allergens:   []string{"None"},
		Pairing:     "Syrah, Northern Rhone",
		Dietary:     []model.DietaryTag{model.TagGlutenFree},
		Heat:        model.HeatBold,
	},
	{
		ID:          "fire-03",
		Category:    model.CategoryFire,
		Name:        "Charred Chicken Supreme",
		Description: "Miso glaze, grilled lemon, roasted garlic jus.",
		Price:       "$39",
		Image:       "https://images.unsplash.com/photo-1604503468506-a8da13d82791?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Chicken supreme", "Miso", "Lemon", "Garlic"},
		Allergens:   []string{"Soy"},
		Pairing:     "Chablis Premier Cru",
		Dietary:     []model.DietaryTag{model.TagGlutenFree},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "fire-04",
		Category:    model.CategoryFire,
		Name:        "Whiskey-Glazed Short Rib",
		Description: "Slow fire braise, smoked carrot, crispy shallot.",
		Price:       "$47",
		Image:       "https://images.unsplash.com/photo-1558030006-450675393462?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Beef short rib", "Whiskey glaze", "Carrot", "Shallot"},
		Allergens:   []string{"Gluten"},
		Pairing:     "Zinfandel, Lodi",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatBold,
	},
	{
		ID:          "fire-05",
		Category:    model.CategoryFire,
		Name:        "Cedar-Smoked Duck Breast",
		Description: "Sour cherry lacquer, bitter greens, duck jus.",
		Price:       "$52",
		Image:       "https://images.unsplash.com/photo-1559847844-5315695dadae?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Duck breast", "Cherry glaze", "Greens", "Cedar smoke"},
		Allergens:   []string{"None"},
		Pairing:     "Pinot Noir, Burgundy",
		Dietary:     []model.DietaryTag{model.TagGlutenFree},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "fire-06",
		Category:    model.CategoryFire,
		Name:        "Fireline Pork Collar",
		Description: "Apple mustard glaze, charred fennel, crackling.",
		Price:       "$42",
		Image:       "https://images.unsplash.com/photo-1432139555190-58524dae6a55?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Pork collar", "Apple mustard", "Fennel", "Cider jus"},
		Allergens:   []string{"Mustard"},
		Pairing:     "Grenache, Priorat",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatBold,
	},
	{
		ID:          "sea-01",
		Category:    model.CategorySea,
		Name:        "Cedar-Plank King Salmon",
		Description: "Brown butter miso, smoked lemon, pickled fennel.",
		Price:       "$46",
		Image:       "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"King salmon", "Brown butter", "Miso", "Fennel"},
		Allergens:   []string{"Fish", "Soy", "Dairy"},
		Pairing:     "Pinot Noir, Willamette",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "sea-02",
		Category:    model.CategorySea,
		Name:        "Coal-Seared Scallops",
		Description: "Corn veloute, nduja oil, grilled baby leek.",
		Price:       "$44",
		Image:       "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Scallops", "Corn veloute", "Nduja", "Leek"},
		Allergens:   []string{"Shellfish", "Dairy"},
		Pairing:     "Albarino, Rias Baixas",
		Dietary:     []model.DietaryTag{model.TagSignature, model.TagGlutenFree},
		Heat:        model.HeatBold,
	},
	{
		ID:          "sea-03",
		Category:    model.CategorySea,
		Name:        "Fire-Grilled Octopus",
		Description: "Smoked chickpea puree, charred chili, herbs.",
		Price:       "$37",
		Image:       "https://images.unsplash.com/photo-1551248429-40975aa4de74?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Octopus", "Chickpea", "Chili", "Parsley"},
		Allergens:   []string{"None"},
		Pairing:     "Godello, Valdeorras",
		Dietary:     []model.DietaryTag{model.TagGlutenFree},
		Heat:        model.HeatBold,
	},
	{
		ID:          "sea-04",
		Category:    model.CategorySea,
		Name:        "Smoked Prawn Skillet",
		Description: "Garlic butter, charred sourdough, parsley ash.",
		Price:       "$35",
		Image:       "https://images.unsplash.com/photo-1525755662778-989d0524087e?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Prawns", "Garlic butter", "Parsley", "Sourdough"},
		Allergens:   []string{"Shellfish", "Dairy", "Gluten"},
		Pairing:     "Sauvignon Blanc, Marlborough",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "sea-05",
		Category:    model.CategorySea,
		Name:        "Whole Branzino Ember Roast",
		Description: "Caper brown butter, citrus peel, fresh herbs.",
		Price:       "$49",
		Image:       "https://images.unsplash.com/photo-1553621042-f6e147245754?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Branzino", "Caper", "Butter", "Citrus peel"},
		Allergens:   []string{"Fish", "Dairy"},
		Pairing:     "Etna Bianco, Sicily",
		Dietary:     []model.DietaryTag{model.TagGlutenFree},
		Heat:        model.HeatMild,
	},
	{
		ID:          "sea-06",
		Category:    model.CategorySea,
		Name:        "Shellfish Coal Broth",
		Description: "Mussels, clams, fennel smoke, saffron oil.",
		Price:       "$41",
		Image:       "https://images.unsplash.com/photo-1525755662778-989d0524087e?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Mussels", "Clams", "Fennel", "Saffron"},
		Allergens:   []string{"Shellfish"},
		Pairing:     "Picpoul de Pinet",
		Dietary:     []model.DietaryTag{model.TagGlutenFree},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "hearth-01",
		Category:    model.CategoryHearth,
		Name:        "Ash Potato Gratin",
		Description: "Comte cream, smoked shallot, crisp thyme.",
		Price:       "$16",
		Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Potato", "Comte", "Cream", "Shallot"},
		Allergens:   []string{"Dairy"},
		Pairing:     "Chardonnay, Burgundy",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatMild,
	},
	{
		ID:          "hearth-02",
		Category:    model.CategoryHearth,
		Name:        "Firecorn with Lime Ash",
		Description: "Charred sweet corn, cotija, chili-lime dust.",
		Price:       "$14",
		Image:       "https://images.unsplash.com/photo-1551754655-cd27e38d2076?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Sweet corn", "Cotija", "Lime", "Chili"},
		Allergens:   []string{"Dairy"},
		Pairing:     "Paloma Ahumada",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "hearth-03",
		Category:    model.CategoryHearth,
		Name:        "Smokehouse Maccheroni",
		Description: "Aged cheddar sauce, pancetta crumb, crispy sage.",
		Price:       "$18",
		Image:       "https://images.pexels.com/photos/803963/pexels-photo-803963.jpeg?auto=compress&cs=tinysrgb&w=1400&q=80",
		Ingredients: []string{"Maccheroni", "Cheddar", "Pancetta", "Sage"},
		Allergens:   []string{"Dairy", "Gluten"},
		Pairing:     "Oak Chardonnay",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatMild,
	},
	{
		ID:          "hearth-04",
		Category:    model.CategoryHearth,
		Name:        "Grilled Broccolini",
		Description: "Lemon confit, almond crunch, chili thread.",
		Price:       "$15",
		Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Broccolini", "Lemon confit", "Almond", "Chili"},
		Allergens:   []string{"Tree nuts"},
		Pairing:     "Verdejo, Rueda",
		Dietary:     []model.DietaryTag{model.TagVegan, model.TagGlutenFree},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "hearth-05",
		Category:    model.CategoryHearth,
		Name:        "Coal Flatbread",
		Description: "Whipped feta, herbs, smoked olive oil.",
		Price:       "$13",
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Flatbread", "Feta", "Herb oil", "Sea salt"},
		Allergens:   []string{"Dairy", "Gluten"},
		Pairing:     "Orange Wine, Slovenia",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatMild,
	},
	{
		ID:          "hearth-06",
		Category:    model.CategoryHearth,
		Name:        "Burnt Carrot Mash",
		Description: "Maple glaze, fermented chili, toasted seeds.",
		Price:       "$14",
		Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Carrot", "Maple", "Fermented chili", "Seeds"},
		Allergens:   []string{"Sesame"},
		Pairing:     "Cotes du Rhone Blanc",
		Dietary:     []model.DietaryTag{model.TagVegan, model.TagGlutenFree},
		Heat:        model.HeatBold,
	},
	{
		ID:          "sweet-01",
		Category:    model.CategorySweet,
		Name:        "Smoked Chocolate Ganache",
		Description: "Sea salt caramel, toasted marshmallow cream.",
		Price:       "$18",
		Image:       "https://images.unsplash.com/photo-1563805042-7684c019e1cb?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"70% chocolate", "Caramel", "Marshmallow", "Sea salt"},
		Allergens:   []string{"Dairy", "Gluten"},
		Pairing:     "20 Year Tawny Port",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatMild,
	},
	{
		ID:          "sweet-02",
		Category:    model.CategorySweet,
		Name:        "Burnt Orange Cremeux",
		Description: "Vanilla ash crumble, blood orange syrup.",
		Price:       "$17",
		Image:       "https://images.unsplash.com/photo-1488477181946-6428a0291777?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Orange cremeux", "Vanilla", "Crumble", "Citrus syrup"},
		Allergens:   []string{"Dairy", "Egg", "Gluten"},
		Pairing:     "Late Harvest Chenin",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatMild,
	},
	{
		ID:          "sweet-03",
		Category:    model.CategorySweet,
		Name:        "Oak-Aged Milk Ice Cream",
		Description: "Warm brioche crumb, pecan brittle, maple smoke.",
		Price:       "$16",
		Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Oak milk", "Brioche", "Pecan", "Maple"},
		Allergens:   []string{"Dairy", "Tree nuts", "Gluten"},
		Pairing:     "Speyside Single Malt",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatMild,
	},
	{
		ID:          "sweet-04",
		Category:    model.CategorySweet,
		Name:        "Fireline Apple Tarte",
		Description: "Calvados caramel, creme fraiche, ash sugar.",
		Price:       "$17",
		Image:       "https://images.unsplash.com/photo-1568571780765-9276ac8b75a2?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Apple", "Calvados caramel", "Creme fraiche", "Pastry"},
		Allergens:   []string{"Dairy", "Gluten"},
		Pairing:     "Sauternes, Bordeaux",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "sweet-05",
		Category:    model.CategorySweet,
		Name:        "Dark Cherry Clafoutis",
		Description: "Vanilla smoke cream, cocoa nib crackle.",
		Price:       "$16",
		Image:       "https://images.unsplash.com/photo-1505253758473-96b7015fcd40?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Cherry", "Vanilla", "Cocoa nib", "Batter"},
		Allergens:   []string{"Dairy", "Egg", "Gluten"},
		Pairing:     "Ruby Port",
		Dietary:     []model.DietaryTag{model.TagVegetarian},
		Heat:        model.HeatMild,
	},
	{
		ID:          "sweet-06",
		Category:    model.CategorySweet,
		Name:        "Brown Butter Basque Cheesecake",
		Description: "Charred top, whiskey prune compote.",
		Price:       "$18",
		Image:       "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Cream cheese", "Brown butter", "Prune compote", "Whiskey"},
		Allergens:   []string{"Dairy", "Egg", "Gluten"},
		Pairing:     "Pedro Ximenez Sherry",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "cellar-01",
		Category:    model.CategoryCellar,
		Name:        "Cabernet Flight (3 oz x 3)",
		Description: "Old world vs new world vertical pour.",
		Price:       "$29",
		Image:       "https://images.unsplash.com/photo-1474722883778-792e7990302f?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Napa", "Bordeaux", "Coonawarra"},
		Allergens:   []string{"Sulfites"},
		Pairing:     "Built for oakfire meats",
		Dietary:     []model.DietaryTag{model.TagSignature, model.TagGlutenFree},
		Heat:        model.HeatBold,
	},
	{
		ID:          "cellar-02",
		Category:    model.CategoryCellar,
		Name:        "Smoked Old Fashioned",
		Description: "Bourbon, demerara, orange oil, oak smoke.",
		Price:       "$19",
		Image:       "https://images.unsplash.com/photo-1497534446932-c925b458314e?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Bourbon", "Bitters", "Demerara", "Orange"},
		Allergens:   []string{"None"},
		Pairing:     "Ribeye / short rib",
		Dietary:     []model.DietaryTag{model.TagVegan, model.TagGlutenFree, model.TagSignature},
		Heat:        model.HeatBold,
	},
	{
		ID:          "cellar-03",
		Category:    model.CategoryCellar,
		Name:        "Stonefruit Spritz",
		Description: "Apricot, sparkling wine, bitter peel tonic.",
		Price:       "$16",
		Image:       "https://images.unsplash.com/photo-1575023782549-62ca0d244b39?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Apricot", "Sparkling wine", "Tonic", "Peel bitters"},
		Allergens:   []string{"Sulfites"},
		Pairing:     "Seafood / salads",
		Dietary:     []model.DietaryTag{model.TagVegan, model.TagGlutenFree},
		Heat:        model.HeatMild,
	},
	{
		ID:          "cellar-04",
		Category:    model.CategoryCellar,
		Name:        "Zero-Proof Ember Tonic",
		Description: "Charred grapefruit, lapsang tea, smoked honey.",
		Price:       "$13",
		Image:       "https://images.unsplash.com/photo-1497534446932-c925b458314e?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Grapefruit", "Lapsang tea", "Honey", "Soda"},
		Allergens:   []string{"None"},
		Pairing:     "Pairs across all courses",
		Dietary:     []model.DietaryTag{model.TagGlutenFree},
		Heat:        model.HeatWarm,
	},
	{
		ID:          "cellar-05",
		Category:    model.CategoryCellar,
		Name:        "Amaro Service",
		Description: "Three bitter digestifs with orange peel.",
		Price:       "$18",
		Image:       "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Amaro blend", "Citrus peel", "Ice"},
		Allergens:   []string{"None"},
		Pairing:     "Dessert finish",
		Dietary:     []model.DietaryTag{model.TagVegan, model.TagGlutenFree},
		Heat:        model.HeatBold,
	},
	{
		ID:          "cellar-06",
		Category:    model.CategoryCellar,
		Name:        "Chef Pairing Journey (5 pours)",
		Description: "Curated progression synchronized to menu tempo.",
		Price:       "$65",
		Image:       "https://images.unsplash.com/photo-1474722883778-792e7990302f?auto=format&fit=crop&w=1400&q=80",
		Ingredients: []string{"Sommelier curated", "Seasonal rotation"},
		Allergens:   []string{"Sulfites"},
		Pairing:     "Whole tasting sequence",
		Dietary:     []model.DietaryTag{model.TagSignature},
		Heat:        model.HeatMild,
	},
}
