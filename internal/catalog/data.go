package catalog

// Seed data for the demo storefront. Catalog order doubles as the
// popularity order used by the default sort.

var seedCategories = []Category{
	{ID: "1", Name: "Electronics", Slug: "electronics", ProductCount: 1240},
	{ID: "2", Name: "Fashion", Slug: "fashion", ProductCount: 3420},
	{ID: "3", Name: "Home & Living", Slug: "home-living", ProductCount: 890},
	{ID: "4", Name: "Beauty", Slug: "beauty", ProductCount: 2100},
	{ID: "5", Name: "Sports", Slug: "sports", ProductCount: 760},
	{ID: "6", Name: "Books", Slug: "books", ProductCount: 5300},
	{ID: "7", Name: "Groceries", Slug: "groceries", ProductCount: 1800},
	{ID: "8", Name: "Toys", Slug: "toys", ProductCount: 650},
}

var seedSellers = []Seller{
	{ID: "s1", Name: "TechVault", Rating: 4.6, Verified: true},
	{ID: "s2", Name: "StyleCraft", Rating: 4.8, Verified: true},
	{ID: "s3", Name: "HomeNest", Rating: 4.3, Verified: false},
	{ID: "s4", Name: "FitGear Pro", Rating: 4.7, Verified: true},
}

var seedProducts = []Product{
	{
		ID: "p1", Name: "Premium Wireless Noise-Cancelling Headphones", Slug: "premium-wireless-headphones",
		Description:      "Immerse yourself in pure audio bliss with our flagship noise-cancelling headphones. Featuring 40mm custom drivers, adaptive ANC, and 30-hour battery life.",
		ShortDescription: "40mm drivers, ANC, 30hr battery",
		Price:            249.99, OriginalPrice: 349.99, Discount: 29, Currency: "USD",
		Category: seedCategories[0], Brand: "SonicElite", Rating: 4.7, ReviewCount: 2340, InStock: true,
		Tags: []string{"bestseller", "featured"}, Seller: seedSellers[0], IsFeatured: true, IsBestseller: true,
		Variants: []Variant{
			{ID: "v1", Type: VariantColor, Label: "Midnight Black", Value: "#1a1a2e", InStock: true},
			{ID: "v2", Type: VariantColor, Label: "Silver Frost", Value: "#c0c0c0", InStock: true},
			{ID: "v3", Type: VariantColor, Label: "Rose Gold", Value: "#b76e79", InStock: false},
		},
	},
	{
		ID: "p2", Name: "Ultra-Slim 4K OLED Laptop 15\"", Slug: "ultra-slim-4k-laptop",
		Description:      "Powerhouse performance meets stunning visuals. 4K OLED display, latest gen processor, 32GB RAM, 1TB SSD.",
		ShortDescription: "4K OLED, 32GB RAM, 1TB SSD",
		Price:            1299.99, OriginalPrice: 1599.99, Discount: 19, Currency: "USD",
		Category: seedCategories[0], Brand: "NovaTech", Rating: 4.8, ReviewCount: 876, InStock: true,
		Tags: []string{"new", "featured"}, Seller: seedSellers[0], IsFeatured: true, IsNew: true,
	},
	{
		ID: "p3", Name: "Italian Leather Messenger Bag", Slug: "italian-leather-messenger",
		Description:      "Handcrafted from premium Italian full-grain leather. Fits 14\" laptops with organized compartments.",
		ShortDescription: "Full-grain leather, fits 14\" laptop",
		Price:            189.99, OriginalPrice: 249.99, Discount: 24, Currency: "USD",
		Category: seedCategories[1], Brand: "Artisan & Co", Rating: 4.5, ReviewCount: 432, InStock: true,
		Tags: []string{"trending"}, Seller: seedSellers[1], IsBestseller: true,
	},
	{
		ID: "p4", Name: "Smart Fitness Watch Pro", Slug: "smart-fitness-watch-pro",
		Description:      "Advanced health monitoring with ECG, SpO2, sleep tracking, and 14-day battery life. Water resistant to 50m.",
		ShortDescription: "ECG, SpO2, 14-day battery, 50m WR",
		Price:            199.99, OriginalPrice: 299.99, Discount: 33, Currency: "USD",
		Category: seedCategories[0], Brand: "PulseTech", Rating: 4.6, ReviewCount: 1567, InStock: true,
		Tags: []string{"deal", "bestseller"}, Seller: seedSellers[0], IsFeatured: true,
	},
	{
		ID: "p5", Name: "Minimalist Ceramic Vase Set", Slug: "minimalist-ceramic-vase",
		Description:      "Set of 3 handmade ceramic vases with matte finish. Perfect for modern home decor.",
		ShortDescription: "Set of 3, handmade, matte finish",
		Price:            59.99, OriginalPrice: 79.99, Discount: 25, Currency: "USD",
		Category: seedCategories[2], Brand: "CeramicArts", Rating: 4.4, ReviewCount: 234, InStock: true,
		Tags: []string{"new"}, Seller: seedSellers[2], IsNew: true,
	},
	{
		ID: "p6", Name: "Professional Running Shoes", Slug: "professional-running-shoes",
		Description:      "Engineered for speed with carbon-fiber plate, responsive foam, and breathable mesh upper.",
		ShortDescription: "Carbon-fiber plate, responsive foam",
		Price:            159.99, OriginalPrice: 199.99, Discount: 20, Currency: "USD",
		Category: seedCategories[4], Brand: "VeloStride", Rating: 4.7, ReviewCount: 891, InStock: true,
		Tags: []string{"trending"}, Seller: seedSellers[3], IsBestseller: true,
	},
	{
		ID: "p7", Name: "Organic Skincare Collection", Slug: "organic-skincare-collection",
		Description:      "Complete 5-step skincare routine with organic, cruelty-free ingredients. Suitable for all skin types.",
		ShortDescription: "5-step routine, organic, cruelty-free",
		Price:            89.99, OriginalPrice: 129.99, Discount: 31, Currency: "USD",
		Category: seedCategories[3], Brand: "PureGlow", Rating: 4.5, ReviewCount: 678, InStock: true,
		Tags: []string{"deal"}, Seller: seedSellers[1],
	},
	{
		ID: "p8", Name: "Wireless Mechanical Keyboard", Slug: "wireless-mechanical-keyboard",
		Description:      "Premium mechanical keyboard with hot-swappable switches, RGB backlighting, and tri-mode connectivity.",
		ShortDescription: "Hot-swappable, RGB, tri-mode",
		Price:            129.99, OriginalPrice: 169.99, Discount: 24, Currency: "USD",
		Category: seedCategories[0], Brand: "KeyCraft", Rating: 4.6, ReviewCount: 1123, InStock: true,
		Tags: []string{"bestseller"}, Seller: seedSellers[0], IsBestseller: true,
	},
	{
		ID: "p9", Name: "The Art of Programming", Slug: "art-of-programming",
		Description:      "A comprehensive guide to clean code practices, algorithms, and software design patterns. Essential reading for every developer.",
		ShortDescription: "Clean code & design patterns",
		Price:            39.99, OriginalPrice: 54.99, Discount: 27, Currency: "USD",
		Category: seedCategories[5], Brand: "TechPress", Rating: 4.8, ReviewCount: 2341, InStock: true,
		Tags: []string{"bestseller"}, Seller: seedSellers[0], IsBestseller: true,
	},
	{
		ID: "p10", Name: "Mindful Living: A Modern Guide", Slug: "mindful-living-guide",
		Description:      "Discover practical mindfulness techniques for everyday life. Beautifully illustrated with exercises and meditations.",
		ShortDescription: "Mindfulness techniques & exercises",
		Price:            24.99, OriginalPrice: 34.99, Discount: 29, Currency: "USD",
		Category: seedCategories[5], Brand: "Zenith Books", Rating: 4.5, ReviewCount: 876, InStock: true,
		Tags: []string{"new", "featured"}, Seller: seedSellers[1], IsNew: true, IsFeatured: true,
	},
	{
		ID: "p11", Name: "World History Encyclopedia", Slug: "world-history-encyclopedia",
		Description:      "A stunning visual journey through 5,000 years of human civilization. Over 800 pages of maps, timelines, and photographs.",
		ShortDescription: "5,000 years of history, 800+ pages",
		Price:            49.99, OriginalPrice: 69.99, Discount: 29, Currency: "USD",
		Category: seedCategories[5], Brand: "Heritage Press", Rating: 4.7, ReviewCount: 543, InStock: true,
		Tags: []string{"trending"}, Seller: seedSellers[2],
	},
	{
		ID: "p12", Name: "Creative Photography Masterclass", Slug: "creative-photography-masterclass",
		Description:      "Learn composition, lighting, and post-processing from award-winning photographers. Includes online resources.",
		ShortDescription: "Composition, lighting & editing",
		Price:            34.99, OriginalPrice: 44.99, Discount: 22, Currency: "USD",
		Category: seedCategories[5], Brand: "ArtVision", Rating: 4.4, ReviewCount: 321, InStock: true,
		Tags: []string{"new"}, Seller: seedSellers[1], IsNew: true,
	},
}
