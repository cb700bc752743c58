package catalog

import "laptophub/internal/domain"

// Laptops returns the built-in catalog, newest first. Each call returns a fresh
// slice so callers may sort or filter it freely.
func Laptops() []domain.Product {
	return []domain.Product{
		{
			ID:               "lp-001",
			Slug:             "macbook-air-m3-13",
			Name:             "MacBook Air 13 M3",
			Brand:            "Apple",
			Category:         "Ultrabook",
			Description:      "Fanless 13-inch notebook with all-day battery life.",
			PriceKES:         164999,
			OriginalPriceKES: domain.Int64Ptr(179999),
			CPU:              "Apple M3 8-core",
			RAM:              "8GB Unified",
			Storage:          "256GB SSD",
			Display:          "13.6\" Liquid Retina",
			Image:            "/images/macbook-air-m3.jpg",
			Images: []string{
				"/images/macbook-air-m3.jpg",
				"/images/macbook-air-m3-side.jpg",
				"/images/macbook-air-m3-keyboard.jpg",
			},
			Rating:         4.8,
			Reviews:        214,
			InStock:        true,
			IsNew:          true,
			IsFeatured:     true,
			Highlights:     []string{"18-hour battery", "Silent fanless design", "1.24 kg"},
			KeyFeatures:    []string{"MagSafe charging", "Touch ID", "1080p FaceTime camera"},
			TargetAudience: []string{"Students", "Writers", "Frequent travellers"},
			DetailedSpecs: &domain.DetailedSpecs{
				Processor:    "Apple M3 chip, 8-core CPU",
				Memory:       "8GB unified memory",
				Storage:      "256GB SSD",
				Graphics:     "8-core GPU",
				Display:      "13.6-inch Liquid Retina, 2560x1664",
				Weight:       "1.24 kg",
				Dimensions:   "30.41 x 21.5 x 1.13 cm",
				Ports:        []string{"2x Thunderbolt / USB 4", "MagSafe 3", "3.5mm headphone jack"},
				Connectivity: []string{"Wi-Fi 6E", "Bluetooth 5.3"},
				OS:           "macOS",
				Battery:      "52.6Wh, up to 18 hours",
				Warranty:     "1 year",
			},
		},
		{
			ID:               "lp-002",
			Slug:             "dell-xps-13-9340",
			Name:             "Dell XPS 13 9340",
			Brand:            "Dell",
			Category:         "Ultrabook",
			Description:      "Compact premium Windows ultrabook with an edge-to-edge keyboard.",
			PriceKES:         189999,
			OriginalPriceKES: domain.Int64Ptr(209999),
			CPU:              "Intel Core Ultra 7 155H",
			RAM:              "16GB LPDDR5x",
			Storage:          "512GB SSD",
			Display:          "13.4\" FHD+",
			Image:            "/images/dell-xps-13.jpg",
			Rating:           4.6,
			Reviews:          98,
			InStock:          true,
			IsNew:            true,
			Highlights:       []string{"InfinityEdge display", "Haptic touchpad"},
			KeyFeatures:      []string{"Intel AI Boost NPU", "Wi-Fi 7"},
			TargetAudience:   []string{"Professionals", "Developers"},
		},
		{
			ID:             "lp-003",
			Slug:           "hp-victus-15",
			Name:           "HP Victus 15",
			Brand:          "HP",
			Category:       "Gaming",
			Description:    "Entry gaming laptop with dedicated RTX graphics.",
			PriceKES:       124999,
			CPU:            "AMD Ryzen 5 7535HS",
			RAM:            "16GB DDR5",
			Storage:        "512GB SSD",
			GPU:            "NVIDIA GeForce RTX 3050 6GB",
			Display:        "15.6\" FHD 144Hz",
			Image:          "/images/hp-victus-15.jpg",
			Rating:         4.4,
			Reviews:        156,
			InStock:        true,
			IsFeatured:     true,
			Highlights:     []string{"144Hz display", "RTX 3050"},
			KeyFeatures:    []string{"Backlit keyboard", "OMEN Gaming Hub"},
			TargetAudience: []string{"Gamers", "Content creators"},
			DetailedSpecs: &domain.DetailedSpecs{
				Processor:    "AMD Ryzen 5 7535HS, 6 cores",
				Memory:       "16GB DDR5-4800",
				Storage:      "512GB PCIe NVMe SSD",
				Graphics:     "NVIDIA GeForce RTX 3050 6GB",
				Display:      "15.6-inch FHD IPS, 144Hz",
				Weight:       "2.29 kg",
				Dimensions:   "35.79 x 25.5 x 2.35 cm",
				Ports:        []string{"USB-C", "2x USB-A", "HDMI 2.1", "RJ-45"},
				Connectivity: []string{"Wi-Fi 6", "Bluetooth 5.3"},
				OS:           "Windows 11 Home",
				Battery:      "70Wh",
				Warranty:     "1 year",
			},
		},
		{
			ID:               "lp-004",
			Slug:             "lenovo-thinkpad-e14-gen5",
			Name:             "Lenovo ThinkPad E14 Gen 5",
			Brand:            "Lenovo",
			Category:         "Business",
			Description:      "Durable business notebook with a great keyboard.",
			PriceKES:         98999,
			OriginalPriceKES: domain.Int64Ptr(112000),
			CPU:              "Intel Core i5-1335U",
			RAM:              "8GB DDR4",
			Storage:          "512GB SSD",
			Display:          "14\" WUXGA",
			Image:            "/images/thinkpad-e14.jpg",
			Rating:           4.5,
			Reviews:          87,
			InStock:          true,
			Highlights:       []string{"Spill-resistant keyboard", "Fingerprint reader"},
			TargetAudience:   []string{"Small businesses", "Office workers"},
		},
		{
			ID:             "lp-005",
			Slug:           "asus-rog-strix-g16",
			Name:           "ASUS ROG Strix G16",
			Brand:          "ASUS",
			Category:       "Gaming",
			Description:    "High refresh gaming laptop for competitive play.",
			PriceKES:       234999,
			CPU:            "Intel Core i7-13650HX",
			RAM:            "16GB DDR5",
			Storage:        "1TB SSD",
			GPU:            "NVIDIA GeForce RTX 4060 8GB",
			Display:        "16\" FHD+ 165Hz",
			Image:          "/images/rog-strix-g16.jpg",
			Images:         []string{"/images/rog-strix-g16.jpg", "/images/rog-strix-g16-rear.jpg"},
			Rating:         4.7,
			Reviews:        63,
			InStock:        false,
			Highlights:     []string{"165Hz panel", "MUX switch"},
			KeyFeatures:    []string{"Tri-fan cooling", "Aura Sync RGB"},
			TargetAudience: []string{"Gamers", "Streamers"},
		},
		{
			ID:               "lp-006",
			Slug:             "acer-aspire-5-a515",
			Name:             "Acer Aspire 5",
			Brand:            "Acer",
			Category:         "Everyday",
			Description:      "Affordable everyday laptop for school and home.",
			PriceKES:         64999,
			OriginalPriceKES: domain.Int64Ptr(69999),
			CPU:              "Intel Core i3-1215U",
			RAM:              "8GB DDR4",
			Storage:          "256GB SSD",
			Display:          "15.6\" FHD",
			Image:            "/images/acer-aspire-5.jpg",
			Rating:           4.1,
			Reviews:          241,
			InStock:          true,
			TargetAudience:   []string{"Students", "Home users"},
		},
		{
			ID:             "lp-007",
			Slug:           "hp-elitebook-840-g10",
			Name:           "HP EliteBook 840 G10",
			Brand:          "HP",
			Category:       "Business",
			Description:    "Secure, manageable business laptop for the enterprise.",
			PriceKES:       174500,
			CPU:            "Intel Core i7-1355U",
			RAM:            "16GB DDR5",
			Storage:        "512GB SSD",
			Display:        "14\" WUXGA",
			Image:          "/images/elitebook-840.jpg",
			Rating:         4.5,
			Reviews:        41,
			InStock:        false,
			Highlights:     []string{"HP Wolf Security", "5MP camera"},
			TargetAudience: []string{"Enterprise", "Remote workers"},
		},
		{
			ID:             "lp-008",
			Slug:           "lenovo-ideapad-slim-3",
			Name:           "Lenovo IdeaPad Slim 3",
			Brand:          "Lenovo",
			Category:       "Everyday",
			Description:    "Slim and light everyday notebook.",
			PriceKES:       54999,
			CPU:            "AMD Ryzen 3 7320U",
			RAM:            "8GB LPDDR5",
			Storage:        "256GB SSD",
			Display:        "15.6\" FHD",
			Image:          "/images/ideapad-slim-3.jpg",
			Rating:         4.0,
			Reviews:        132,
			InStock:        true,
			TargetAudience: []string{"Students", "First-time buyers"},
		},
	}
}
