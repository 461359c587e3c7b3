package data

import "virtual-product-studio/api/pkg/models"

// Products returns a fresh copy of the built-in catalog, one product per device type.
func Products() []models.Product {
	products := []models.Product{
		{
			Id:          "mobile",
			Name:        "Quantum Phone Pro",
			BasePrice:   999,
			Description: "Next-gen smartphone with holographic display",
			BrandId:     "quantum",
			BrandName:   "Quantum",
			DeviceType:  models.ProductTypeMobile,
			Colors: []models.ProductColor{
				{Id: "midnight", Name: "Midnight Black", Hex: "#1a1a2e", Price: 0},
				{Id: "arctic", Name: "Arctic Silver", Hex: "#c0c0c0", Price: 0},
				{Id: "ocean", Name: "Ocean Blue", Hex: "#0ea5e9", Price: 50},
				{Id: "sunset", Name: "Sunset Gold", Hex: "#f59e0b", Price: 100},
				{Id: "rose", Name: "Rose Pink", Hex: "#ec4899", Price: 50},
			},
			Variants: []models.ProductVariant{
				{Id: "storage", Name: "Storage", Options: []models.VariantOption{
					{Id: "128gb", Label: "128 GB", Price: 0},
					{Id: "256gb", Label: "256 GB", Price: 100},
					{Id: "512gb", Label: "512 GB", Price: 200},
					{Id: "1tb", Label: "1 TB", Price: 400},
				}},
				{Id: "ram", Name: "RAM", Options: []models.VariantOption{
					{Id: "8gb", Label: "8 GB", Price: 0},
					{Id: "12gb", Label: "12 GB", Price: 50},
					{Id: "16gb", Label: "16 GB", Price: 100},
				}},
				{Id: "camera", Name: "Camera", Options: []models.VariantOption{
					{Id: "12mp", Label: "12 MP", Price: 0},
					{Id: "48mp", Label: "48 MP", Price: 100},
					{Id: "108mp", Label: "108 MP Pro", Price: 200},
					{Id: "200mp", Label: "200 MP Ultra", Price: 400},
				}},
			},
		},
		{
			Id:          "laptop",
			Name:        "NovaPro Laptop",
			BasePrice:   1499,
			Description: "Ultra-thin powerhouse for professionals",
			BrandId:     "novapro",
			BrandName:   "NovaPro",
			DeviceType:  models.ProductTypeLaptop,
			Colors: []models.ProductColor{
				{Id: "space", Name: "Space Gray", Hex: "#374151", Price: 0},
				{Id: "silver", Name: "Pure Silver", Hex: "#e5e7eb", Price: 0},
				{Id: "midnight", Name: "Midnight Blue", Hex: "#1e3a5f", Price: 100},
				{Id: "gold", Name: "Champagne Gold", Hex: "#d4af37", Price: 150},
			},
			Variants: []models.ProductVariant{
				{Id: "processor", Name: "Processor", Options: []models.VariantOption{
					{Id: "i5", Label: "Intel i5", Price: 0},
					{Id: "i7", Label: "Intel i7", Price: 200},
					{Id: "i9", Label: "Intel i9", Price: 500},
					{Id: "m3", Label: "Apple M3", Price: 300},
				}},
				{Id: "ram", Name: "RAM", Options: []models.VariantOption{
					{Id: "8gb", Label: "8 GB", Price: 0},
					{Id: "16gb", Label: "16 GB", Price: 100},
					{Id: "32gb", Label: "32 GB", Price: 300},
					{Id: "64gb", Label: "64 GB", Price: 600},
				}},
				{Id: "storage", Name: "Storage", Options: []models.VariantOption{
					{Id: "256gb", Label: "256 GB SSD", Price: 0},
					{Id: "512gb", Label: "512 GB SSD", Price: 100},
					{Id: "1tb", Label: "1 TB SSD", Price: 200},
					{Id: "2tb", Label: "2 TB SSD", Price: 400},
				}},
			},
		},
		{
			Id:          "pc",
			Name:        "TitanX Desktop",
			BasePrice:   2499,
			Description: "Ultimate gaming and creative workstation",
			BrandId:     "titanx",
			BrandName:   "TitanX",
			DeviceType:  models.ProductTypePC,
			Colors: []models.ProductColor{
				{Id: "obsidian", Name: "Obsidian Black", Hex: "#0f0f0f", Price: 0},
				{Id: "white", Name: "Arctic White", Hex: "#f8fafc", Price: 50},
				{Id: "rgb", Name: "RGB Gaming", Hex: "#8b5cf6", Price: 100},
			},
			Variants: []models.ProductVariant{
				{Id: "gpu", Name: "Graphics Card", Options: []models.VariantOption{
					{Id: "rtx4060", Label: "RTX 4060", Price: 0},
					{Id: "rtx4070", Label: "RTX 4070", Price: 200},
					{Id: "rtx4080", Label: "RTX 4080", Price: 500},
					{Id: "rtx4090", Label: "RTX 4090", Price: 1000},
				}},
				{Id: "processor", Name: "Processor", Options: []models.VariantOption{
					{Id: "r7", Label: "Ryzen 7", Price: 0},
					{Id: "r9", Label: "Ryzen 9", Price: 300},
					{Id: "i9", Label: "Intel i9", Price: 400},
				}},
				{Id: "cooling", Name: "Cooling", Options: []models.VariantOption{
					{Id: "air", Label: "Air Cooling", Price: 0},
					{Id: "aio", Label: "AIO Liquid", Price: 100},
					{Id: "custom", Label: "Custom Loop", Price: 400},
				}},
			},
		},
		{
			Id:          "tablet",
			Name:        "Canvas Pro",
			BasePrice:   799,
			Description: "Creative tablet for artists and designers",
			BrandId:     "canvas",
			BrandName:   "Canvas",
			DeviceType:  models.ProductTypeTablet,
			Colors: []models.ProductColor{
				{Id: "slate", Name: "Slate Gray", Hex: "#64748b", Price: 0},
				{Id: "white", Name: "Pearl White", Hex: "#f1f5f9", Price: 0},
				{Id: "purple", Name: "Cosmic Purple", Hex: "#7c3aed", Price: 50},
				{Id: "green", Name: "Forest Green", Hex: "#059669", Price: 50},
			},
			Variants: []models.ProductVariant{
				{Id: "size", Name: "Display Size", Options: []models.VariantOption{
					{Id: "11", Label: "11 inch", Price: 0},
					{Id: "12.9", Label: "12.9 inch", Price: 200},
				}},
				{Id: "storage", Name: "Storage", Options: []models.VariantOption{
					{Id: "128gb", Label: "128 GB", Price: 0},
					{Id: "256gb", Label: "256 GB", Price: 100},
					{Id: "512gb", Label: "512 GB", Price: 200},
					{Id: "1tb", Label: "1 TB", Price: 400},
				}},
				{Id: "stylus", Name: "Stylus", Options: []models.VariantOption{
					{Id: "none", Label: "No Stylus", Price: 0},
					{Id: "basic", Label: "Basic Stylus", Price: 99},
					{Id: "pro", Label: "Pro Stylus", Price: 199},
				}},
			},
		},
		{
			Id:          "watch",
			Name:        "Pulse Ultra",
			BasePrice:   399,
			Description: "Smart fitness watch with health monitoring",
			BrandId:     "pulse",
			BrandName:   "Pulse",
			DeviceType:  models.ProductTypeWatch,
			Colors: []models.ProductColor{
				{Id: "graphite", Name: "Graphite", Hex: "#1f2937", Price: 0},
				{Id: "silver", Name: "Silver", Hex: "#d1d5db", Price: 0},
				{Id: "gold", Name: "Rose Gold", Hex: "#fbbf24", Price: 100},
				{Id: "titanium", Name: "Titanium", Hex: "#78716c", Price: 200},
			},
			Variants: []models.ProductVariant{
				{Id: "size", Name: "Case Size", Options: []models.VariantOption{
					{Id: "41mm", Label: "41mm", Price: 0},
					{Id: "45mm", Label: "45mm", Price: 50},
					{Id: "49mm", Label: "49mm Ultra", Price: 200},
				}},
				{Id: "strap", Name: "Strap Type", Options: []models.VariantOption{
					{Id: "sport", Label: "Sport Band", Price: 0},
					{Id: "leather", Label: "Leather", Price: 99},
					{Id: "metal", Label: "Metal Link", Price: 199},
					{Id: "titanium", Label: "Titanium", Price: 349},
				}},
				{Id: "connectivity", Name: "Connectivity", Options: []models.VariantOption{
					{Id: "gps", Label: "GPS Only", Price: 0},
					{Id: "cellular", Label: "GPS + Cellular", Price: 100},
				}},
			},
		},
		{
			Id:          "tv",
			Name:        "Visionary OLED",
			BasePrice:   1999,
			Description: "Immersive 4K OLED smart television",
			BrandId:     "visionary",
			BrandName:   "Visionary",
			DeviceType:  models.ProductTypeTV,
			Colors: []models.ProductColor{
				{Id: "black", Name: "Classic Black", Hex: "#171717", Price: 0},
				{Id: "silver", Name: "Brushed Silver", Hex: "#a1a1aa", Price: 100},
			},
			Variants: []models.ProductVariant{
				{Id: "size", Name: "Screen Size", Options: []models.VariantOption{
					{Id: "55", Label: "55 inch", Price: 0},
					{Id: "65", Label: "65 inch", Price: 500},
					{Id: "77", Label: "77 inch", Price: 1500},
					{Id: "83", Label: "83 inch", Price: 3000},
				}},
				{Id: "panel", Name: "Panel Type", Options: []models.VariantOption{
					{Id: "oled", Label: "OLED", Price: 0},
					{Id: "qled", Label: "QLED", Price: -200},
					{Id: "microled", Label: "MicroLED", Price: 2000},
				}},
				{Id: "audio", Name: "Audio System", Options: []models.VariantOption{
					{Id: "built-in", Label: "Built-in Speakers", Price: 0},
					{Id: "soundbar", Label: "Soundbar Bundle", Price: 299},
					{Id: "dolby", Label: "Dolby Atmos System", Price: 799},
				}},
			},
		},
		{
			Id:          "camera",
			Name:        "ProShot DSLR",
			BasePrice:   1299,
			Description: "Professional mirrorless camera for creators",
			BrandId:     "proshot",
			BrandName:   "ProShot",
			DeviceType:  models.ProductTypeCamera,
			Colors: []models.ProductColor{
				{Id: "black", Name: "Classic Black", Hex: "#1a1a1a", Price: 0},
				{Id: "silver", Name: "Silver Chrome", Hex: "#c0c0c0", Price: 100},
				{Id: "titanium", Name: "Titanium Gray", Hex: "#6b7280", Price: 150},
				{Id: "vintage", Name: "Vintage Brown", Hex: "#8b4513", Price: 200},
			},
			Variants: []models.ProductVariant{
				{Id: "sensor", Name: "Sensor", Options: []models.VariantOption{
					{Id: "apsc", Label: "APS-C 24MP", Price: 0},
					{Id: "fullframe", Label: "Full Frame 45MP", Price: 800},
					{Id: "medium", Label: "Medium Format 100MP", Price: 2500},
				}},
				{Id: "lens", Name: "Lens Kit", Options: []models.VariantOption{
					{Id: "body", Label: "Body Only", Price: 0},
					{Id: "24-70", Label: "24-70mm f/2.8", Price: 800},
					{Id: "70-200", Label: "70-200mm f/2.8", Price: 1200},
					{Id: "prime", Label: "50mm f/1.2 Prime", Price: 1500},
				}},
				{Id: "video", Name: "Video", Options: []models.VariantOption{
					{Id: "4k30", Label: "4K 30fps", Price: 0},
					{Id: "4k60", Label: "4K 60fps", Price: 200},
					{Id: "8k30", Label: "8K 30fps", Price: 600},
				}},
			},
		},
		{
			Id:          "drone",
			Name:        "SkyPro X1",
			BasePrice:   899,
			Description: "Professional aerial photography drone",
			BrandId:     "skypro",
			BrandName:   "SkyPro",
			DeviceType:  models.ProductTypeDrone,
			Colors: []models.ProductColor{
				{Id: "gray", Name: "Stealth Gray", Hex: "#4b5563", Price: 0},
				{Id: "white", Name: "Arctic White", Hex: "#f1f5f9", Price: 0},
				{Id: "orange", Name: "Rescue Orange", Hex: "#f97316", Price: 50},
				{Id: "camo", Name: "Forest Camo", Hex: "#365314", Price: 100},
			},
			Variants: []models.ProductVariant{
				{Id: "camera", Name: "Camera Resolution", Options: []models.VariantOption{
					{Id: "1080p", Label: "1080p HD", Price: 0},
					{Id: "4k", Label: "4K Ultra HD", Price: 200},
					{Id: "6k", Label: "6K Pro", Price: 500},
					{Id: "8k", Label: "8K Cinema", Price: 1000},
				}},
				{Id: "flight", Name: "Flight Time", Options: []models.VariantOption{
					{Id: "20min", Label: "20 Minutes", Price: 0},
					{Id: "35min", Label: "35 Minutes", Price: 150},
					{Id: "45min", Label: "45 Minutes", Price: 300},
				}},
				{Id: "range", Name: "Control Range", Options: []models.VariantOption{
					{Id: "2km", Label: "2 km", Price: 0},
					{Id: "5km", Label: "5 km", Price: 100},
					{Id: "10km", Label: "10 km", Price: 250},
				}},
			},
		},
		{
			Id:          "vr",
			Name:        "VisionX Pro",
			BasePrice:   499,
			Description: "Immersive virtual reality headset",
			BrandId:     "visionx",
			BrandName:   "VisionX",
			DeviceType:  models.ProductTypeVR,
			Colors: []models.ProductColor{
				{Id: "black", Name: "Matte Black", Hex: "#1a1a1a", Price: 0},
				{Id: "white", Name: "Pure White", Hex: "#f8fafc", Price: 0},
				{Id: "blue", Name: "Electric Blue", Hex: "#2563eb", Price: 75},
				{Id: "red", Name: "Racing Red", Hex: "#dc2626", Price: 75},
			},
			Variants: []models.ProductVariant{
				{Id: "display", Name: "Display Resolution", Options: []models.VariantOption{
					{Id: "2k", Label: "2K per Eye", Price: 0},
					{Id: "4k", Label: "4K per Eye", Price: 300},
					{Id: "8k", Label: "8K per Eye", Price: 800},
				}},
				{Id: "refresh", Name: "Refresh Rate", Options: []models.VariantOption{
					{Id: "72hz", Label: "72 Hz", Price: 0},
					{Id: "90hz", Label: "90 Hz", Price: 100},
					{Id: "120hz", Label: "120 Hz", Price: 200},
				}},
				{Id: "controllers", Name: "Controllers", Options: []models.VariantOption{
					{Id: "standard", Label: "Standard Controllers", Price: 0},
					{Id: "haptic", Label: "Haptic Controllers", Price: 150},
					{Id: "pro", Label: "Pro Controllers", Price: 250},
				}},
			},
		},
		{
			Id:          "audio",
			Name:        "Sonic Elite Pro",
			BasePrice:   349,
			Description: "Premium wireless noise-canceling headphones",
			BrandId:     "sonic",
			BrandName:   "Sonic",
			DeviceType:  models.ProductTypeAudio,
			Colors: []models.ProductColor{
				{Id: "black", Name: "Stealth Black", Hex: "#171717", Price: 0},
				{Id: "white", Name: "Pearl White", Hex: "#f5f5f5", Price: 0},
				{Id: "navy", Name: "Navy Blue", Hex: "#1e3a5f", Price: 25},
				{Id: "olive", Name: "Olive Green", Hex: "#556b2f", Price: 25},
			},
			Variants: []models.ProductVariant{
				{Id: "driver", Name: "Driver Size", Options: []models.VariantOption{
					{Id: "40mm", Label: "40mm Drivers", Price: 0},
					{Id: "50mm", Label: "50mm Drivers", Price: 50},
					{Id: "60mm", Label: "60mm Planar", Price: 150},
				}},
				{Id: "anc", Name: "Noise Cancellation", Options: []models.VariantOption{
					{Id: "passive", Label: "Passive Only", Price: 0},
					{Id: "active", Label: "Active ANC", Price: 80},
					{Id: "adaptive", Label: "Adaptive ANC Pro", Price: 150},
				}},
				{Id: "battery", Name: "Battery Life", Options: []models.VariantOption{
					{Id: "20hr", Label: "20 Hours", Price: 0},
					{Id: "40hr", Label: "40 Hours", Price: 50},
					{Id: "60hr", Label: "60 Hours", Price: 100},
				}},
			},
		},
		{
			Id:          "gaming",
			Name:        "NexPlay Station",
			BasePrice:   499,
			Description: "Next-generation gaming console",
			BrandId:     "nexplay",
			BrandName:   "NexPlay",
			DeviceType:  models.ProductTypeGaming,
			Colors: []models.ProductColor{
				{Id: "black", Name: "Cosmic Black", Hex: "#0a0a0a", Price: 0},
				{Id: "white", Name: "Stellar White", Hex: "#fafafa", Price: 0},
				{Id: "blue", Name: "Deep Blue", Hex: "#1e40af", Price: 50},
				{Id: "red", Name: "Volcano Red", Hex: "#b91c1c", Price: 50},
			},
			Variants: []models.ProductVariant{
				{Id: "storage", Name: "Storage", Options: []models.VariantOption{
					{Id: "512gb", Label: "512 GB SSD", Price: 0},
					{Id: "1tb", Label: "1 TB SSD", Price: 100},
					{Id: "2tb", Label: "2 TB SSD", Price: 250},
				}},
				{Id: "edition", Name: "Edition", Options: []models.VariantOption{
					{Id: "standard", Label: "Standard", Price: 0},
					{Id: "digital", Label: "Digital Only", Price: -50},
					{Id: "pro", Label: "Pro Edition", Price: 200},
				}},
				{Id: "controller", Name: "Extra Controller", Options: []models.VariantOption{
					{Id: "none", Label: "No Extra", Price: 0},
					{Id: "one", Label: "+1 Controller", Price: 70},
					{Id: "two", Label: "+2 Controllers", Price: 130},
				}},
			},
		},
		{
			Id:          "accessories",
			Name:        "TechMate Pro Keys",
			BasePrice:   199,
			Description: "Mechanical wireless keyboard with RGB",
			BrandId:     "techmate",
			BrandName:   "TechMate",
			DeviceType:  models.ProductTypeAccessories,
			Colors: []models.ProductColor{
				{Id: "black", Name: "Stealth Black", Hex: "#1a1a1a", Price: 0},
				{Id: "white", Name: "Arctic White", Hex: "#f5f5f5", Price: 0},
				{Id: "pink", Name: "Sakura Pink", Hex: "#f9a8d4", Price: 30},
				{Id: "mint", Name: "Mint Green", Hex: "#a7f3d0", Price: 30},
			},
			Variants: []models.ProductVariant{
				{Id: "switches", Name: "Switch Type", Options: []models.VariantOption{
					{Id: "linear", Label: "Linear Red", Price: 0},
					{Id: "tactile", Label: "Tactile Brown", Price: 0},
					{Id: "clicky", Label: "Clicky Blue", Price: 0},
					{Id: "silent", Label: "Silent Pink", Price: 20},
				}},
				{Id: "layout", Name: "Layout", Options: []models.VariantOption{
					{Id: "full", Label: "Full Size", Price: 0},
					{Id: "tkl", Label: "TKL (87 Keys)", Price: 0},
					{Id: "75", Label: "75% Compact", Price: 20},
					{Id: "60", Label: "60% Mini", Price: 30},
				}},
				{Id: "keycaps", Name: "Keycaps", Options: []models.VariantOption{
					{Id: "abs", Label: "ABS Standard", Price: 0},
					{Id: "pbt", Label: "PBT Premium", Price: 40},
					{Id: "pudding", Label: "Pudding Caps", Price: 50},
				}},
			},
		},
	}

	for i := range products {
		products[i].Position = i
	}
	return products
}
