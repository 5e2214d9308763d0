package service

type seedSeries struct {
	Name        string
	Slug        string
	Description string
	Order       int
}

type seedProduct struct {
	Name           string
	Slug           string
	SeriesSlug     string
	Description    string
	Features       []string
	Specifications map[string]string
	DeliveryInfo   string
	WarrantyInfo   string
	ThumbnailImage string
	Order          int
}

var demoSeries = []seedSeries{
	{Name: "REX Series", Slug: "rex-series", Description: "High-performance solar panels with premium efficiency for residential use", Order: 0},
	{Name: "Titan Series", Slug: "titan-series", Description: "Industrial-grade solar solutions for commercial applications", Order: 1},
	{Name: "VoltMax Series", Slug: "voltmax-series", Description: "Advanced inverters with smart monitoring and grid integration", Order: 2},
	{Name: "PowerX Series", Slug: "powerx-series", Description: "Complete energy storage and battery management systems", Order: 3},
}

var demoProducts = []seedProduct{
	{
		Name:        "REX 400W Solar Panel",
		Slug:        "rex-400w-panel",
		SeriesSlug:  "rex-series",
		Description: "Premium 400W monocrystalline solar panel with high efficiency",
		Features:    []string{"400W output", "22% efficiency", "Monocrystalline cells", "25-year warranty"},
		Specifications: map[string]string{
			"power":      "400W",
			"efficiency": "22%",
			"warranty":   "25 years",
			"weight":     "22.5 kg",
			"dimensions": "1956 x 992 mm",
		},
		DeliveryInfo:   "Available for immediate shipping",
		WarrantyInfo:   "25-year performance warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1509391366360-2e938b991055?w=500&h=500&fit=crop",
		Order:          0,
	},
	{
		Name:        "REX 500W Solar Panel",
		Slug:        "rex-500w-panel",
		SeriesSlug:  "rex-series",
		Description: "Ultra-high capacity 500W solar panel for maximum energy generation",
		Features:    []string{"500W output", "23% efficiency", "Bifacial technology", "25-year warranty"},
		Specifications: map[string]string{
			"power":      "500W",
			"efficiency": "23%",
			"warranty":   "25 years",
			"weight":     "24 kg",
			"dimensions": "2094 x 1038 mm",
		},
		DeliveryInfo:   "Available for immediate shipping",
		WarrantyInfo:   "25-year performance warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1607381505304-bd8e391bdc36?w=500&h=500&fit=crop",
		Order:          1,
	},
	{
		Name:        "REX Mounting Kit",
		Slug:        "rex-mounting-kit",
		SeriesSlug:  "rex-series",
		Description: "Complete mounting system for REX series solar panels",
		Features:    []string{"Aluminum frame", "Adjustable angle", "Weather-resistant", "Easy installation"},
		Specifications: map[string]string{
			"power":      "N/A",
			"efficiency": "N/A",
			"warranty":   "10 years",
			"weight":     "15 kg",
			"dimensions": "Variable",
		},
		DeliveryInfo:   "Ships with documentation",
		WarrantyInfo:   "10-year manufacturer warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1613665813671-333d8b78eb66?w=500&h=500&fit=crop",
		Order:          2,
	},
	{
		Name:        "Titan 600W Industrial Panel",
		Slug:        "titan-600w-panel",
		SeriesSlug:  "titan-series",
		Description: "Heavy-duty commercial solar panel designed for industrial installations",
		Features:    []string{"600W output", "24% efficiency", "Industrial-grade", "30-year warranty"},
		Specifications: map[string]string{
			"power":      "600W",
			"efficiency": "24%",
			"warranty":   "30 years",
			"weight":     "28 kg",
			"dimensions": "2256 x 1130 mm",
		},
		DeliveryInfo:   "Bulk pricing available",
		WarrantyInfo:   "30-year performance warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1620938495516-38599d958fbb?w=500&h=500&fit=crop",
		Order:          0,
	},
	{
		Name:        "Titan 800W Industrial Panel",
		Slug:        "titan-800w-panel",
		SeriesSlug:  "titan-series",
		Description: "Maximum capacity industrial solar panel for large-scale energy generation",
		Features:    []string{"800W output", "25% efficiency", "Premium monocrystalline", "30-year warranty"},
		Specifications: map[string]string{
			"power":      "800W",
			"efficiency": "25%",
			"warranty":   "30 years",
			"weight":     "32 kg",
			"dimensions": "2384 x 1303 mm",
		},
		DeliveryInfo:   "Custom logistics available",
		WarrantyInfo:   "30-year comprehensive warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1552664730-d307ca884978?w=500&h=500&fit=crop",
		Order:          1,
	},
	{
		Name:        "Titan Professional Array",
		Slug:        "titan-professional-array",
		SeriesSlug:  "titan-series",
		Description: "Complete solar array system for commercial buildings and factories",
		Features:    []string{"Modular design", "Up to 100kW", "Smart monitoring", "Grid-tied"},
		Specifications: map[string]string{
			"power":      "Up to 100kW",
			"efficiency": "24-25%",
			"warranty":   "30 years",
			"weight":     "Custom",
			"dimensions": "Custom",
		},
		DeliveryInfo:   "Professional installation included",
		WarrantyInfo:   "30-year comprehensive warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1508566354713-11d1d8ff89b3?w=500&h=500&fit=crop",
		Order:          2,
	},
	{
		Name:        "VoltMax 5kW Inverter",
		Slug:        "voltmax-5kw-inverter",
		SeriesSlug:  "voltmax-series",
		Description: "Smart 5kW inverter with real-time monitoring and WiFi connectivity",
		Features:    []string{"5kW power", "Pure sine wave", "WiFi monitoring", "Dual MPPT"},
		Specifications: map[string]string{
			"power":      "5kW",
			"efficiency": "98%",
			"warranty":   "10 years",
			"weight":     "20 kg",
			"dimensions": "600 x 400 mm",
		},
		DeliveryInfo:   "Ready to ship",
		WarrantyInfo:   "10-year manufacturer warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1626844601130-91ee809c33c7?w=500&h=500&fit=crop",
		Order:          0,
	},
	{
		Name:        "VoltMax 10kW Inverter",
		Slug:        "voltmax-10kw-inverter",
		SeriesSlug:  "voltmax-series",
		Description: "High-capacity 10kW inverter for large residential and commercial systems",
		Features:    []string{"10kW power", "Pure sine wave", "Advanced monitoring", "Triple MPPT"},
		Specifications: map[string]string{
			"power":      "10kW",
			"efficiency": "98.5%",
			"warranty":   "10 years",
			"weight":     "35 kg",
			"dimensions": "700 x 500 mm",
		},
		DeliveryInfo:   "Premium installation service",
		WarrantyInfo:   "10-year comprehensive warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1589519160732-57fc498494f8?w=500&h=500&fit=crop",
		Order:          1,
	},
	{
		Name:        "VoltMax Smart Controller",
		Slug:        "voltmax-smart-controller",
		SeriesSlug:  "voltmax-series",
		Description: "Intelligent energy management controller for complete system optimization",
		Features:    []string{"Load management", "Cloud connectivity", "Predictive analytics", "Mobile app"},
		Specifications: map[string]string{
			"power":      "N/A",
			"efficiency": "99%",
			"warranty":   "5 years",
			"weight":     "3 kg",
			"dimensions": "300 x 200 mm",
		},
		DeliveryInfo:   "Ships with all cables",
		WarrantyInfo:   "5-year hardware warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=500&h=500&fit=crop",
		Order:          2,
	},
	{
		Name:        "PowerX 10kWh Battery System",
		Slug:        "powerx-10kwh-battery",
		SeriesSlug:  "powerx-series",
		Description: "Lithium-ion battery storage system with 10kWh capacity",
		Features:    []string{"10kWh capacity", "LiFePO4 chemistry", "Built-in BMS", "20-year lifespan"},
		Specifications: map[string]string{
			"power":      "5kW continuous",
			"efficiency": "95%",
			"warranty":   "10 years",
			"weight":     "150 kg",
			"dimensions": "2000 x 1000 mm",
		},
		DeliveryInfo:   "Professional installation",
		WarrantyInfo:   "10-year battery warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1581092162562-40038f66deb5?w=500&h=500&fit=crop",
		Order:          0,
	},
	{
		Name:        "PowerX 20kWh Battery System",
		Slug:        "powerx-20kwh-battery",
		SeriesSlug:  "powerx-series",
		Description: "Heavy-duty 20kWh lithium battery system for energy independence",
		Features:    []string{"20kWh capacity", "LiFePO4 chemistry", "Modular scalability", "Fast charging"},
		Specifications: map[string]string{
			"power":      "10kW continuous",
			"efficiency": "96%",
			"warranty":   "10 years",
			"weight":     "300 kg",
			"dimensions": "4000 x 1000 mm",
		},
		DeliveryInfo:   "Team installation included",
		WarrantyInfo:   "10-year comprehensive warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1619983081563-430f63602796?w=500&h=500&fit=crop",
		Order:          1,
	},
	{
		Name:        "PowerX Battery Management System",
		Slug:        "powerx-bms",
		SeriesSlug:  "powerx-series",
		Description: "Advanced management system for battery monitoring and optimization",
		Features:    []string{"Cell monitoring", "Temperature management", "Load balancing", "Cloud integration"},
		Specifications: map[string]string{
			"power":      "N/A",
			"efficiency": "99%",
			"warranty":   "5 years",
			"weight":     "5 kg",
			"dimensions": "400 x 300 mm",
		},
		DeliveryInfo:   "Included with systems",
		WarrantyInfo:   "5-year warranty",
		ThumbnailImage: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500&h=500&fit=crop",
		Order:          2,
	},
}
