package catalog

import (
	"github.com/windsor-dist/storefront-api/internal/pricing"
)

var seedColors = []pricing.ColorOption{
	{ID: "white", Name: "White", NameTh: "ขาว", HexCode: "#FFFFFF"},
	{ID: "black", Name: "Black", NameTh: "ดำ", HexCode: "#1A1A1A"},
	{ID: "grey", Name: "Grey", NameTh: "เทา", HexCode: "#808080"},
	{ID: "walnut", Name: "Walnut", NameTh: "ลายไม้วอลนัท", HexCode: "#5C4033", PriceModifier: 500},
	{ID: "bronze", Name: "Bronze", NameTh: "บรอนซ์", HexCode: "#CD7F32", PriceModifier: 800},
}

var seedGlass = []pricing.GlassOption{
	{ID: "clear-5mm", Name: "Clear Glass 5mm", NameTh: "กระจกใส 5 มม.", Description: "กระจกใสมาตรฐาน ความหนา 5 มม.", PricePerSqm: 0},
	{ID: "clear-6mm", Name: "Clear Glass 6mm", NameTh: "กระจกใส 6 มม.", Description: "กระจกใสมาตรฐาน ความหนา 6 มม.", PricePerSqm: 150},
	{ID: "frosted", Name: "Frosted Glass", NameTh: "กระจกฝ้า", Description: "กระจกฝ้าพ่นทราย กันการมองทะลุ", PricePerSqm: 350},
	{ID: "tinted-green", Name: "Tinted Glass - Green", NameTh: "กระจกสีเขียว", Description: "กระจกสีเขียวตัดแสง ลดความร้อน 30%", PricePerSqm: 400},
	{ID: "tempered-5mm", Name: "Tempered Glass 5mm", NameTh: "กระจกเทมเปอร์ 5 มม.", Description: "กระจกนิรภัย แข็งแรงกว่าปกติ 5 เท่า", PricePerSqm: 650},
	{ID: "tempered-6mm", Name: "Tempered Glass 6mm", NameTh: "กระจกเทมเปอร์ 6 มม.", Description: "กระจกนิรภัย หนา 6 มม.", PricePerSqm: 800},
	{ID: "laminated", Name: "Laminated Glass", NameTh: "กระจกลามิเนต", Description: "กระจกสองชั้นประกบฟิล์มนิรภัย", PricePerSqm: 950},
}

// SeedProducts returns the built-in catalog. The service is session-only, so
// the catalog ships in memory the way the distributor's price list does.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "prod-001",
			SKU:         "WIN-SLD-8842",
			Name:        "Signature Sliding Door",
			NameTh:      "ประตูบานเลื่อน Signature",
			Category:    CategoryDoor,
			Series:      "Series 500",
			BasePrice:   12500,
			Rating:      4.8,
			ReviewCount: 156,
			Badges:      []Badge{BadgeBestSeller},
			Description: "Sliding door engineered from high-quality uPVC with noise reduction and thermal insulation.",
			Features:    []string{"Noise Reduction", "UV Protection", "High Security", "Waterproof"},
			Specs: map[string]string{
				"material":       "Premium uPVC",
				"warranty":       "10 Years Limited",
				"glassType":      "Double Glazed Tempered",
				"frameThickness": "60mm",
				"soundReduction": "32 dB",
			},
			StockStatus:  InStock,
			LeadTimeDays: 14,
			Configurable: true,
			Constraints: &pricing.ConstraintModel{
				Width:  pricing.Range{Min: 120, Max: 400, Step: 10},
				Height: pricing.Range{Min: 180, Max: 280, Step: 10},
				Colors: seedColors,
				Glass:  seedGlass,
			},
		},
		{
			ID:          "prod-002",
			SKU:         "WIN-CSM-3301",
			Name:        "Premier Casement Window",
			NameTh:      "หน้าต่างบานเปิด Premier",
			Category:    CategoryWindow,
			Series:      "Series 300",
			BasePrice:   8900,
			Rating:      4.6,
			ReviewCount: 89,
			Badges:      []Badge{BadgeEco},
			Description: "Energy efficient casement window with double glazed glass.",
			Features:    []string{"Energy Efficient", "Double Glazed", "Easy Clean", "Ventilation"},
			Specs: map[string]string{
				"material":       "Aluminum",
				"warranty":       "5 Years",
				"frameThickness": "45mm",
			},
			StockStatus:  InStock,
			LeadTimeDays: 7,
			Configurable: true,
			Constraints: &pricing.ConstraintModel{
				Width:  pricing.Range{Min: 60, Max: 180, Step: 5},
				Height: pricing.Range{Min: 60, Max: 180, Step: 5},
				Colors: seedColors[:3],
				Glass:  seedGlass[:3],
			},
		},
		{
			ID:          "prod-003",
			SKU:         "WIN-ENT-5501",
			Name:        "Grand Entrance Door",
			NameTh:      "ประตูทางเข้า Grand",
			Category:    CategoryDoor,
			Series:      "Premium Collection",
			BasePrice:   15000,
			Rating:      4.9,
			ReviewCount: 42,
			Badges:      []Badge{BadgeNew},
			Description: "Solid wood entrance door, smart lock ready.",
			Features:    []string{"Solid Wood", "Smart Lock Ready", "Weather Resistant"},
			Specs: map[string]string{
				"material": "Solid Wood",
				"warranty": "15 Years",
			},
			StockStatus:  PreOrder,
			LeadTimeDays: 21,
			Configurable: true,
			Constraints: &pricing.ConstraintModel{
				Width:  pricing.Range{Min: 80, Max: 120, Step: 5},
				Height: pricing.Range{Min: 200, Max: 240, Step: 5},
				Colors: seedColors[2:],
				Glass:  seedGlass[:2],
			},
		},
		{
			ID:          "prod-004",
			SKU:         "WIN-AWN-5501",
			Name:        "Awning Window",
			NameTh:      "หน้าต่างบานกระทุ้ง",
			Category:    CategoryWindow,
			Series:      "Series 500",
			BasePrice:   5500,
			Rating:      4.5,
			ReviewCount: 67,
			Description: "Top-hinged awning window for ventilation in the rain.",
			Features:    []string{"Top Hinged", "Rain Protection", "Compact Design"},
			Specs: map[string]string{
				"material": "Vinyl",
				"warranty": "5 Years",
			},
			StockStatus:  InStock,
			LeadTimeDays: 5,
			Configurable: true,
			Constraints: &pricing.ConstraintModel{
				Width:  pricing.Range{Min: 40, Max: 120, Step: 5},
				Height: pricing.Range{Min: 40, Max: 80, Step: 5},
				Colors: seedColors[:2],
				Glass:  seedGlass[:3],
			},
		},
		{
			ID:          "prod-005",
			SKU:         "ACC-HDL-1201",
			Name:        "Heavy Duty Handle",
			NameTh:      "มือจับรุ่นหนัก",
			Category:    CategoryAccessory,
			BasePrice:   890,
			Rating:      4.3,
			ReviewCount: 210,
			Description: "Stainless steel handle compatible with all WINDSOR series.",
			Specs: map[string]string{
				"material": "Stainless Steel 304",
				"warranty": "2 Years",
			},
			StockStatus:  InStock,
			Configurable: false,
		},
		{
			ID:          "prod-006",
			SKU:         "WIN-SCR-2210",
			Name:        "Retractable Insect Screen",
			NameTh:      "มุ้งลวดม้วนเก็บ",
			Category:    CategoryScreen,
			Series:      "Smart Series",
			BasePrice:   3200,
			Rating:      4.4,
			ReviewCount: 58,
			Badges:      []Badge{BadgePromo},
			Description: "Retractable screen for sliding doors and large windows.",
			Features:    []string{"Retractable", "Fine Mesh", "Easy Install"},
			Specs: map[string]string{
				"material": "Fiberglass Mesh",
				"warranty": "3 Years",
			},
			StockStatus:  InStock,
			LeadTimeDays: 5,
			Configurable: true,
			Constraints: &pricing.ConstraintModel{
				Width:  pricing.Range{Min: 50, Max: 240, Step: 5},
				Height: pricing.Range{Min: 40, Max: 200, Step: 5},
				Colors: seedColors[:3],
			},
		},
	}
}
