package catalog

import (
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

func fixed(rupees int64) domain.Price {
	return domain.FixedPrice(money.Rupees(rupees))
}

func ranged(min, max int64) domain.Price {
	return domain.RangePrice(money.Rupees(min), money.Rupees(max))
}

// DefaultProducts returns the storefront's product list.
func DefaultProducts() []domain.Product {
	products := []domain.Product{
		// Plywoods & Boards
		{
			ID:          "plywood1",
			Name:        "Premium BWR Plywood",
			Description: "High-quality boiling water resistant plywood, perfect for furniture and kitchen cabinets.",
			Category:    domain.CategoryPlywood,
			Subcategory: "bwr",
			Price:       fixed(1200),
			ImageURL:    "https://images.unsplash.com/photo-1533090481720-856c6e3c1fdc?auto=format&fit=crop&q=80&w=600&h=400",
			Features: []string{
				"Boiling Water Resistant - Withstands extreme moisture conditions",
				"IS:303 Grade BWR certified plywood",
				"11-ply construction for superior strength",
				"Environmentally friendly E-1 grade emission standards",
				"Anti-termite and borer resistant treatment",
			},
			Specifications: map[string]string{
				"thickness":  "18mm",
				"dimensions": "8ft x 4ft (2440mm x 1220mm)",
				"material":   "Hardwood",
				"finish":     "Smooth sanded",
				"warranty":   "10 years manufacturer warranty",
			},
		},
		{
			ID:          "plywood2",
			Name:        "MR Grade Plywood",
			Description: "Moisture resistant plywood ideal for indoor furniture applications in humid conditions.",
			Category:    domain.CategoryPlywood,
			Subcategory: "mr",
			Price:       fixed(950),
			ImageURL:    "https://images.unsplash.com/photo-1615529151169-7b1ff50dc7f2?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "plywood3",
			Name:        "Marine Grade Plywood",
			Description: "Waterproof plywood with excellent strength and durability for outdoor applications.",
			Category:    domain.CategoryPlywood,
			Subcategory: "marine",
			Price:       fixed(1500),
			ImageURL:    "https://images.unsplash.com/photo-1611457194403-d3aca4cf9d11?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "plywood4",
			Name:        "MDF Board 18mm",
			Description: "Medium-density fiberboard with smooth finish, ideal for furniture and interior design.",
			Category:    domain.CategoryPlywood,
			Subcategory: "mdf",
			Price:       fixed(850),
			ImageURL:    "https://images.unsplash.com/photo-1496247749665-49cf5b1022e9?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "plywood5",
			Name:        "Particle Board",
			Description: "Engineered wood product manufactured from wood chips and resin, cost-effective alternative.",
			Category:    domain.CategoryPlywood,
			Subcategory: "particle",
			Price:       fixed(650),
			ImageURL:    "https://images.unsplash.com/photo-1519947486511-46149fa0a254?auto=format&fit=crop&q=80&w=600&h=400",
		},

		// Glass
		{
			ID:          "glass1",
			Name:        "Toughened Glass 8mm",
			Description: "Heat-treated safety glass with increased strength and break resistance. Ideal for doors and partitions.",
			Category:    domain.CategoryGlass,
			Subcategory: "toughened",
			Price:       ranged(450, 1200),
			ImageURL:    "https://images.unsplash.com/photo-1598902108854-10e335adac99?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "glass2",
			Name:        "Frosted Glass Panel",
			Description: "Translucent glass offering privacy while allowing light transmission. Perfect for bathrooms and office partitions.",
			Category:    domain.CategoryGlass,
			Subcategory: "frosted",
			Price:       ranged(550, 1100),
			ImageURL:    "https://images.unsplash.com/photo-1600607686527-27cecbcaf290?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "glass3",
			Name:        "Decorative Patterned Glass",
			Description: "Textured and designed glass for aesthetic appeal in interior applications.",
			Category:    domain.CategoryGlass,
			Subcategory: "decorative",
			Price:       ranged(650, 1500),
			ImageURL:    "https://images.unsplash.com/photo-1503602642458-232111445657?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "glass4",
			Name:        "Clear Float Glass 5mm",
			Description: "Transparent glass with smooth surfaces and minimal visual distortion.",
			Category:    domain.CategoryGlass,
			Subcategory: "float",
			Price:       ranged(350, 900),
			ImageURL:    "https://images.unsplash.com/photo-1614332625575-6bef183904b7?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "glass5",
			Name:        "Mirror Glass",
			Description: "Reflective glass with silver coating, available in multiple thickness options.",
			Category:    domain.CategoryGlass,
			Subcategory: "mirror",
			Price:       ranged(500, 1200),
			ImageURL:    "https://images.unsplash.com/photo-1553909489-cd47e0907980?auto=format&fit=crop&q=80&w=600&h=400",
		},

		// Other
		{
			ID:          "other1",
			Name:        "Decorative Laminates",
			Description: "Durable and decorative surfacing material for countertops, furniture, and cabinetry.",
			Category:    domain.CategoryOther,
			Subcategory: "laminates",
			Price:       ranged(350, 950),
			ImageURL:    "https://images.unsplash.com/photo-1618221771885-8c5c4ce783a4?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "other2",
			Name:        "Natural Wood Veneers",
			Description: "Thin slices of premium wood for furniture finishing and interior decoration.",
			Category:    domain.CategoryOther,
			Subcategory: "veneers",
			Price:       ranged(280, 1200),
			ImageURL:    "https://images.unsplash.com/photo-1580816922981-7606aa8f8eb4?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "other3",
			Name:        "PVC Edge Bands",
			Description: "Protective and decorative edging material for plywood and MDF furniture parts.",
			Category:    domain.CategoryOther,
			Subcategory: "edgebands",
			Price:       ranged(120, 300),
			ImageURL:    "https://images.unsplash.com/photo-1555441293-6c6fb1eb9773?auto=format&fit=crop&q=80&w=600&h=400",
		},
		{
			ID:          "other4",
			Name:        "Hardware Accessories Kit",
			Description: "Complete set of furniture fittings including handles, knobs, hinges, and other accessories.",
			Category:    domain.CategoryOther,
			Subcategory: "hardware",
			Price:       fixed(1800),
			ImageURL:    "https://images.unsplash.com/photo-1517420704952-d9f39e95b43e?auto=format&fit=crop&q=80&w=600&h=400",
		},
	}

	for i := range products {
		products[i].Availability = true
		products[i].MinOrderQuantity = 1
	}
	return products
}
