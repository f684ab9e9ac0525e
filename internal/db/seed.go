package db

import (
	"github.com/mohammadsaqib2064/onyx-aura/config"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/model"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/util"
	"gorm.io/gorm"
)

// SeedCatalog is the launch catalog: seven Spotlight flagships and seven
// Collection pieces.
func SeedCatalog() []model.Product {
	return []model.Product{
		{
			Name:        "Titan Apex Pro",
			Price:       "$29,900",
			Image:       "https://example.com/spot1.jpg",
			Images:      model.StringArray{"https://example.com/spot1.jpg"},
			Category:    model.CategorySpotlight,
			Description: "Premium flagship watch with bold luxury appeal",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Titanium",
				CaseDiameter:    "42mm",
				WaterResistance: "100m",
				Warranty:        "5 Years",
				PowerReserve:    "72 hours",
			},
		},
		{
			Name:        "Orion Prime",
			Price:       "$32,500",
			Image:       "https://example.com/spot2.jpg",
			Images:      model.StringArray{"https://example.com/spot2.jpg"},
			Category:    model.CategorySpotlight,
			Description: "High-end executive watch for elite professionals",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Ceramic",
				CaseDiameter:    "43mm",
				WaterResistance: "150m",
				Warranty:        "5 Years",
				PowerReserve:    "70 hours",
			},
		},
		{
			Name:        "Royal Chronos",
			Price:       "$35,000",
			Image:       "https://example.com/spot3.jpg",
			Images:      model.StringArray{"https://example.com/spot3.jpg"},
			Category:    model.CategorySpotlight,
			Description: "Luxury chronograph with royal finishing",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Gold Plated Steel",
				CaseDiameter:    "44mm",
				WaterResistance: "100m",
				Warranty:        "5 Years",
				PowerReserve:    "72 hours",
			},
		},
		{
			Name:        "Phantom X",
			Price:       "$28,700",
			Image:       "https://example.com/spot4.jpg",
			Images:      model.StringArray{"https://example.com/spot4.jpg"},
			Category:    model.CategorySpotlight,
			Description: "Stealth black watch with modern dominance",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Ceramic",
				CaseDiameter:    "42mm",
				WaterResistance: "100m",
				Warranty:        "4 Years",
				PowerReserve:    "68 hours",
			},
		},
		{
			Name:        "Ocean Master Pro",
			Price:       "$34,200",
			Image:       "https://example.com/spot5.jpg",
			Images:      model.StringArray{"https://example.com/spot5.jpg"},
			Category:    model.CategorySpotlight,
			Description: "Professional deep-sea diving watch",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Titanium",
				CaseDiameter:    "45mm",
				WaterResistance: "300m",
				Warranty:        "5 Years",
				PowerReserve:    "72 hours",
			},
		},
		{
			Name:        "Lunar Supreme",
			Price:       "$31,800",
			Image:       "https://example.com/spot6.jpg",
			Images:      model.StringArray{"https://example.com/spot6.jpg"},
			Category:    model.CategorySpotlight,
			Description: "Space-inspired futuristic luxury watch",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Carbon Fiber",
				CaseDiameter:    "43mm",
				WaterResistance: "120m",
				Warranty:        "5 Years",
				PowerReserve:    "70 hours",
			},
		},
		{
			Name:        "Imperial Crown",
			Price:       "$38,900",
			Image:       "https://example.com/spot7.jpg",
			Images:      model.StringArray{"https://example.com/spot7.jpg"},
			Category:    model.CategorySpotlight,
			Description: "Ultra-luxury masterpiece with heritage design",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Platinum Coated",
				CaseDiameter:    "41mm",
				WaterResistance: "100m",
				Warranty:        "6 Years",
				PowerReserve:    "75 hours",
			},
		},
		{
			Name:        "Nova Classic",
			Price:       "$18,500",
			Image:       "https://example.com/col1.jpg",
			Images:      model.StringArray{"https://example.com/col1.jpg"},
			Category:    model.CategoryCollection,
			Description: "Minimal everyday luxury watch",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Stainless Steel",
				CaseDiameter:    "40mm",
				WaterResistance: "50m",
				Warranty:        "3 Years",
				PowerReserve:    "48 hours",
			},
		},
		{
			Name:        "Skyline Urban",
			Price:       "$14,900",
			Image:       "https://example.com/col2.jpg",
			Images:      model.StringArray{"https://example.com/col2.jpg"},
			Category:    model.CategoryCollection,
			Description: "Modern urban-style timepiece",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Aluminum",
				CaseDiameter:    "40mm",
				WaterResistance: "50m",
				Warranty:        "2 Years",
				PowerReserve:    "42 hours",
			},
		},
		{
			Name:        "Vintage Crown",
			Price:       "$17,300",
			Image:       "https://example.com/col3.jpg",
			Images:      model.StringArray{"https://example.com/col3.jpg"},
			Category:    model.CategoryCollection,
			Description: "Vintage-inspired classic watch",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Bronze",
				CaseDiameter:    "39mm",
				WaterResistance: "50m",
				Warranty:        "3 Years",
				PowerReserve:    "48 hours",
			},
		},
		{
			Name:        "Falcon Racer",
			Price:       "$23,800",
			Image:       "https://example.com/col4.jpg",
			Images:      model.StringArray{"https://example.com/col4.jpg"},
			Category:    model.CategoryCollection,
			Description: "Racing chronograph with sporty look",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Stainless Steel",
				CaseDiameter:    "43mm",
				WaterResistance: "100m",
				Warranty:        "4 Years",
				PowerReserve:    "70 hours",
			},
		},
		{
			Name:        "Glacier Ice",
			Price:       "$15,700",
			Image:       "https://example.com/col5.jpg",
			Images:      model.StringArray{"https://example.com/col5.jpg"},
			Category:    model.CategoryCollection,
			Description: "Clean and cool modern watch",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Stainless Steel",
				CaseDiameter:    "40mm",
				WaterResistance: "50m",
				Warranty:        "3 Years",
				PowerReserve:    "46 hours",
			},
		},
		{
			Name:        "Desert Storm",
			Price:       "$20,900",
			Image:       "https://example.com/col6.jpg",
			Images:      model.StringArray{"https://example.com/col6.jpg"},
			Category:    model.CategoryCollection,
			Description: "Rugged watch for harsh environments",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Titanium",
				CaseDiameter:    "44mm",
				WaterResistance: "200m",
				Warranty:        "5 Years",
				PowerReserve:    "72 hours",
			},
		},
		{
			Name:        "Classic Heritage",
			Price:       "$13,900",
			Image:       "https://example.com/col7.jpg",
			Images:      model.StringArray{"https://example.com/col7.jpg"},
			Category:    model.CategoryCollection,
			Description: "Affordable classic luxury watch",
			Height:      model.HeightTall,
			Specifications: model.Specifications{
				Movement:        "Swiss Automatic",
				CaseMaterial:    "Stainless Steel",
				CaseDiameter:    "39mm",
				WaterResistance: "50m",
				Warranty:        "2 Years",
				PowerReserve:    "40 hours",
			},
		},
	}
}

// Seed wipes the catalog and user tables and inserts the launch catalog
// plus the admin and demo accounts.
func Seed(cfg *config.SeedConfig) error {
	logger.Info("Seeding database...")

	if err := DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.Review{}).Error; err != nil {
		return err
	}
	if err := DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.Product{}).Error; err != nil {
		return err
	}
	if err := DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.User{}).Error; err != nil {
		return err
	}

	products := SeedCatalog()
	for i := range products {
		if err := DB.Create(&products[i]).Error; err != nil {
			logger.Error("Failed to seed product", err, map[string]interface{}{
				"name": products[i].Name,
			})
			return err
		}
	}
	logger.Info("Catalog seeded", map[string]interface{}{
		"products": len(products),
	})

	if err := seedUser(cfg.AdminEmail, cfg.AdminPassword, model.RoleAdmin); err != nil {
		return err
	}
	if err := seedUser("demo@onyxaura.com", "demo123", model.RoleDemo); err != nil {
		return err
	}

	logger.Info("Database seeded successfully")
	return nil
}

func seedUser(email, password string, role model.UserRole) error {
	hashed, err := util.HashPassword(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	if err := DB.Create(user).Error; err != nil {
		logger.Error("Failed to seed user", err, map[string]interface{}{
			"email": email,
		})
		return err
	}
	logger.Info("User seeded", map[string]interface{}{
		"email": email,
		"role":  role,
	})
	return nil
}
