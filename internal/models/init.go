package models

import (
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"

	"github.com/shopspring/decimal"
)

// SeedCatalog loads the default catalog when the sweets table is empty.
// It never overwrites an existing catalog.
func SeedCatalog() error {
	var count int64
	DB.Model(&Sweet{}).Count(&count)
	if count > 0 {
		return nil
	}

	sweets := defaultCatalog()
	if err := DB.Create(&sweets).Error; err != nil {
		return err
	}

	logger.Infow("catalog_seeded", "count", len(sweets))
	return nil
}

func defaultCatalog() []Sweet {
	price := func(v string) Money {
		d, _ := decimal.NewFromString(v)
		return NewMoneyFromDecimal(d)
	}
	return []Sweet{
		{
			Name:        "Chocolate Barfi",
			Category:    "modern",
			PriceAmount: price("18.99"),
			Stock:       20,
			Description: "Rich chocolate fudge with a traditional barfi base",
			Image:       "/images/chocolate-barfi.jpg",
		},
		{
			Name:        "Gulab Jamun",
			Category:    "traditional",
			PriceAmount: price("12.99"),
			Stock:       25,
			Description: "Soft milk dumplings soaked in rose-scented syrup",
			Image:       "/images/gulab-jamun.jpg",
		},
		{
			Name:        "Jalebi",
			Category:    "traditional",
			PriceAmount: price("8.99"),
			Stock:       40,
			Description: "Crisp spirals dipped in saffron syrup",
			Image:       "/images/jalebi.jpg",
		},
		{
			Name:        "Kaju Katli",
			Category:    "premium",
			PriceAmount: price("24.99"),
			Stock:       15,
			Description: "Thin diamond-cut cashew fudge with silver leaf",
			Image:       "/images/kaju-katli.jpg",
		},
		{
			Name:        "Laddu",
			Category:    "traditional",
			PriceAmount: price("14.99"),
			Stock:       35,
			Description: "Gram flour laddus roasted in ghee",
			Image:       "/images/laddu.jpg",
		},
		{
			Name:        "Rasmalai",
			Category:    "premium",
			PriceAmount: price("19.99"),
			Stock:       18,
			Description: "Cottage cheese patties in saffron cardamom milk",
			Image:       "/images/rasmalai.jpg",
		},
		{
			Name:        "Sandesh",
			Category:    "traditional",
			PriceAmount: price("16.99"),
			Stock:       22,
			Description: "Bengali milk sweet flavored with cardamom",
			Image:       "/images/sandesh.jpg",
		},
		{
			Name:        "Rasgulla",
			Category:    "traditional",
			PriceAmount: price("11.99"),
			Stock:       30,
			Description: "Spongy cheese balls in light sugar syrup",
			Image:       "/images/rasgulla.jpg",
		},
	}
}
