// Command seed provisions a development database: it migrates the schema
// and loads a small set of sample accounts, categories, stores and deals.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/riaj03/savyo/config"
	"github.com/riaj03/savyo/internal/domain/entity"
	"github.com/riaj03/savyo/internal/infra/auth"
	"github.com/riaj03/savyo/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

type seedCategory struct {
	name        string
	description string
	icon        string
}

type seedStore struct {
	name        string
	description string
	logo        string
	website     string
	category    string
}

type seedDeal struct {
	title         string
	description   string
	store         string
	category      string
	originalPrice float64
	discountPrice float64
	imageURL      string
	dealURL       string
	expiresIn     time.Duration
}

var categories = []seedCategory{
	{"Electronics", "Electronic devices and accessories", "laptop"},
	{"Fashion", "Clothing, shoes, and accessories", "shirt"},
	{"Home & Garden", "Home improvement and garden supplies", "home"},
	{"Travel", "Travel deals and vacation packages", "plane"},
	{"Food & Dining", "Restaurant deals and food delivery", "utensils"},
	{"Beauty", "Beauty and personal care products", "sparkles"},
}

var stores = []seedStore{
	{"Amazon", "The world's largest online retailer", "https://example.com/amazon-logo.png", "https://amazon.com", "Electronics"},
	{"Walmart", "America's largest retailer", "https://example.com/walmart-logo.png", "https://walmart.com", "Fashion"},
	{"Best Buy", "Electronics and appliances retailer", "https://example.com/bestbuy-logo.png", "https://bestbuy.com", "Electronics"},
	{"Target", "General merchandise retailer", "https://example.com/target-logo.png", "https://target.com", "Home & Garden"},
}

var deals = []seedDeal{
	{
		title:         "50% off on Electronics",
		description:   "Get 50% off on all electronics at Amazon",
		store:         "Amazon",
		category:      "Electronics",
		originalPrice: 999.99,
		discountPrice: 499.99,
		imageURL:      "https://example.com/electronics-deal.jpg",
		dealURL:       "https://amazon.com/deals/electronics",
		expiresIn:     7 * 24 * time.Hour,
	},
	{
		title:         "Summer Fashion Sale",
		description:   "Up to 70% off on summer clothing",
		store:         "Walmart",
		category:      "Fashion",
		originalPrice: 199.99,
		discountPrice: 59.99,
		imageURL:      "https://example.com/fashion-deal.jpg",
		dealURL:       "https://walmart.com/deals/fashion",
		expiresIn:     14 * 24 * time.Hour,
	},
	{
		title:         "Home Decor Clearance",
		description:   "Clearance sale on home decor items",
		store:         "Target",
		category:      "Home & Garden",
		originalPrice: 299.99,
		discountPrice: 149.99,
		imageURL:      "https://example.com/home-deal.jpg",
		dealURL:       "https://target.com/deals/home",
		expiresIn:     10 * 24 * time.Hour,
	},
}

func main() {
	wipe := flag.Bool("wipe", false, "delete existing rows before seeding")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.StoreModel{},
		&model.DealModel{},
	); err != nil {
		logger.Error("Failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Schema migrated")

	if *wipe {
		for _, m := range []any{&model.DealModel{}, &model.StoreModel{}, &model.CategoryModel{}, &model.UserModel{}} {
			if err := db.Where("1 = 1").Delete(m).Error; err != nil {
				logger.Error("Failed to wipe table", slog.Any("error", err))
				os.Exit(1)
			}
		}
		logger.Info("Existing rows wiped")
	}

	if err := seed(db, cfg, logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding completed")
}

func seed(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	hasher := auth.NewBcryptHasher()
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		hasher = auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	adminHash, err := hasher.Hash("admin123")
	if err != nil {
		return err
	}
	userHash, err := hasher.Hash("password123")
	if err != nil {
		return err
	}

	admin := &model.UserModel{
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: adminHash,
		Role:         entity.RoleAdmin.String(),
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	testUser := &model.UserModel{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: userHash,
		Role:         entity.RoleUser.String(),
	}
	if err := db.Create(testUser).Error; err != nil {
		return err
	}
	logger.Info("Accounts created", slog.String("admin", admin.Email), slog.String("user", testUser.Email))

	categoryIDs := make(map[string]model.CategoryModel, len(categories))
	for _, c := range categories {
		row := model.CategoryModel{
			Name:        c.name,
			Description: c.description,
			Icon:        c.icon,
			Status:      string(entity.StatusActive),
			CreatedBy:   admin.ID,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		categoryIDs[c.name] = row
	}
	logger.Info("Categories created", slog.Int("count", len(categories)))

	storeIDs := make(map[string]model.StoreModel, len(stores))
	for _, s := range stores {
		row := model.StoreModel{
			Name:        s.name,
			Description: s.description,
			Logo:        s.logo,
			Website:     s.website,
			CategoryID:  categoryIDs[s.category].ID,
			Status:      string(entity.StatusActive),
			CreatedBy:   admin.ID,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		storeIDs[s.name] = row
	}
	logger.Info("Stores created", slog.Int("count", len(stores)))

	for _, d := range deals {
		// Derive the percentage the same way the API does.
		deal := entity.Deal{
			OriginalPrice: d.originalPrice,
			DiscountPrice: d.discountPrice,
		}
		deal.RecalculateDiscount()

		row := model.DealModel{
			Title:              d.title,
			Description:        d.description,
			StoreID:            storeIDs[d.store].ID,
			CategoryID:         categoryIDs[d.category].ID,
			OriginalPrice:      d.originalPrice,
			DiscountPrice:      d.discountPrice,
			DiscountPercentage: deal.DiscountPercentage,
			ImageURL:           d.imageURL,
			DealURL:            d.dealURL,
			ExpiryDate:         time.Now().Add(d.expiresIn),
			Status:             string(entity.DealStatusActive),
			CreatedBy:          testUser.ID,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	logger.Info("Deals created", slog.Int("count", len(deals)))

	return nil
}
