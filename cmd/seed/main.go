// Command seed migrates the schema and loads a starter catalog with one
// admin account, a handful of brands and perfumes, and priced inventory
// rows for every size variant.
package main

import (
	"log/slog"
	"math/rand"
	"os"

	"parfum/config"
	"parfum/internal/domain/entity"
	logs "parfum/internal/infra/log"
	"parfum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminEmail    = "amanda@mail.com"
	adminPassword = "admin1234"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.BrandModel{},
		&model.PerfumeModel{},
		&model.InventoryModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	logger.Info("Schema migrated")

	if err := seedAdmin(db); err != nil {
		return err
	}
	logger.Info("Admin account seeded", slog.String("email", adminEmail))

	brands, err := seedBrands(db)
	if err != nil {
		return err
	}
	logger.Info("Brands seeded", slog.Int("count", len(brands)))

	perfumes, err := seedPerfumes(db, brands)
	if err != nil {
		return err
	}
	logger.Info("Perfumes seeded", slog.Int("count", len(perfumes)))

	if err := seedInventory(db, perfumes); err != nil {
		return err
	}
	logger.Info("Inventory seeded")

	return nil
}

func seedAdmin(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &model.UserModel{
		Email:        adminEmail,
		PasswordHash: string(hash),
	}
	if err := db.Create(admin).Error; err != nil {
		return errors.Wrap(err, "failed to seed admin account")
	}

	return nil
}

func seedBrands(db *gorm.DB) ([]*model.BrandModel, error) {
	brands := []*model.BrandModel{
		{Name: "Carolina Herrera"},
		{Name: "Chanel"},
		{Name: "Dior"},
		{Name: "Paco Rabanne"},
		{Name: "Hugo Boss"},
	}
	if err := db.Create(&brands).Error; err != nil {
		return nil, errors.Wrap(err, "failed to seed brands")
	}

	return brands, nil
}

func seedPerfumes(db *gorm.DB, brands []*model.BrandModel) ([]*model.PerfumeModel, error) {
	perfumes := []*model.PerfumeModel{
		{
			Name:        "Good Girl",
			Description: "Oriental floral fragrance for women",
			ImageURL:    "good-girl.jpg",
			BrandID:     brands[0].ID,
		},
		{
			Name:        "Bad Boy",
			Description: "Oriental spicy fragrance for men",
			ImageURL:    "bad-boy.jpg",
			BrandID:     brands[0].ID,
		},
		{
			Name:        "N°5",
			Description: "Iconic aldehydic floral fragrance",
			ImageURL:    "n5.jpg",
			BrandID:     brands[1].ID,
		},
		{
			Name:        "Sauvage",
			Description: "Fresh aromatic fragrance",
			ImageURL:    "sauvage.jpg",
			BrandID:     brands[2].ID,
		},
		{
			Name:        "1 Million",
			Description: "Oriental spicy fragrance",
			ImageURL:    "1-million.jpg",
			BrandID:     brands[3].ID,
		},
	}
	if err := db.Create(&perfumes).Error; err != nil {
		return nil, errors.Wrap(err, "failed to seed perfumes")
	}

	return perfumes, nil
}

func seedInventory(db *gorm.DB, perfumes []*model.PerfumeModel) error {
	basePrices := map[entity.Size]float64{
		entity.SizeSmall:  50,
		entity.SizeMedium: 80,
		entity.SizeLarge:  120,
	}

	rows := make([]*model.InventoryModel, 0, len(perfumes)*len(entity.AllSizes()))
	for _, perfume := range perfumes {
		for _, size := range entity.AllSizes() {
			rows = append(rows, &model.InventoryModel{
				PerfumeID: perfume.ID,
				Size:      string(size),
				Price:     basePrices[size] + rand.Float64()*20,
				Stock:     rand.Intn(20) + 5,
			})
		}
	}
	if err := db.Create(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to seed inventory")
	}

	return nil
}
