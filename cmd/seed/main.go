package main

import (
	"flag"

	"github.com/alimgiray/menuhub/internal/fixtures"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/migrations"
	"github.com/alimgiray/menuhub/pkg/config"
	"github.com/alimgiray/menuhub/pkg/database"
	"github.com/alimgiray/menuhub/pkg/logger"
)

func main() {
	file := flag.String("file", "configs/fixtures.yaml", "fixtures file to load")
	flag.Parse()

	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig
	logger.Init(cfg.Log.Level)

	if err := database.Init(cfg.Database.Path, migrations.FS); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	fixtureFile, err := fixtures.Load(*file)
	if err != nil {
		logger.Fatalf("Failed to load fixtures: %v", err)
	}

	merchantRepo := repositories.NewMerchantRepository(database.DB)
	seeder := fixtures.NewSeeder(
		services.NewMerchantService(merchantRepo),
		services.NewOpeningHourService(repositories.NewOpeningHourRepository(database.DB), merchantRepo),
		services.NewModeScheduleService(repositories.NewModeScheduleRepository(database.DB), merchantRepo),
		services.NewSpecialHourService(repositories.NewSpecialHourRepository(database.DB), merchantRepo),
		services.NewUserService(repositories.NewUserRepository(database.DB), cfg.OAuth.SuperAdminEmails),
	)

	if err := seeder.Apply(fixtureFile); err != nil {
		logger.Fatalf("Failed to seed: %v", err)
	}

	logger.Infof("Seeded %d merchants and %d users from %s", len(fixtureFile.Merchants), len(fixtureFile.Users), *file)
}
