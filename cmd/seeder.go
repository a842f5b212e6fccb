package cmd

import (
	"log"

	"github.com/frahmantamala/inventory-tracker/internal/bootstrap"
	"github.com/frahmantamala/inventory-tracker/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with default accounts and sample data",
	Long:  `Seed the database with the default admin/clerk accounts plus sample departments and items for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)
		seeder := bootstrap.NewService(db, cfg.Security.BCryptCost, logger.LoggerWrapper())

		if clearData {
			if err := seeder.ClearData(); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
		}

		if err := seeder.InitDB(); err != nil {
			log.Fatalf("failed to seed default accounts: %v", err)
		}

		if err := seeder.SeedSampleData(); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}
	},
}
