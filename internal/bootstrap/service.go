package bootstrap

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/inventory-tracker/internal/auth"
	activityDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/activity"
	departmentDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/department"
	itemDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/item"
	userDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/user"
	"gorm.io/gorm"
)

const seedPassword = "password123"

// Service performs the one-time database bootstrap: schema creation plus the
// default accounts that make the system usable before any real data exists.
// Every step is idempotent so repeated runs are harmless.
type Service struct {
	db         *gorm.DB
	bcryptCost int
	logger     *slog.Logger
}

func NewService(db *gorm.DB, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// InitDB creates the schema if absent and seeds the default admin and clerk
// accounts when no admin user exists yet.
func (s *Service) InitDB() error {
	if err := s.migrateSchema(); err != nil {
		return err
	}
	return s.seedUsers()
}

func (s *Service) migrateSchema() error {
	return s.db.AutoMigrate(
		&userDatamodel.User{},
		&departmentDatamodel.Department{},
		&itemDatamodel.Item{},
		&activityDatamodel.Activity{},
	)
}

func (s *Service) seedUsers() error {
	var admin userDatamodel.User
	err := s.db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		s.logger.Info("admin user already exists, skipping user seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(seedPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	seedAccounts := []*userDatamodel.User{
		{Username: "admin", PasswordHash: hash, Role: string(auth.RoleAdmin)},
		{Username: "clerk", PasswordHash: hash, Role: string(auth.RoleStaff)},
	}

	for _, account := range seedAccounts {
		if err := s.db.Create(account).Error; err != nil {
			return err
		}
		s.logger.Info("seeded user", "username", account.Username, "role", account.Role)
	}

	return nil
}

// SeedSampleData inserts the sample departments and items used for local
// development. Only runs when the departments table is empty.
func (s *Service) SeedSampleData() error {
	var count int64
	if err := s.db.Model(&departmentDatamodel.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("departments already present, skipping sample data seed")
		return nil
	}

	sales := &departmentDatamodel.Department{Name: "Sales"}
	inventory := &departmentDatamodel.Department{Name: "Inventory"}
	for _, dept := range []*departmentDatamodel.Department{sales, inventory} {
		if err := s.db.Create(dept).Error; err != nil {
			return err
		}
		s.logger.Info("seeded department", "name", dept.Name)
	}

	sampleItems := []*itemDatamodel.Item{
		{Name: "Printer Paper", DepartmentID: &sales.ID, Stock: 200},
		{Name: "Shipping Boxes", DepartmentID: &inventory.ID, Stock: 50},
		{Name: "Label Rolls", DepartmentID: &inventory.ID, Stock: 120},
	}
	for _, sampleItem := range sampleItems {
		if err := s.db.Create(sampleItem).Error; err != nil {
			return err
		}
		s.logger.Info("seeded item", "name", sampleItem.Name)
	}

	return nil
}

// ClearData removes all rows in dependency order. Used by the seed command's
// --clear flag.
func (s *Service) ClearData() error {
	tables := []string{"activities", "items", "departments", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	s.logger.Info("cleared all data")
	return nil
}
