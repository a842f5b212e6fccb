package postgres_test

import (
	"errors"
	"testing"

	"github.com/frahmantamala/inventory-tracker/internal/department"
	departmentPostgres "github.com/frahmantamala/inventory-tracker/internal/department/postgres"
	departmentDatamodel "github.com/frahmantamala/inventory-tracker/internal/core/datamodel/department"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDepartmentPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Postgres Suite")
}

var _ = Describe("Department Repository", func() {
	var (
		db   *gorm.DB
		repo department.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departmentDatamodel.Department{})
		Expect(err).NotTo(HaveOccurred())

		repo = departmentPostgres.NewDepartmentRepository(db)
	})

	Describe("Create", func() {
		It("should create a new department successfully", func() {
			dept := &departmentDatamodel.Department{Name: "Sales"}

			err := repo.Create(dept)
			Expect(err).NotTo(HaveOccurred())
			Expect(dept.ID).To(BeNumerically(">", 0))
			Expect(dept.CreatedAt).NotTo(BeZero())
		})

		It("should surface a duplicate name as a duplicated-key error", func() {
			err := repo.Create(&departmentDatamodel.Department{Name: "Sales"})
			Expect(err).NotTo(HaveOccurred())

			err = repo.Create(&departmentDatamodel.Department{Name: "Sales"})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, gorm.ErrDuplicatedKey)).To(BeTrue())

			departments, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(departments).To(HaveLen(1))
		})
	})

	Describe("GetAll", func() {
		It("should retrieve departments ordered by name", func() {
			for _, name := range []string{"Inventory", "Sales", "Accounting"} {
				Expect(repo.Create(&departmentDatamodel.Department{Name: name})).To(Succeed())
			}

			departments, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(departments).To(HaveLen(3))

			Expect(departments[0].Name).To(Equal("Accounting"))
			Expect(departments[1].Name).To(Equal("Inventory"))
			Expect(departments[2].Name).To(Equal("Sales"))
		})
	})

	Describe("GetByName", func() {
		It("should retrieve a department by name", func() {
			Expect(repo.Create(&departmentDatamodel.Department{Name: "Sales"})).To(Succeed())

			result, err := repo.GetByName("Sales")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).NotTo(BeNil())
			Expect(result.Name).To(Equal("Sales"))
		})

		It("should return nil for a non-existent department", func() {
			result, err := repo.GetByName("Nonexistent")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})
})
