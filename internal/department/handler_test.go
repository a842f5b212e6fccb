package department

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/transport"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type mockDepartmentService struct {
	departments []DepartmentResponse
	createErr   error
	listErr     error
	created     []CreateDepartmentDTO
}

func (m *mockDepartmentService) GetAllDepartments() ([]DepartmentResponse, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.departments, nil
}

func (m *mockDepartmentService) CreateDepartment(dto CreateDepartmentDTO) (*Department, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, dto)
	return &Department{ID: 1, Name: dto.Name}, nil
}

var _ = ginkgo.Describe("DepartmentHandler", func() {
	var (
		handler     *Handler
		mockService *mockDepartmentService
	)

	ginkgo.BeforeEach(func() {
		mockService = &mockDepartmentService{}
		handler = NewHandler(transport.NewBaseHandler(slog.Default()), mockService)
	})

	postForm := func(name string) *httptest.ResponseRecorder {
		form := url.Values{}
		form.Set("name", name)

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		handler.CreateDepartment(rec, req)
		return rec
	}

	ginkgo.Describe("GetDepartments", func() {
		ginkgo.It("should return the department list", func() {
			mockService.departments = []DepartmentResponse{
				{ID: 1, Name: "Inventory"},
				{ID: 2, Name: "Sales"},
			}

			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			rec := httptest.NewRecorder()
			handler.GetDepartments(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			var resp DepartmentsResponse
			gomega.Expect(json.NewDecoder(rec.Body).Decode(&resp)).To(gomega.Succeed())
			gomega.Expect(resp.Departments).To(gomega.HaveLen(2))
			gomega.Expect(resp.Departments[0].Name).To(gomega.Equal("Inventory"))
		})

		ginkgo.It("should return 500 when the service fails", func() {
			mockService.listErr = errors.New("connection refused")

			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			rec := httptest.NewRecorder()
			handler.GetDepartments(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))
		})

		ginkgo.It("should use the domain error's status code when the service returns one", func() {
			mockService.listErr = internal.NewInternalError("store unavailable", errors.New("connection refused"))

			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			rec := httptest.NewRecorder()
			handler.GetDepartments(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))

			var resp internal.Response
			gomega.Expect(json.NewDecoder(rec.Body).Decode(&resp)).To(gomega.Succeed())
			gomega.Expect(resp.Error).ToNot(gomega.BeNil())
			gomega.Expect(resp.Error.Type).To(gomega.Equal(internal.ErrorTypeInternal))
		})
	})

	ginkgo.Describe("CreateDepartment", func() {
		ginkgo.It("should create and redirect back with a flash", func() {
			rec := postForm("Sales")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/departments"))
			gomega.Expect(mockService.created).To(gomega.HaveLen(1))
			gomega.Expect(mockService.created[0].Name).To(gomega.Equal("Sales"))
		})

		ginkgo.It("should surface a conflict as a flash message, not an error page", func() {
			mockService.createErr = internal.ErrDuplicateDepartment

			rec := postForm("Sales")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusSeeOther))
			gomega.Expect(rec.Header().Get("Location")).To(gomega.Equal("/departments"))
		})
	})
})
