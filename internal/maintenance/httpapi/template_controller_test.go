package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	maintenanceHTTPAPI "geraetewart-server/internal/maintenance/httpapi"
	"geraetewart-server/internal/maintenance/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeTemplateService struct {
	templates map[shareddomain.ID]maintenanceDomain.Template
}

func newFakeTemplateService() *fakeTemplateService {
	return &fakeTemplateService{templates: make(map[shareddomain.ID]maintenanceDomain.Template)}
}

func (f *fakeTemplateService) CreateTemplate(_ context.Context, template maintenanceDomain.Template) error {
	f.templates[template.ID] = template
	return nil
}

func (f *fakeTemplateService) GetTemplate(_ context.Context, id shareddomain.ID) (maintenanceDomain.Template, error) {
	template, found := f.templates[id]
	if !found {
		return maintenanceDomain.Template{}, usecases.ErrTemplateNotFound
	}
	return template, nil
}

func (f *fakeTemplateService) ListTemplates(_ context.Context, _ usecases.Pagination) ([]maintenanceDomain.Template, int, error) {
	result := make([]maintenanceDomain.Template, 0, len(f.templates))
	for _, template := range f.templates {
		result = append(result, template)
	}
	return result, len(result), nil
}

func (f *fakeTemplateService) UpdateTemplate(_ context.Context, template maintenanceDomain.Template) error {
	if !template.HasValidInterval() {
		return maintenanceDomain.ErrTemplateIntervalInvalid
	}
	f.templates[template.ID] = template
	return nil
}

func (f *fakeTemplateService) DeleteTemplate(_ context.Context, id shareddomain.ID) error {
	if _, found := f.templates[id]; !found {
		return usecases.ErrTemplateNotFound
	}
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateService) ActivateTemplate(_ context.Context, id shareddomain.ID) error {
	return f.setActive(id, true)
}

func (f *fakeTemplateService) DeactivateTemplate(_ context.Context, id shareddomain.ID) error {
	return f.setActive(id, false)
}

func (f *fakeTemplateService) setActive(id shareddomain.ID, active bool) error {
	template, found := f.templates[id]
	if !found {
		return usecases.ErrTemplateNotFound
	}
	template.IsActive = active
	f.templates[id] = template
	return nil
}

var _ = Describe("TemplateController", func() {
	var (
		controller *maintenanceHTTPAPI.TemplateController
		service    *fakeTemplateService
		router     *http.ServeMux
		recorder   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		service = newFakeTemplateService()
		controller = maintenanceHTTPAPI.NewTemplateController(service)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	Context("createTemplate", func() {
		When("the payload is valid", func() {
			It("should create the template and return 201", func() {
				payload := map[string]any{
					"name":            "Jährliche Sichtprüfung",
					"interval_months": 12,
				}
				body, _ := json.Marshal(payload)
				request := httptest.NewRequest("POST", "/v1/maintenance/templates", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["interval_months"]).To(BeEquivalentTo(12))
				Expect(response["is_active"]).To(BeTrue())
				Expect(service.templates).To(HaveLen(1))
			})
		})

		When("the interval is negative", func() {
			It("should return 400", func() {
				payload := map[string]any{
					"name":            "Kaputte Vorlage",
					"interval_months": -1,
				}
				body, _ := json.Marshal(payload)
				request := httptest.NewRequest("POST", "/v1/maintenance/templates", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("updateTemplate", func() {
		var template maintenanceDomain.Template

		BeforeEach(func() {
			template, _ = maintenanceDomain.NewTemplateBuilder().
				WithName("Halbjährliche Prüfung").
				WithIntervalMonths(6).
				Build()
			service.templates[template.ID] = template
		})

		It("should apply partial updates", func() {
			body, _ := json.Marshal(map[string]any{"interval_months": 3})
			request := httptest.NewRequest("PUT", "/v1/maintenance/templates/"+template.ID.String(), bytes.NewReader(body))

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(service.templates[template.ID].IntervalMonths).To(Equal(3))
			Expect(string(service.templates[template.ID].Name)).To(Equal("Halbjährliche Prüfung"))
		})

		When("the template does not exist", func() {
			It("should return 404", func() {
				body, _ := json.Marshal(map[string]any{"interval_months": 3})
				request := httptest.NewRequest("PUT", "/v1/maintenance/templates/missing-id", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("deactivateTemplate", func() {
		var template maintenanceDomain.Template

		BeforeEach(func() {
			template, _ = maintenanceDomain.NewTemplateBuilder().
				WithName("Pausierte Prüfung").
				WithIntervalMonths(6).
				Build()
			service.templates[template.ID] = template
		})

		It("should mark the template inactive", func() {
			request := httptest.NewRequest("POST", "/v1/maintenance/templates/"+template.ID.String()+"/deactivate", nil)

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
			Expect(service.templates[template.ID].IsActive).To(BeFalse())
		})
	})
})
