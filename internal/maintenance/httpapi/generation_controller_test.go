package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	maintenanceHTTPAPI "geraetewart-server/internal/maintenance/httpapi"
	"geraetewart-server/internal/maintenance/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeGenerationService struct {
	report      usecases.RunReport
	generateErr error
	runs        []maintenanceDomain.RunLog

	lastMode usecases.GenerationMode
	calls    int
}

func (f *fakeGenerationService) Generate(_ context.Context, mode usecases.GenerationMode) (usecases.RunReport, error) {
	f.calls++
	f.lastMode = mode
	if f.generateErr != nil {
		return usecases.RunReport{}, f.generateErr
	}
	report := f.report
	report.Mode = mode
	return report, nil
}

func (f *fakeGenerationService) ListRuns(_ context.Context, limit int) ([]maintenanceDomain.RunLog, error) {
	if limit < len(f.runs) {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

var _ = Describe("GenerationController", func() {
	var (
		controller *maintenanceHTTPAPI.GenerationController
		service    *fakeGenerationService
		router     *http.ServeMux
		recorder   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		service = &fakeGenerationService{
			report: usecases.RunReport{
				Created:   3,
				Skipped:   2,
				Errors:    0,
				Timestamp: time.Date(2024, 6, 1, 4, 0, 0, 0, time.UTC),
			},
		}
		controller = maintenanceHTTPAPI.NewGenerationController(service)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	Context("generate", func() {
		When("no mode is given", func() {
			It("should run in next_only mode and return the report", func() {
				request := httptest.NewRequest("POST", "/v1/maintenance/generate", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(service.lastMode).To(Equal(usecases.GenerationModeNextOnly))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["created"]).To(BeEquivalentTo(3))
				Expect(response["skipped"]).To(BeEquivalentTo(2))
				Expect(response["errors"]).To(BeEquivalentTo(0))
			})
		})

		When("all_missing is requested", func() {
			It("should pass the mode through", func() {
				request := httptest.NewRequest("POST", "/v1/maintenance/generate?mode=all_missing", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(service.lastMode).To(Equal(usecases.GenerationModeAllMissing))
			})
		})

		When("the mode is unknown", func() {
			It("should return 400 without calling the service", func() {
				request := httptest.NewRequest("POST", "/v1/maintenance/generate?mode=yearly", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(service.calls).To(BeZero())
			})
		})

		When("the run fails", func() {
			BeforeEach(func() {
				service.generateErr = errors.New("database down")
			})

			It("should return 500 with a JSON error body", func() {
				request := httptest.NewRequest("POST", "/v1/maintenance/generate", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))

				var response map[string]string
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["error"]).To(ContainSubstring("database down"))
			})
		})
	})

	Context("runJob", func() {
		It("should always run in all_missing mode", func() {
			request := httptest.NewRequest("POST", "/v1/jobs/maintenance-generation", nil)

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(service.lastMode).To(Equal(usecases.GenerationModeAllMissing))
		})
	})

	Context("listRuns", func() {
		BeforeEach(func() {
			run, err := maintenanceDomain.NewRunLog(usecases.JobNameMaintenanceGeneration)
			Expect(err).ToNot(HaveOccurred())
			run.Succeed(`{"created":3}`)
			service.runs = []maintenanceDomain.RunLog{run}
		})

		It("should return the recent runs", func() {
			request := httptest.NewRequest("GET", "/v1/maintenance/runs", nil)

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response []map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveLen(1))
			Expect(response[0]["job_name"]).To(Equal("maintenance_generation"))
			Expect(response[0]["status"]).To(Equal("success"))
		})
	})
})
