package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"geraetewart-server/internal/infra/utils"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	maintenanceHTTPAPI "geraetewart-server/internal/maintenance/httpapi"
	"geraetewart-server/internal/maintenance/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeRecordService struct {
	records map[shareddomain.ID]maintenanceDomain.Record
}

func newFakeRecordService() *fakeRecordService {
	return &fakeRecordService{records: make(map[shareddomain.ID]maintenanceDomain.Record)}
}

func (f *fakeRecordService) CreateRecord(_ context.Context, record maintenanceDomain.Record) error {
	for _, existing := range f.records {
		if existing.EquipmentID == record.EquipmentID &&
			existing.TemplateID == record.TemplateID &&
			existing.DueDay() == record.DueDay() {
			return usecases.ErrRecordDuplicate
		}
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordService) GetRecord(_ context.Context, id shareddomain.ID) (maintenanceDomain.Record, error) {
	record, found := f.records[id]
	if !found {
		return maintenanceDomain.Record{}, usecases.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeRecordService) ListRecords(_ context.Context, filter usecases.RecordFilter, _ usecases.Pagination) ([]maintenanceDomain.Record, int, error) {
	result := make([]maintenanceDomain.Record, 0, len(f.records))
	for _, record := range f.records {
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		result = append(result, record)
	}
	return result, len(result), nil
}

func (f *fakeRecordService) UpdateRecord(_ context.Context, record maintenanceDomain.Record) error {
	if _, found := f.records[record.ID]; !found {
		return usecases.ErrRecordNotFound
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordService) StartRecord(_ context.Context, id shareddomain.ID) error {
	record, found := f.records[id]
	if !found {
		return usecases.ErrRecordNotFound
	}
	record.Start()
	f.records[id] = record
	return nil
}

func (f *fakeRecordService) CompleteRecord(_ context.Context, id shareddomain.ID, performedBy *shareddomain.ID, at time.Time) error {
	record, found := f.records[id]
	if !found {
		return usecases.ErrRecordNotFound
	}
	record.Complete(performedBy, at)
	f.records[id] = record
	return nil
}

func (f *fakeRecordService) DeleteRecord(_ context.Context, id shareddomain.ID) error {
	if _, found := f.records[id]; !found {
		return usecases.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

var _ = Describe("RecordController", func() {
	var (
		controller *maintenanceHTTPAPI.RecordController
		service    *fakeRecordService
		router     *http.ServeMux
		recorder   *httptest.ResponseRecorder
	)

	newStoredRecord := func(dueDate time.Time) maintenanceDomain.Record {
		record, err := maintenanceDomain.NewRecordBuilder().
			WithEquipmentID(shareddomain.ID(utils.GenerateUUID())).
			WithTemplateID(shareddomain.ID(utils.GenerateUUID())).
			WithDueDate(dueDate).
			Build()
		Expect(err).ToNot(HaveOccurred())
		service.records[record.ID] = record
		return record
	}

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		service = newFakeRecordService()
		controller = maintenanceHTTPAPI.NewRecordController(service)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	Context("createRecord", func() {
		When("the payload is valid", func() {
			It("should create a pending record and return 201", func() {
				payload := map[string]any{
					"equipment_id": utils.GenerateUUID(),
					"template_id":  utils.GenerateUUID(),
					"due_date":     time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
				}
				body, _ := json.Marshal(payload)
				request := httptest.NewRequest("POST", "/v1/maintenance/records", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["status"]).To(Equal("pending"))
				Expect(service.records).To(HaveLen(1))
			})
		})

		When("a record for the same day already exists", func() {
			It("should return 409 and keep the original", func() {
				dueDate := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
				existing := newStoredRecord(dueDate)

				payload := map[string]any{
					"equipment_id": existing.EquipmentID.String(),
					"template_id":  existing.TemplateID.String(),
					"due_date":     dueDate.Add(4 * time.Hour).Format(time.RFC3339),
				}
				body, _ := json.Marshal(payload)
				request := httptest.NewRequest("POST", "/v1/maintenance/records", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
				Expect(service.records).To(HaveLen(1))
			})
		})

		When("the equipment reference is missing", func() {
			It("should return 400", func() {
				payload := map[string]any{
					"template_id": utils.GenerateUUID(),
					"due_date":    time.Now().Format(time.RFC3339),
				}
				body, _ := json.Marshal(payload)
				request := httptest.NewRequest("POST", "/v1/maintenance/records", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(service.records).To(BeEmpty())
			})
		})
	})

	Context("getRecord", func() {
		When("the record does not exist", func() {
			It("should return 404", func() {
				request := httptest.NewRequest("GET", "/v1/maintenance/records/"+utils.GenerateUUID(), nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("listRecords", func() {
		When("filtering by status", func() {
			It("should only return matching records", func() {
				pending := newStoredRecord(time.Now().AddDate(0, 1, 0))
				completed := newStoredRecord(time.Now().AddDate(0, 2, 0))
				completed.Complete(nil, time.Now())
				service.records[completed.ID] = completed

				request := httptest.NewRequest("GET", "/v1/maintenance/records?status=pending", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response struct {
					Data []map[string]any `json:"data"`
				}
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Data).To(HaveLen(1))
				Expect(response.Data[0]["id"]).To(Equal(pending.ID.String()))
			})
		})

		When("due_before is malformed", func() {
			It("should return 400", func() {
				request := httptest.NewRequest("GET", "/v1/maintenance/records?due_before=gestern", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("startRecord", func() {
		When("the record exists", func() {
			It("should move it to in_progress and return 204", func() {
				record := newStoredRecord(time.Now().AddDate(0, 1, 0))

				request := httptest.NewRequest("POST", "/v1/maintenance/records/"+record.ID.String()+"/start", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(service.records[record.ID].Status).To(Equal(maintenanceDomain.RecordStatusInProgress))
			})
		})
	})

	Context("completeRecord", func() {
		When("a performer is supplied", func() {
			It("should complete the record with the performer and return 204", func() {
				record := newStoredRecord(time.Now().AddDate(0, 1, 0))
				performer := utils.GenerateUUID()

				payload := map[string]any{"performed_by_id": performer}
				body, _ := json.Marshal(payload)
				request := httptest.NewRequest("POST", "/v1/maintenance/records/"+record.ID.String()+"/complete", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))

				stored := service.records[record.ID]
				Expect(stored.Status).To(Equal(maintenanceDomain.RecordStatusCompleted))
				Expect(stored.PerformedByID).ToNot(BeNil())
				Expect(stored.PerformedByID.String()).To(Equal(performer))
				Expect(stored.PerformedAt).ToNot(BeNil())
			})
		})

		When("the record does not exist", func() {
			It("should return 404", func() {
				request := httptest.NewRequest("POST", "/v1/maintenance/records/"+utils.GenerateUUID()+"/complete", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
