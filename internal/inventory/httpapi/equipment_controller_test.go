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

	inventoryDomain "geraetewart-server/internal/inventory/domain"
	inventoryHTTPAPI "geraetewart-server/internal/inventory/httpapi"
	"geraetewart-server/internal/inventory/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeEquipmentService struct {
	equipment map[shareddomain.ID]inventoryDomain.Equipment
	checked   map[shareddomain.ID]time.Time
}

func newFakeEquipmentService() *fakeEquipmentService {
	return &fakeEquipmentService{
		equipment: make(map[shareddomain.ID]inventoryDomain.Equipment),
		checked:   make(map[shareddomain.ID]time.Time),
	}
}

func (f *fakeEquipmentService) CreateEquipment(_ context.Context, equipment inventoryDomain.Equipment) error {
	f.equipment[equipment.ID] = equipment
	return nil
}

func (f *fakeEquipmentService) GetEquipment(_ context.Context, id shareddomain.ID) (inventoryDomain.Equipment, error) {
	equipment, found := f.equipment[id]
	if !found {
		return inventoryDomain.Equipment{}, usecases.ErrEquipmentNotFound
	}
	return equipment, nil
}

func (f *fakeEquipmentService) ListEquipment(_ context.Context, _ usecases.EquipmentFilter, _ usecases.Pagination) ([]inventoryDomain.Equipment, int, error) {
	result := make([]inventoryDomain.Equipment, 0, len(f.equipment))
	for _, equipment := range f.equipment {
		result = append(result, equipment)
	}
	return result, len(result), nil
}

func (f *fakeEquipmentService) UpdateEquipment(_ context.Context, equipment inventoryDomain.Equipment) error {
	f.equipment[equipment.ID] = equipment
	return nil
}

func (f *fakeEquipmentService) DeleteEquipment(_ context.Context, id shareddomain.ID) error {
	if _, found := f.equipment[id]; !found {
		return usecases.ErrEquipmentNotFound
	}
	delete(f.equipment, id)
	return nil
}

func (f *fakeEquipmentService) MarkEquipmentChecked(_ context.Context, id shareddomain.ID, at time.Time) error {
	if _, found := f.equipment[id]; !found {
		return usecases.ErrEquipmentNotFound
	}
	f.checked[id] = at
	return nil
}

var _ = Describe("EquipmentController", func() {
	var (
		controller *inventoryHTTPAPI.EquipmentController
		service    *fakeEquipmentService
		router     *http.ServeMux
		recorder   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		service = newFakeEquipmentService()
		controller = inventoryHTTPAPI.NewEquipmentController(service)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	Context("createEquipment", func() {
		When("the payload is valid", func() {
			It("should create the equipment and return 201", func() {
				payload := map[string]any{
					"name":             "Atemschutzgerät PA 94",
					"inventory_number": "ASG-001",
				}
				body, _ := json.Marshal(payload)
				request := httptest.NewRequest("POST", "/v1/equipment", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["name"]).To(Equal("Atemschutzgerät PA 94"))
				Expect(response["status"]).To(Equal("active"))
				Expect(service.equipment).To(HaveLen(1))
			})
		})

		When("the name is missing", func() {
			It("should return 400", func() {
				body, _ := json.Marshal(map[string]any{"inventory_number": "X-1"})
				request := httptest.NewRequest("POST", "/v1/equipment", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("getEquipment", func() {
		When("the equipment does not exist", func() {
			It("should return 404", func() {
				request := httptest.NewRequest("GET", "/v1/equipment/missing-id", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the equipment exists", func() {
			var equipment inventoryDomain.Equipment

			BeforeEach(func() {
				equipment, _ = inventoryDomain.NewEquipmentBuilder().
					WithName("Schlauch B-20").
					Build()
				service.equipment[equipment.ID] = equipment
			})

			It("should return the equipment", func() {
				request := httptest.NewRequest("GET", "/v1/equipment/"+equipment.ID.String(), nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["id"]).To(Equal(equipment.ID.String()))
			})
		})
	})

	Context("listEquipment", func() {
		BeforeEach(func() {
			for _, name := range []string{"Gerät A", "Gerät B"} {
				equipment, _ := inventoryDomain.NewEquipmentBuilder().WithName(name).Build()
				service.equipment[equipment.ID] = equipment
			}
		})

		It("should return a paginated response", func() {
			request := httptest.NewRequest("GET", "/v1/equipment?page=1&limit=10", nil)

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response struct {
				Data       []map[string]any `json:"data"`
				Pagination struct {
					Total int `json:"total"`
				} `json:"pagination"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(2))
			Expect(response.Pagination.Total).To(Equal(2))
		})
	})

	Context("markChecked", func() {
		var equipment inventoryDomain.Equipment

		BeforeEach(func() {
			equipment, _ = inventoryDomain.NewEquipmentBuilder().
				WithName("Funkgerät").
				Build()
			service.equipment[equipment.ID] = equipment
		})

		When("a timestamp is supplied", func() {
			It("should record the supplied check time", func() {
				checkedAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
				body, _ := json.Marshal(map[string]any{"checked_at": checkedAt})
				request := httptest.NewRequest("POST", "/v1/equipment/"+equipment.ID.String()+"/check", bytes.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(service.checked[equipment.ID]).To(BeTemporally("==", checkedAt))
			})
		})

		When("no body is supplied", func() {
			It("should default the check time to now", func() {
				request := httptest.NewRequest("POST", "/v1/equipment/"+equipment.ID.String()+"/check", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(service.checked[equipment.ID]).To(BeTemporally("~", time.Now(), time.Minute))
			})
		})
	})

	Context("deleteEquipment", func() {
		When("the equipment exists", func() {
			var equipment inventoryDomain.Equipment

			BeforeEach(func() {
				equipment, _ = inventoryDomain.NewEquipmentBuilder().
					WithName("Altes Gerät").
					Build()
				service.equipment[equipment.ID] = equipment
			})

			It("should return 204", func() {
				request := httptest.NewRequest("DELETE", "/v1/equipment/"+equipment.ID.String(), nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(service.equipment).To(BeEmpty())
			})
		})

		When("the equipment does not exist", func() {
			It("should return 404", func() {
				request := httptest.NewRequest("DELETE", "/v1/equipment/missing-id", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
