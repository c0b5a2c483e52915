package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateEquipment(name, inventoryNumber, lastCheckDate string) (*http.Response, error) {
	payload := map[string]any{
		"name":             name,
		"inventory_number": inventoryNumber,
	}
	if lastCheckDate != "" {
		payload["last_check_date"] = lastCheckDate
	}
	reqBody, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/equipment", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) CreateTemplate(name string, intervalMonths int) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":            name,
		"interval_months": intervalMonths,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/maintenance/templates", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) Generate(mode string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/maintenance/generate", d.baseURL)
	if mode != "" {
		url = fmt.Sprintf("%s?mode=%s", url, mode)
	}
	return d.client.Post(url, "application/json", nil)
}

func (d *APIDriver) RunGenerationJob() (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/jobs/maintenance-generation", d.baseURL), "application/json", nil)
}

func (d *APIDriver) ListRecords(equipmentID string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/maintenance/records", d.baseURL)
	if equipmentID != "" {
		url = fmt.Sprintf("%s?equipment_id=%s", url, equipmentID)
	}
	return d.client.Get(url)
}

func (d *APIDriver) ListRuns() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/maintenance/runs", d.baseURL))
}
