package steps

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"geraetewart-server/test/functional/maintenance/driver"

	"github.com/cucumber/godog"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total int `json:"total"`
		Page  int `json:"page"`
		Limit int `json:"limit"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	equipmentID  string
	templateID   string
}

func NewFeatureContext() *FeatureContext {
	baseURL := "http://127.0.0.1:3000"

	if externalURL := os.Getenv("EXTERNAL_API_URL"); externalURL != "" {
		baseURL = externalURL
	}

	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^equipment exists with name "([^"]*)" last checked on "([^"]*)"$`, fc.equipmentExistsWithNameLastCheckedOn)
	ctx.Given(`^an active maintenance template "([^"]*)" with an interval of (\d+) months$`, fc.anActiveTemplateWithInterval)
	ctx.When(`^I trigger generation in "([^"]*)" mode$`, fc.iTriggerGenerationInMode)
	ctx.When(`^I run the generation job endpoint$`, fc.iRunTheGenerationJobEndpoint)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the run report should show (\d+) created records$`, fc.theRunReportShouldShowCreatedRecords)
	ctx.Then(`^the equipment should have pending maintenance records$`, fc.theEquipmentShouldHavePendingRecords)
}

func (fc *FeatureContext) equipmentExistsWithNameLastCheckedOn(name, lastChecked string) error {
	resp, err := fc.apiDriver.CreateEquipment(name, "FT-"+name, lastChecked)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected 201 creating equipment, got %d", resp.StatusCode)
	}

	var data map[string]any
	if err := fc.decodeBody(resp.Body, &data); err != nil {
		return err
	}
	fc.equipmentID, _ = data["id"].(string)
	return nil
}

func (fc *FeatureContext) anActiveTemplateWithInterval(name string, months int) error {
	resp, err := fc.apiDriver.CreateTemplate(name, months)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("expected 201 creating template, got %d", resp.StatusCode)
	}

	var data map[string]any
	if err := fc.decodeBody(resp.Body, &data); err != nil {
		return err
	}
	fc.templateID, _ = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iTriggerGenerationInMode(mode string) error {
	resp, err := fc.apiDriver.Generate(mode)
	if err != nil {
		return err
	}
	fc.response = resp

	if resp.StatusCode == http.StatusOK {
		var data map[string]any
		if err := fc.decodeBody(resp.Body, &data); err != nil {
			return err
		}
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iRunTheGenerationJobEndpoint() error {
	resp, err := fc.apiDriver.RunGenerationJob()
	if err != nil {
		return err
	}
	fc.response = resp

	if resp.StatusCode == http.StatusOK {
		var data map[string]any
		if err := fc.decodeBody(resp.Body, &data); err != nil {
			return err
		}
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	if fc.response == nil {
		return fmt.Errorf("no response captured")
	}
	if fc.response.StatusCode != code {
		return fmt.Errorf("expected status %d, got %d", code, fc.response.StatusCode)
	}
	return nil
}

func (fc *FeatureContext) theRunReportShouldShowCreatedRecords(expected int) error {
	created, ok := fc.responseData["created"].(float64)
	if !ok {
		return fmt.Errorf("run report has no created count: %v", fc.responseData)
	}
	if int(created) != expected {
		return fmt.Errorf("expected %d created records, got %d", expected, int(created))
	}
	return nil
}

func (fc *FeatureContext) theEquipmentShouldHavePendingRecords() error {
	resp, err := fc.apiDriver.ListRecords(fc.equipmentID)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected 200 listing records, got %d", resp.StatusCode)
	}

	var list PaginatedResponse[map[string]any]
	if err := fc.decodeBody(resp.Body, &list); err != nil {
		return err
	}
	if list.Pagination.Total == 0 {
		return fmt.Errorf("expected pending records for equipment %s, found none", fc.equipmentID)
	}
	for _, record := range list.Data {
		if record["status"] == "pending" {
			return nil
		}
	}
	return fmt.Errorf("no pending record found for equipment %s", fc.equipmentID)
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}
