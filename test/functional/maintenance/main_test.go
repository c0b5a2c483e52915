package maintenance

import (
	"fmt"
	"os"
	"testing"

	"geraetewart-server/test/functional/maintenance/steps"

	"github.com/cucumber/godog"
	"github.com/spf13/pflag"
)

var opts = godog.Options{
	Paths: []string{"features"},
}

func init() {
	godog.BindCommandLineFlags("godog.", &opts)
}

func TestMain(m *testing.M) {
	pflag.Parse()

	if os.Getenv("FUNCTIONAL_TESTS") == "" {
		fmt.Println("FUNCTIONAL_TESTS not set - skipping functional suite")
		os.Exit(0)
	}

	var apiURL string
	if externalURL := os.Getenv("EXTERNAL_API_URL"); externalURL != "" {
		apiURL = externalURL
		fmt.Printf("🌍 Running tests against external API: %s\n", apiURL)
	} else {
		apiURL = "http://127.0.0.1:3000"
		fmt.Printf("🏠 Running tests against local server: %s\n", apiURL)
	}

	featureContext := steps.NewFeatureContext()

	status := godog.TestSuite{
		Name:                "maintenance",
		ScenarioInitializer: featureContext.RegisterSteps,
		Options:             &opts,
	}.Run()

	if st := m.Run(); st > status {
		status = st
	}

	os.Exit(status)
}
