package httpserver

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		ginkgo.When("using metrics middleware", func() {
			ginkgo.It("should collect metrics correctly", func() {
				reader := metric.NewManualReader()
				provider := metric.NewMeterProvider(metric.WithReader(reader))
				otel.SetMeterProvider(provider)

				ResetMetricsForTesting()

				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(10 * time.Millisecond)
					w.WriteHeader(http.StatusOK)
					w.Write([]byte("test response"))
				})

				middleware := MetricsMiddleware()
				handler := middleware(testHandler)

				req := httptest.NewRequest("GET", "/test/endpoint", nil)
				w := httptest.NewRecorder()

				handler.ServeHTTP(w, req)

				gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
				gomega.Expect(w.Body.String()).To(gomega.Equal("test response"))
				gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())
			})
		})
	})

	ginkgo.Context("NormalizeEndpoint", func() {
		ginkgo.When("normalizing endpoint from path", func() {
			ginkgo.It("should handle root path", func() {
				gomega.Expect(normalizeEndpoint("/")).To(gomega.Equal("root"))
			})

			ginkgo.It("should keep plain paths untouched", func() {
				gomega.Expect(normalizeEndpoint("/v1/equipment")).To(gomega.Equal("/v1/equipment"))
			})

			ginkgo.It("should replace UUIDs with a placeholder", func() {
				path := "/v1/equipment/7e3c1f9a-12f5-4b02-a1c8-2b5a6f08d9e4"
				gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal("/v1/equipment/_id"))
			})
		})
	})
})
