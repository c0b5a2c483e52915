package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp *trace.TracerProvider
	)

	ginkgo.BeforeEach(func() {
		tp = trace.NewTracerProvider(
			trace.WithSpanProcessor(tracetest.NewSpanRecorder()),
		)
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.When("using tracing middleware", func() {
			ginkgo.It("should add span to request context", func() {
				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					span := GetSpanFromContext(r)
					gomega.Expect(span).NotTo(gomega.BeNil())

					spanCtx := span.SpanContext()
					gomega.Expect(spanCtx.HasSpanID()).To(gomega.BeTrue())

					w.WriteHeader(http.StatusOK)
				})

				middleware := createTracingMiddleware()
				wrappedHandler := middleware(testHandler)

				req := httptest.NewRequest("GET", "/test", nil)
				rec := httptest.NewRecorder()

				wrappedHandler.ServeHTTP(rec, req)

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			})
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.When("getting span from context", func() {
			ginkgo.It("should return a span even when no span is in context", func() {
				req := httptest.NewRequest("GET", "/test", nil)
				span := GetSpanFromContext(req)
				gomega.Expect(span).NotTo(gomega.BeNil())
			})
		})
	})
})
