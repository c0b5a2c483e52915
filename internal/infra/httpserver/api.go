package httpserver

import "net/http"

// Controller registers its routes on the server mux.
type Controller interface {
	AddRoutes(*http.ServeMux)
}
