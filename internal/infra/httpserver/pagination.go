package httpserver

import (
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 10
	_maxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

type PaginatedResponse struct {
	Data       any `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: _defaultPage, Limit: _defaultLimit}
}

// ExtractPaginationParams reads page and limit from the query string,
// falling back to defaults for missing or out-of-range values.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			params.Page = page
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit >= 1 && limit <= _maxLimit {
			params.Limit = limit
		}
	}

	return params
}

func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	response := PaginatedResponse{Data: data}
	response.Pagination.Page = params.Page
	response.Pagination.Limit = params.Limit
	response.Pagination.Total = total
	response.Pagination.TotalPages = (total + params.Limit - 1) / params.Limit

	ReplyJSONResponse(w, statusCode, response)
}
