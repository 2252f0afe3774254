package api

// VoicesQuery represents the query parameters of the voices endpoint.
// Page and PageSize are pointers so absent parameters can fall back to
// their defaults instead of being mistaken for zero values.
type VoicesQuery struct {
	Engine      string `query:"engine"`
	LangCode    string `query:"lang_code"`
	LangName    string `query:"lang_name"`
	Name        string `query:"name"`
	Gender      string `query:"gender"`
	Page        *int   `query:"page"`
	PageSize    *int   `query:"page_size"`
	IgnoreCache bool   `query:"ignore_cache"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
