package response

type ErrorResponse struct {
	Error string `json:"error"`
}

// ProtectedErrorResponse is returned when a protected form rejects the caller.
type ProtectedErrorResponse struct {
	Error     string `json:"error"`
	Protected bool   `json:"protected"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
