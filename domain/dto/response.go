package dto

// Res is the generic response envelope.
type Res struct {
	ResponseCode    string      `json:"response_code"`
	ResponseMessage string      `json:"response_message"`
	Data            interface{} `json:"data,omitempty"`
}

// Error codes used by the HTTP layer. CONFIG_ERROR marks the blocking
// configuration-error state; NOT_FOUND is always rendered explicitly.
const (
	CodeOK          = "200"
	CodeBadRequest  = "400"
	CodeUnauth      = "401"
	CodeForbidden   = "403"
	CodeNotFound    = "404"
	CodeServerError = "500"
	CodeConfigError = "503"
)
