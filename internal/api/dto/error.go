package dto

// ErrorResponse is the error body returned by every failing endpoint. Detail
// names the offending ticker where one applies.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
