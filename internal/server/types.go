package server

// Response is the JSON payload returned by the /calculate endpoint.
type Response struct {
	// K is the Fibonacci index that was calculated.
	K uint64 `json:"k"`
	// Result is the decimal rendering of F(k), most-significant digit first.
	// Empty when an error occurred.
	Result string `json:"result,omitempty"`
	// Digits is the number of decimal digits in the result.
	Digits int `json:"digits,omitempty"`
	// Duration is the human-readable calculation time.
	Duration string `json:"duration"`
	// Algorithm is the strategy that produced the result.
	Algorithm string `json:"algorithm"`
	// Error holds the failure message, if any.
	Error string `json:"error,omitempty"`
}

// ErrorResponse is the standardized JSON error payload.
type ErrorResponse struct {
	// Error is the HTTP status text.
	Error string `json:"error"`
	// Message is the human-readable explanation.
	Message string `json:"message"`
}

// CalculateParseError carries a validation failure for /calculate parameters
// together with the HTTP status it should map to.
type CalculateParseError struct {
	Message    string
	StatusCode int
}

// Error returns the validation message.
func (e CalculateParseError) Error() string { return e.Message }
