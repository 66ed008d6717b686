package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jwang0306/fibdrv/internal/bignum"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
	"github.com/jwang0306/fibdrv/internal/service"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is
// healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleAlgorithms returns the list of available calculation strategies.
// It queries the internal registry and returns the keys as a JSON array.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"algorithms": s.service.ListAlgorithms(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleCalculate processes requests to calculate Fibonacci numbers.
// It parses the query parameters 'k' (the index) and 'algo' (the strategy),
// executes the calculation, and returns the result in JSON format.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	k, algo, err := parseCalculateParams(r)
	if err != nil {
		var parseErr CalculateParseError
		if errors.As(err, &parseErr) {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.service.Calculate(ctx, algo, k)
	duration := time.Since(start)

	if errors.Is(err, service.ErrMaxIndexExceeded) {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Value of 'k' exceeds maximum allowed (%d). This limit prevents resource exhaustion.", s.service.MaxIndex()))
		return
	}

	resp := buildCalculateResponse(k, algo, result, duration, err)
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseCalculateParams extracts and validates the calculation parameters
// from the request.
//
// Returns:
//   - k: The parsed Fibonacci index.
//   - algo: The strategy name (defaults to "doubling-opt" if not specified).
//   - err: A CalculateParseError if validation fails, nil otherwise.
func parseCalculateParams(r *http.Request) (k uint64, algo string, err error) {
	kStr := r.URL.Query().Get("k")
	if kStr == "" {
		return 0, "", CalculateParseError{
			Message:    "Missing 'k' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	k, parseErr := strconv.ParseUint(kStr, 10, 64)
	if parseErr != nil {
		// strconv.ParseUint rejects a negative sign, enforcing non-negative
		// inputs.
		return 0, "", CalculateParseError{
			Message:    "Invalid 'k' parameter: must be a non-negative integer",
			StatusCode: http.StatusBadRequest,
		}
	}

	algo = r.URL.Query().Get("algo")
	if algo == "" {
		algo = fibonacci.StrategyDoublingOpt
	}

	return k, algo, nil
}

// buildCalculateResponse constructs the response struct for a calculation.
func buildCalculateResponse(k uint64, algo string, result bignum.BigDecimal, duration time.Duration, err error) Response {
	resp := Response{
		K:         k,
		Duration:  duration.String(),
		Algorithm: algo,
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Result = result.String()
		resp.Digits = result.NumDigits()
	}

	return resp
}

// writeJSONResponse writes a JSON response with the correct content type.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse writes a standardized error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
