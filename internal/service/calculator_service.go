// Package service provides the application-level calculation service sitting
// between the transports (HTTP server, CLI, device console) and the strategy
// registry. It enforces the index ceiling and converts application
// configuration into calculation options.
package service

import (
	"context"
	"errors"

	"github.com/jwang0306/fibdrv/internal/bignum"
	"github.com/jwang0306/fibdrv/internal/config"
	"github.com/jwang0306/fibdrv/internal/fibonacci"
)

//go:generate mockgen -source=calculator_service.go -destination=mocks/mock_service.go -package=mocks

// ErrMaxIndexExceeded is returned when the requested index is above the
// service's configured ceiling.
var ErrMaxIndexExceeded = errors.New("maximum index exceeded")

// Service is the calculation interface consumed by the transports.
type Service interface {
	// Calculate computes F(k) with the named strategy.
	Calculate(ctx context.Context, algoName string, k uint64) (bignum.BigDecimal, error)
	// ListAlgorithms returns the registered strategy names, sorted.
	ListAlgorithms() []string
	// MaxIndex returns the largest index the service accepts (0 = unlimited).
	MaxIndex() uint64
}

// CalculatorService is the default Service implementation, dispatching into
// a CalculatorFactory.
type CalculatorService struct {
	factory  fibonacci.CalculatorFactory
	cfg      config.AppConfig
	maxIndex uint64
}

// NewCalculatorService creates a CalculatorService.
//
// Parameters:
//   - factory: The strategy factory to dispatch into.
//   - cfg: The application configuration (supplies calculation options).
//   - maxIndex: The largest accepted index; 0 disables the ceiling.
//
// Returns:
//   - *CalculatorService: The configured service.
func NewCalculatorService(factory fibonacci.CalculatorFactory, cfg config.AppConfig, maxIndex uint64) *CalculatorService {
	return &CalculatorService{
		factory:  factory,
		cfg:      cfg,
		maxIndex: maxIndex,
	}
}

// Calculate computes F(k) with the named strategy. The index is checked
// against the ceiling before any work is dispatched.
//
// Returns:
//   - bignum.BigDecimal: The exact value of F(k).
//   - error: ErrMaxIndexExceeded, an unknown-strategy error, or a strategy
//     failure (including context cancellation).
func (s *CalculatorService) Calculate(ctx context.Context, algoName string, k uint64) (bignum.BigDecimal, error) {
	if s.maxIndex > 0 && k > s.maxIndex {
		return bignum.BigDecimal{}, ErrMaxIndexExceeded
	}

	calc, err := s.factory.Get(algoName)
	if err != nil {
		return bignum.BigDecimal{}, err
	}

	return calc.Calculate(ctx, nil, 0, k, s.cfg.ToCalculationOptions())
}

// ListAlgorithms returns the registered strategy names, sorted.
func (s *CalculatorService) ListAlgorithms() []string {
	return s.factory.List()
}

// MaxIndex returns the service's index ceiling (0 = unlimited).
func (s *CalculatorService) MaxIndex() uint64 {
	return s.maxIndex
}
