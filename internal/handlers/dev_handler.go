package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/arjaygg/analyze-fin-sub001/internal/errors"

	"github.com/arjaygg/analyze-fin-sub001/internal/config"
	"github.com/arjaygg/analyze-fin-sub001/internal/dto"
	"github.com/arjaygg/analyze-fin-sub001/internal/repositories"
	"github.com/arjaygg/analyze-fin-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedDays  = 90
	defaultSeedCount = 300
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
	cfg             *config.Config
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.TransactionGeneratorInterface,
	cfg *config.Config,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
		cfg:             cfg,
	}
}

// SeedTransactions generates realistic sample transaction history
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Request body:
//   - days: Days of history to generate (default: 90)
//   - count: Number of transactions to generate (default: 300)
//   - until: RFC 3339 end of the history window (optional, defaults to now)
//   - category: Keep only transactions in this canonical category (optional)
//
// Error Responses:
//   - 400: Invalid parameters
//   - 403: Not a development environment
//   - 500: Internal server error
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return echo.NewHTTPError(http.StatusForbidden, "seeding is only available in development")
	}

	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if req.Days == 0 {
		req.Days = defaultSeedDays
	}
	if req.Count == 0 {
		req.Count = defaultSeedCount
	}

	until := time.Now()
	if req.Until != "" {
		parsed, err := time.Parse(time.RFC3339, req.Until)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate,
				apierrors.WithDetails("until must be RFC 3339"))
		}
		until = parsed
	}

	transactions := h.generator.GenerateHistory(until, req.Days, req.Count)
	if req.Category != "" {
		kept := transactions[:0]
		for _, t := range transactions {
			if t.Category == req.Category {
				kept = append(kept, t)
			}
		}
		transactions = kept
	}
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.SeedResponse{Created: len(transactions)},
		Message: "sample transactions created",
	})
}
