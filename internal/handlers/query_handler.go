package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "github.com/arjaygg/analyze-fin-sub001/internal/errors"

	"github.com/arjaygg/analyze-fin-sub001/internal/config"
	"github.com/arjaygg/analyze-fin-sub001/internal/dto"
	"github.com/arjaygg/analyze-fin-sub001/internal/query"
	"github.com/arjaygg/analyze-fin-sub001/internal/repositories"
	"github.com/arjaygg/analyze-fin-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

type QueryHandler struct {
	spendingService services.SpendingServiceInterface
	queryConfig     *config.QueryConfig
}

func NewQueryHandler(
	spendingService services.SpendingServiceInterface,
	queryConfig *config.QueryConfig,
) *QueryHandler {
	return &QueryHandler{
		spendingService: spendingService,
		queryConfig:     queryConfig,
	}
}

// AnswerQuery answers a natural-language question about spending
//
// Method: POST /api/v1/query
//
// Request body:
//   - question: Free-form question text (required)
//   - now: RFC 3339 anchor for relative dates (optional)
//
// Success Response: 200 OK with the structured answer
//
// Error Responses:
//   - 400: Empty question, question too long, invalid anchor timestamp
//   - 503: Transaction store unavailable
//   - 500: Internal server error
func (h *QueryHandler) AnswerQuery(c echo.Context) error {
	var req dto.QueryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.QueryEmptyQuestion)
	}

	if len(req.Question) > h.queryConfig.MaxQuestionLength {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails("question exceeds maximum length"))
	}

	now := time.Now()
	if req.Now != "" {
		parsed, err := time.Parse(time.RFC3339, req.Now)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate,
				apierrors.WithDetails("now must be RFC 3339"))
		}
		now = parsed
	}

	answer, err := h.spendingService.AnswerQuestion(req.Question, now)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.QueryResponse{
			Question: req.Question,
			Answer:   answer,
		},
	})
}

func (h *QueryHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyQuestion):
		return SendError(c, apierrors.QueryEmptyQuestion)
	case errors.Is(err, query.ErrInvalidFilter):
		return SendError(c, apierrors.QueryInvalidFilter, apierrors.WithDetails(err.Error()))
	case errors.Is(err, repositories.ErrStoreUnavailable):
		return SendError(c, apierrors.StoreUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
