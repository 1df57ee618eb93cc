package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"urlhealth/internal/domain"
	"urlhealth/internal/service"
	"urlhealth/internal/validation"
)

var (
	errInvalidBody     = map[string]string{"error": "invalid request body"}
	errURLsRequired    = map[string]string{"error": "urls is required"}
	errBatchIDRequired = map[string]string{"error": "batch_id is required"}
	errBatchIDInvalid  = map[string]string{"error": "invalid batch_id"}
	errBatchNotFound   = map[string]string{"error": "Batch not found"}
	errSubmitFailed    = map[string]string{"error": "failed to submit urls"}
	errStatusFailed    = map[string]string{"error": "failed to get batch status"}
	errResultsFailed   = map[string]string{"error": "failed to get batch results"}
	errInvalidURL      = map[string]string{"error": "invalid url format"}
	errUnsafeURL       = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong      = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP       = map[string]string{"error": "private ip addresses not allowed"}
	errBatchTooLarge   = map[string]string{"error": "batch size exceeds maximum"}
	respHealthOK       = map[string]string{"status": "ok"}
)

type Handler struct {
	batches   BatchService
	validator URLValidator
	logger    *slog.Logger
}

func New(batches BatchService, validator URLValidator, logger *slog.Logger) *Handler {
	return &Handler{
		batches:   batches,
		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/check_urls", h.CheckURLs)
	api.GET("/batch_status", h.BatchStatus)
	api.GET("/batch_results", h.BatchResults)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// CheckURLs accepts a batch of URLs for asynchronous checking and answers
// 202 immediately; results are polled via BatchStatus and BatchResults.
func (h *Handler) CheckURLs(c echo.Context) error {
	var req domain.CheckURLsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateBatch(req.URLs); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.batches.Submit(c.Request().Context(), req.URLs)
	if err != nil {
		h.logger.Error("failed to submit batch", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errSubmitFailed)
	}

	return c.JSON(http.StatusAccepted, resp)
}

func (h *Handler) BatchStatus(c echo.Context) error {
	raw := c.QueryParam("batch_id")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, errBatchIDRequired)
	}
	batchID, err := uuid.Parse(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errBatchIDInvalid)
	}

	stats, err := h.batches.Status(c.Request().Context(), batchID)
	if err != nil {
		if errors.Is(err, service.ErrBatchNotFound) {
			return c.JSON(http.StatusNotFound, errBatchNotFound)
		}
		h.logger.Error("failed to get batch status", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errStatusFailed)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) BatchResults(c echo.Context) error {
	raw := c.QueryParam("batch_id")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, errBatchIDRequired)
	}
	batchID, err := uuid.Parse(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errBatchIDInvalid)
	}

	checks, err := h.batches.Results(c.Request().Context(), batchID)
	if err != nil {
		if errors.Is(err, service.ErrBatchNotFound) {
			return c.JSON(http.StatusNotFound, errBatchNotFound)
		}
		h.logger.Error("failed to get batch results", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errResultsFailed)
	}

	return c.JSON(http.StatusOK, checks)
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyBatch):
		return c.JSON(http.StatusBadRequest, errURLsRequired)
	case errors.Is(err, validation.ErrBatchTooLarge):
		return c.JSON(http.StatusBadRequest, errBatchTooLarge)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return c.JSON(http.StatusBadRequest, errPrivateIP)
	default:
		var batchErr *validation.BatchValidationError
		if errors.As(err, &batchErr) {
			return c.JSON(http.StatusBadRequest, formatBatchErrors(batchErr))
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func formatBatchErrors(err *validation.BatchValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}
