package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/bet-hub/internal/platform/logging"
	"github.com/riskibarqy/bet-hub/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	importService     *usecase.ImportService
	settlementService *usecase.SettlementService
	leagueService     *usecase.LeagueService
	betService        *usecase.BetService
	logger            *logging.Logger
	validator         *validator.Validate
	now               func() time.Time
}

func NewHandler(
	importService *usecase.ImportService,
	settlementService *usecase.SettlementService,
	leagueService *usecase.LeagueService,
	betService *usecase.BetService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		importService:     importService,
		settlementService: settlementService,
		leagueService:     leagueService,
		betService:        betService,
		logger:            logger,
		validator:         validator.New(),
		now:               time.Now,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, healthDTO{
		OK:   true,
		Time: h.now().UTC().Format(time.RFC3339Nano),
	})
}

// decodeJSON reads a single JSON object and rejects unknown fields.
func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := h.decodeJSON(r, dst); err != nil {
		return err
	}
	return h.validateRequest(r.Context(), dst)
}

// fail logs at Warn for client errors and Error for server errors, then
// writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

// weekQuery parses ?week=. A missing parameter is 0, meaning every week.
func weekQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("week"))
	if raw == "" {
		return 0, nil
	}
	week, err := strconv.Atoi(raw)
	if err != nil || week < 0 {
		return 0, fmt.Errorf("%w: week must be a non-negative integer", usecase.ErrInvalidInput)
	}
	return week, nil
}

func pathValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}
