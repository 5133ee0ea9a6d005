package httpapi

import (
	"net/http"

	"github.com/riskibarqy/bet-hub/internal/platform/logging"
)

// NewRouter wires every route behind tracing, request logging, CORS and
// panic recovery. metricsHandler may be nil to leave /metrics unrouted.
func NewRouter(
	handler *Handler,
	metricsHandler http.Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metricsHandler)
	registerImportRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)
	registerBetRoutes(mux, handler)
	registerSettlementRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}
