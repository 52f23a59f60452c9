package health

import (
	"net/http"

	"hms/infras/postgres"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Health)
}

// Health reports whether the service and its backing stores are reachable.
// @Summary Health check
// @Description Check connectivity to the database and the cache.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Failure 503 {object} response.Error
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed: postgres unreachable")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("health check failed: redis unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
