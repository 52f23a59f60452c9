package handler

import (
	"net/http"

	"hms/config"
	"hms/di"
	"hms/shared/logger"
)

// Handler is the serverless entrypoint. Each cold start wires the full
// service graph once and serves requests straight off the router.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	di.InitializeService().Handler().ServeHTTP(w, r)
}
