package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"fyyur/internal/config"
	"fyyur/internal/http/middleware"
	"fyyur/internal/httpapi"
	"fyyur/web"
)

func newHTTPHandler(cfg *config.Config, svc services, logger zerolog.Logger) (http.Handler, error) {
	views, err := web.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	api := httpapi.New(svc.venues, svc.artists, svc.shows, views, logger)

	return middleware.Chain(api.Routes(),
		middleware.RequestLogging(),
		middleware.Recovery(api.ServerError),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	), nil
}
