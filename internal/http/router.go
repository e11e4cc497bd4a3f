package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ollama-scriptgen/internal/handlers"
	"ollama-scriptgen/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ScriptService service.ScriptService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) (http.Handler, error) {
	if deps == nil || deps.ScriptService == nil {
		return nil, fmt.Errorf("router requires a script service")
	}

	docsHandler, err := handlers.NewDocsHandler(deps.ScriptService.DefaultModel())
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	r.Method(http.MethodGet, "/", handlers.NewInfoHandler(deps.ScriptService.DefaultModel()))
	r.Method(http.MethodGet, "/generate", handlers.NewGenerateHandler(deps.ScriptService))
	r.Method(http.MethodGet, "/docs", docsHandler)
	r.Method(http.MethodGet, "/health", handlers.NewHealthHandler())

	return r, nil
}
