package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"ollama-scriptgen/internal/contextutil"
	"ollama-scriptgen/internal/param"
	"ollama-scriptgen/internal/script"
	"ollama-scriptgen/internal/service"
)

// Query parameter names accepted by GET /generate.
const (
	ParamPrompt  = "prompt"
	ParamLang    = "lang"
	ParamNoThink = "nothink"
	ParamHead    = "head"
	ParamModel   = "model"
	ParamCtxFile = "ctxfile"
)

// GenerateHandler handles HTTP requests for script generation.
type GenerateHandler struct {
	scriptService service.ScriptService
	logger        *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(scriptService service.ScriptService) *GenerateHandler {
	return &GenerateHandler{
		scriptService: scriptService,
		logger:        slog.Default(),
	}
}

// ParseGenerateRequest maps query parameters to a service request. It does not
// validate; an absent prompt stays empty and an absent lang becomes "sh".
func ParseGenerateRequest(values url.Values) service.GenerateRequest {
	return service.GenerateRequest{
		Prompt:      values.Get(ParamPrompt),
		Lang:        script.Language(param.String(values, ParamLang, string(script.LanguageShell))),
		NoThink:     param.Bool(values, ParamNoThink, false),
		Head:        param.Bool(values, ParamHead, true),
		Model:       values.Get(ParamModel),
		ContextFile: values.Get(ParamCtxFile),
	}
}

// ServeHTTP renders a script and returns it as a downloadable attachment.
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContextOr(ctx, h.logger)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req := ParseGenerateRequest(r.URL.Query())

	resp, err := h.scriptService.GenerateScript(ctx, req)
	if err != nil {
		h.handleServiceError(ctx, w, err, logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, resp.Script); err != nil {
		logger.ErrorContext(ctx, "failed to write script", "error", err)
		return
	}
	logger.InfoContext(ctx, "script generated", "model", resp.Model, "bytes", len(resp.Script))
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func (h *GenerateHandler) handleServiceError(ctx context.Context, w http.ResponseWriter, err error, logger *slog.Logger) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "rejected generate request", "field", validationErr.Field, "error", err)
		writeError(w, http.StatusBadRequest, validationErr.Message)
		return
	}

	if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, service.ErrUnsupportedLanguage) {
		logger.WarnContext(ctx, "rejected generate request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	logger.ErrorContext(ctx, "service error", "error", err)
	writeError(w, http.StatusInternalServerError, "Failed to generate script")
}
