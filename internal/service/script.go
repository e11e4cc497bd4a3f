package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_script_service.go -package=mocks -mock_names=ScriptService=MockScriptService ollama-scriptgen/internal/service ScriptService

import (
	"context"
	"fmt"
	"log/slog"

	"ollama-scriptgen/internal/contextutil"
	"ollama-scriptgen/internal/script"
)

// GenerateRequest holds the parsed query parameters of a generate call.
type GenerateRequest struct {
	Prompt      string
	Lang        script.Language
	NoThink     bool
	Head        bool
	Model       string
	ContextFile string
}

// GenerateResponse carries a rendered script.
type GenerateResponse struct {
	Script   string
	Filename string
	Model    string
}

// ScriptService renders scripts from generate requests.
type ScriptService interface {
	// GenerateScript validates req and renders the script it describes.
	GenerateScript(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	// DefaultModel returns the model used when a request names none.
	DefaultModel() string
}

// scriptService implements ScriptService.
type scriptService struct {
	builder *script.Builder
	logger  *slog.Logger
}

// NewScriptService creates a new ScriptService backed by builder.
func NewScriptService(builder *script.Builder) ScriptService {
	return &scriptService{
		builder: builder,
		logger:  slog.Default(),
	}
}

// ValidateGenerateRequest checks the request in the order clients see errors:
// a missing prompt is reported before an unsupported language.
func ValidateGenerateRequest(req GenerateRequest) error {
	if req.Prompt == "" {
		return &ValidationError{
			Field:   "prompt",
			Message: "Missing 'prompt' parameter",
			Err:     ErrInvalidInput,
		}
	}
	if req.Lang != script.LanguageShell {
		return &ValidationError{
			Field:   "lang",
			Message: fmt.Sprintf("Only '%s' (shell script) is currently supported for 'lang' parameter", script.LanguageShell),
			Err:     ErrUnsupportedLanguage,
		}
	}
	return nil
}

// GenerateScript renders a script for req.
func (s *scriptService) GenerateScript(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	logger := contextutil.LoggerFromContextOr(ctx, s.logger)

	if err := ValidateGenerateRequest(req); err != nil {
		logger.WarnContext(ctx, "invalid generate request", "error", err)
		return GenerateResponse{}, err
	}

	opts := script.Options{
		Prompt:      req.Prompt,
		Model:       req.Model,
		ContextFile: req.ContextFile,
		StripThink:  req.NoThink,
		Verbose:     req.Head,
	}
	body, err := s.builder.Build(opts)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render script", "error", err)
		return GenerateResponse{}, WrapError(err, "failed to render script")
	}

	model := s.builder.ModelFor(opts)
	logger.DebugContext(ctx, "script generated",
		"model", model,
		"prompt_length", len(req.Prompt),
		"nothink", req.NoThink,
		"head", req.Head,
		"with_context", req.ContextFile != "",
		"script_length", len(body),
	)
	return GenerateResponse{
		Script:   body,
		Filename: script.Filename,
		Model:    model,
	}, nil
}

// DefaultModel returns the builder's fallback model.
func (s *scriptService) DefaultModel() string {
	return s.builder.DefaultModel()
}
