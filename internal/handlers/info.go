package handlers

import (
	"log/slog"
	"net/http"

	"ollama-scriptgen/internal/contextutil"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "Ollama Shell Script Generator API"

// InfoResponse describes the API.
type InfoResponse struct {
	Name         string                  `json:"name"`
	DefaultModel string                  `json:"default_model"`
	Endpoints    map[string]EndpointInfo `json:"endpoints"`
}

// EndpointInfo documents one route.
type EndpointInfo struct {
	Method      string            `json:"method"`
	Description string            `json:"description,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty"`
	Examples    map[string]string `json:"examples,omitempty"`
}

// NewInfo builds the API description for the given default model.
func NewInfo(defaultModel string) InfoResponse {
	return InfoResponse{
		Name:         ServiceName,
		DefaultModel: defaultModel,
		Endpoints: map[string]EndpointInfo{
			"/generate": {
				Method:      http.MethodGet,
				Description: "Download a shell script that installs Ollama, pulls the model and runs the prompt",
				Parameters: map[string]string{
					ParamPrompt:  "The prompt to send to the model (required)",
					ParamLang:    "The language/format (default: 'sh')",
					ParamNoThink: "If 'true', removes <think></think> tags from output (default: 'false')",
					ParamHead:    "If 'true', shows all logs; if 'false', only model output (default: 'true')",
					ParamModel:   "Custom Ollama model name (default: HuggingFace Qwen model)",
					ParamCtxFile: "Path to a file containing context to prepend to the prompt",
				},
				Examples: map[string]string{
					"basic":         "/generate?lang=sh&prompt=Hello!",
					"custom_model":  "/generate?prompt=Hello&model=llama3",
					"with_context":  "/generate?prompt=Summarize+this&ctxfile=/path/to/context.txt",
					"no_think_tags": "/generate?prompt=Explain+AI&nothink=true",
					"output_only":   "/generate?prompt=Hello&head=false",
					"clean_output":  "/generate?prompt=Explain+AI&nothink=true&head=false",
				},
			},
			"/docs": {
				Method:      http.MethodGet,
				Description: "This description rendered as an HTML page",
			},
			"/health": {
				Method:      http.MethodGet,
				Description: "Liveness probe",
			},
		},
	}
}

// InfoHandler serves the static API description at the root route.
type InfoHandler struct {
	info   InfoResponse
	logger *slog.Logger
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(defaultModel string) *InfoHandler {
	return &InfoHandler{
		info:   NewInfo(defaultModel),
		logger: slog.Default(),
	}
}

// ServeHTTP writes the API description as JSON.
func (h *InfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContextOr(ctx, h.logger)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := writeJSON(w, http.StatusOK, h.info); err != nil {
		logger.ErrorContext(ctx, "failed to encode info response", "error", err)
	}
}
