// Package script renders the downloadable shell script that installs Ollama,
// pulls a model and runs a prompt against it.
package script

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.sh.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("script").Option("missingkey=error").ParseFS(templateFS, "templates/*.sh.tmpl"),
)

const (
	// DefaultModel is the model pulled and run when a request names none.
	DefaultModel = "hf.co/TeichAI/Qwen3-8B-Gemini-3-Pro-Preview-Distill-GGUF:Q4_K_M"

	// Filename is the download name suggested to clients.
	Filename = "ollama_script.sh"

	// Interpreter is the first line of every rendered script.
	Interpreter = "#!/bin/bash"

	// ThinkFilter strips <think>...</think> spans, non-greedy, across line breaks.
	ThinkFilter = `perl -0777 -pe 's/<think>.*?<\/think>//gs'`
)

// Language identifies the script dialect a client asks for.
type Language string

// LanguageShell is the only supported language.
const LanguageShell Language = "sh"

// BlockName names one section of a rendered script.
type BlockName string

// Blocks in render order.
const (
	BlockHeader    BlockName = "header"
	BlockSetup     BlockName = "setup"
	BlockExecution BlockName = "execution"
	BlockClosing   BlockName = "closing"
)

// Block is one rendered section of a script.
type Block struct {
	Name BlockName
	Body string
}

// Options controls what a script does.
type Options struct {
	Prompt string
	// Model is the Ollama model identifier. Empty selects the builder's default.
	Model string
	// ContextFile is a path on the client machine whose contents are prepended to the prompt.
	ContextFile string
	// StripThink pipes model output through ThinkFilter.
	StripThink bool
	// Verbose emits status messages and the closing banner.
	Verbose bool
}

// Builder assembles scripts from named blocks. It holds no mutable state and is
// safe for concurrent use.
type Builder struct {
	defaultModel string
}

// NewBuilder creates a Builder that falls back to defaultModel when Options.Model is empty.
// An empty defaultModel selects DefaultModel.
func NewBuilder(defaultModel string) *Builder {
	if defaultModel == "" {
		defaultModel = DefaultModel
	}
	return &Builder{defaultModel: defaultModel}
}

// DefaultModel returns the model used when a request names none.
func (b *Builder) DefaultModel() string {
	return b.defaultModel
}

// ModelFor resolves the model a script will run.
func (b *Builder) ModelFor(opts Options) string {
	if opts.Model != "" {
		return opts.Model
	}
	return b.defaultModel
}

// Build renders the complete script.
func (b *Builder) Build(opts Options) (string, error) {
	blocks, err := b.Blocks(opts)
	if err != nil {
		return "", err
	}
	return Join(blocks), nil
}

// Blocks renders every section of the script in order. The closing block is
// always present and empty unless opts.Verbose is set.
func (b *Builder) Blocks(opts Options) ([]Block, error) {
	setup, err := b.SetupBlock(opts)
	if err != nil {
		return nil, err
	}
	closing, err := ClosingBlock(opts)
	if err != nil {
		return nil, err
	}
	return []Block{
		HeaderBlock(),
		setup,
		ExecutionBlock(opts),
		closing,
	}, nil
}

// Join concatenates blocks separated by a newline.
func Join(blocks []Block) string {
	bodies := make([]string, len(blocks))
	for i, block := range blocks {
		bodies[i] = block.Body
	}
	return strings.Join(bodies, "\n")
}

// HeaderBlock returns the interpreter line.
func HeaderBlock() Block {
	return Block{Name: BlockHeader, Body: Interpreter + "\n"}
}

type setupData struct {
	Model  string
	Prompt string
}

// SetupBlock renders the install/start/pull section. The verbose variant echoes
// the prompt unquoted inside a status line.
func (b *Builder) SetupBlock(opts Options) (Block, error) {
	name := "setup_silent.sh.tmpl"
	if opts.Verbose {
		name = "setup_verbose.sh.tmpl"
	}
	body, err := render(name, setupData{Model: b.ModelFor(opts), Prompt: opts.Prompt})
	if err != nil {
		return Block{}, err
	}
	return Block{Name: BlockSetup, Body: body}, nil
}

// ExecutionBlock renders the model invocation. With a context file the prompt is
// embedded raw inside a double-quoted variable; without one it is passed as a
// single quoted argument.
func ExecutionBlock(opts Options) Block {
	var sb strings.Builder
	if opts.ContextFile != "" {
		sb.WriteString("# Read context from file\n")
		fmt.Fprintf(&sb, "CTX_CONTENT=$(cat %s 2>/dev/null)\n", Quote(opts.ContextFile))
		fmt.Fprintf(&sb, "FULL_PROMPT=\"$CTX_CONTENT\n\n%s\"\n", opts.Prompt)
		sb.WriteString(`echo "$FULL_PROMPT" | ollama run "$MODEL_NAME"`)
		if opts.StripThink {
			sb.WriteString(" | " + ThinkFilter)
		} else {
			sb.WriteString(" ")
		}
	} else {
		fmt.Fprintf(&sb, `ollama run "$MODEL_NAME" %s`, Quote(opts.Prompt))
		if opts.StripThink {
			sb.WriteString(" | " + ThinkFilter)
		}
	}
	return Block{Name: BlockExecution, Body: sb.String()}
}

// ClosingBlock renders the trailing banner, or an empty block in silent mode.
func ClosingBlock(opts Options) (Block, error) {
	if !opts.Verbose {
		return Block{Name: BlockClosing}, nil
	}
	body, err := render("closing.sh.tmpl", nil)
	if err != nil {
		return Block{}, err
	}
	return Block{Name: BlockClosing, Body: body}, nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
