package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/RyanBlaney/latency-benchmark-common/output"

	"github.com/RyanBlaney/signal-workbench/configs"
	"github.com/RyanBlaney/signal-workbench/pkg/analysis"
	"github.com/RyanBlaney/signal-workbench/pkg/signal"
	"github.com/RyanBlaney/signal-workbench/pkg/strobe"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	OutputFile   string
	OutputFormat string
	Verbose      bool

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// Workbench wires the generation and analysis engines together for the CLI.
// Each command builds one Workbench; the engine instances are injected here
// rather than living as package globals.
type Workbench struct {
	ctx       *Context
	config    *configs.Config
	logger    logging.Logger
	generator *signal.Generator
	assembler *strobe.Assembler
	analyzer  *analysis.SpectralAnalyzer
}

// NewWorkbench creates the application with its engines wired up
func NewWorkbench(ctx *Context) (*Workbench, error) {
	logger := logging.NewDefaultLogger()
	ctx.Logger = logger

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := configs.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	ctx.Config = config

	var generator *signal.Generator
	var noise *strobe.NoiseSource
	if config.Generator.Seed != 0 {
		generator = signal.NewGeneratorSeeded(config.Generator.Seed)
		noise = strobe.NewNoiseSourceSeeded(config.Generator.Seed)
	} else {
		generator = signal.NewGenerator()
		noise = strobe.NewNoiseSource()
	}

	logger.Debug("workbench initialized", logging.Fields{
		"output_format": ctx.OutputFormat,
		"seed":          config.Generator.Seed,
	})

	return &Workbench{
		ctx:       ctx,
		config:    config,
		logger:    logger,
		generator: generator,
		assembler: strobe.NewAssembler(strobe.NewCompositor(noise)),
		analyzer:  analysis.NewSpectralAnalyzer(),
	}, nil
}

// Generator returns the single-signal engine
func (w *Workbench) Generator() *signal.Generator { return w.generator }

// Assembler returns the strobe engine
func (w *Workbench) Assembler() *strobe.Assembler { return w.assembler }

// Analyzer returns the spectral analysis engine
func (w *Workbench) Analyzer() *analysis.SpectralAnalyzer { return w.analyzer }

// Config returns the loaded application configuration
func (w *Workbench) Config() *configs.Config { return w.config }

// Output formats the result per the configured output format and writes it
// to the output file or stdout
func (w *Workbench) Output(data any) error {
	var formatter output.Formatter
	switch w.ctx.OutputFormat {
	case "json":
		formatter = &output.JSONFormatter{}
	case "yaml":
		formatter = &output.YAMLFormatter{}
	case "csv":
		formatter = &output.CSVFormatter{}
	case "table":
		formatter = &output.TableFormatter{}
	default:
		formatter = &output.JSONFormatter{}
	}

	formatted, err := formatter.Format(data, true)
	if err != nil {
		return fmt.Errorf("failed to format output data: %w", err)
	}

	if w.ctx.OutputFile != "" {
		return w.writeToFile(formatted)
	}

	_, err = os.Stdout.Write(formatted)
	return err
}

// writeToFile writes data to the specified output file
func (w *Workbench) writeToFile(data []byte) error {
	dir := filepath.Dir(w.ctx.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(w.ctx.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	w.logger.Debug("results written to file", logging.Fields{
		"output_file": w.ctx.OutputFile,
		"size_bytes":  len(data),
	})

	return nil
}
