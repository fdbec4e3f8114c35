package configuration

import (
	"fmt"
	"time"

	"github.com/willibrandon/dlog"
	"github.com/willibrandon/dlog/cmdargs"
	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/sinks"
)

// RegistryBuilder builds a registry from configuration.
type RegistryBuilder struct {
	sinkFactories map[string]SinkFactory
}

// SinkFactory creates a sink from configuration.
type SinkFactory func(args map[string]any) (core.Sink, error)

// NewRegistryBuilder creates a new registry builder with default factories.
func NewRegistryBuilder() *RegistryBuilder {
	rb := &RegistryBuilder{
		sinkFactories: make(map[string]SinkFactory),
	}

	// Register default sinks
	rb.RegisterSink("Console", createConsoleSink)
	rb.RegisterSink("File", createFileSink)
	rb.RegisterSink("Memory", createMemorySink)
	rb.RegisterSink("Async", createAsyncSink)

	return rb
}

// RegisterSink registers a sink factory.
func (rb *RegistryBuilder) RegisterSink(name string, factory SinkFactory) {
	rb.sinkFactories[name] = factory
}

// Build creates a registry from configuration.
//
// Sinks and domains are wired first, then the level selection fields resolve
// exactly as the equivalent command-line flags would and the result is
// applied to every channel. Unknown sink names are errors rather than being
// ignored: configuration files are authored ahead of time, unlike command
// lines, so a typo should surface instead of silently dropping output.
func (rb *RegistryBuilder) Build(config *Configuration) (*dlog.Registry, error) {
	var options []dlog.Option

	// Add sinks
	for _, sinkConfig := range config.Dlog.WriteTo {
		sink, err := rb.createSink(sinkConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create sink %s: %w", sinkConfig.Name, err)
		}
		options = append(options, dlog.WithSink(sink))
	}

	// Pre-register domains
	if len(config.Dlog.Domains) > 0 {
		options = append(options, dlog.WithDomains(config.Dlog.Domains...))
	}

	registry := dlog.New(options...)
	config.Dlog.Args().Apply(registry)

	return registry, nil
}

// createSink creates a sink from configuration.
func (rb *RegistryBuilder) createSink(config SinkConfiguration) (core.Sink, error) {
	factory, ok := rb.sinkFactories[config.Name]
	if !ok {
		return nil, fmt.Errorf("unknown sink: %s", config.Name)
	}

	return factory(config.Args)
}

// Args converts the level selection fields into their command-line
// equivalent. VerbosityLevel and Colorize keep the platform defaults that
// cmdargs.New applies when absent from the JSON; the boolean toggles read
// as false.
func (lc *LoggerConfiguration) Args() *cmdargs.Args {
	args := cmdargs.New()
	args.Levels = lc.Levels
	args.Quiet = lc.Quiet
	args.Verbose = lc.Verbose
	if lc.VerbosityLevel != nil {
		args.VerbosityLevel = *lc.VerbosityLevel
	}
	if lc.Colorize != nil {
		args.Colorize = *lc.Colorize
	}
	return args
}

// Default sink factories

func createConsoleSink(args map[string]any) (core.Sink, error) {
	themeName := GetString(args, "theme", "Default")

	var theme *sinks.Theme
	switch themeName {
	case "Default":
		theme = sinks.DefaultTheme()
	case "Lite":
		theme = sinks.LiteTheme()
	case "NoColor":
		theme = sinks.NoColorTheme()
	case "Soft256":
		theme = sinks.Soft256Theme()
	case "Auto":
		theme = sinks.AutoTheme()
	default:
		theme = sinks.DefaultTheme()
	}

	sink := sinks.NewConsoleSinkWithTheme(theme)

	// Override terminal detection if requested
	if GetBool(args, "forceColor", false) {
		sink.SetForceColor(true)
	}

	return sink, nil
}

func createFileSink(args map[string]any) (core.Sink, error) {
	path := GetString(args, "path", "")
	if path == "" {
		return nil, fmt.Errorf("file sink requires 'path' argument")
	}

	return sinks.NewFileSink(path)
}

func createMemorySink(args map[string]any) (core.Sink, error) {
	return sinks.NewMemorySink(), nil
}

func createAsyncSink(args map[string]any) (core.Sink, error) {
	// Get the wrapped sink configuration
	wrappedConfig, ok := args["writeTo"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("async sink requires 'writeTo' configuration")
	}

	sinkName, ok := wrappedConfig["Name"].(string)
	if !ok {
		return nil, fmt.Errorf("wrapped sink must have 'Name'")
	}

	wrappedArgs, _ := wrappedConfig["Args"].(map[string]any)

	// Use a temporary builder to create the wrapped sink
	tempBuilder := NewRegistryBuilder()
	wrapped, err := tempBuilder.createSink(SinkConfiguration{
		Name: sinkName,
		Args: wrappedArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wrapped sink: %w", err)
	}

	// Parse overflow strategy
	strategy := sinks.OverflowBlock
	switch GetString(args, "overflowStrategy", "Block") {
	case "Drop":
		strategy = sinks.OverflowDrop
	case "DropOldest":
		strategy = sinks.OverflowDropOldest
	}

	options := sinks.AsyncOptions{
		BufferSize:       GetInt(args, "bufferSize", 1000),
		OverflowStrategy: strategy,
		ShutdownTimeout:  GetDuration(args, "shutdownTimeout", 30*time.Second),
	}

	return sinks.NewAsyncSink(wrapped, options), nil
}
