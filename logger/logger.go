// Package logger configures the process-wide slog logger and hands out loggers
// annotated with the calling subsystem.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Default name of the subsystem, set by ConfigureLoggingWithOptions.
// Using atomic.Value to ensure thread-safe reads and writes.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithJSON switches between the JSON handler (true) and the text handler (false).
func WithJSON(json bool) Option {
	return func(o *Options) {
		o.JSON = json
	}
}

// WithLevel sets the minimum level that reaches the output.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithOutput sets the destination of log records.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// 3rd party packages might still use the old log package.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// ConfigureLogging configures text logging at info level on stdout for the named
// application, then applies opts on top of those defaults.
func ConfigureLogging(app string, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem:   app,
		MinLevel:    slog.LevelInfo,
		LegacyLevel: slog.LevelInfo,
		Output:      os.Stdout,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithMuted adds a muted flag to the context. When muted is true, loggers obtained
// from this context discard everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem adds a subsystem to the context. If the subsystem is not provided, the default subsystem
// will be used. The default subsystem is set by the ConfigureLogging function.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context. If the
// subsystem is not provided, the default subsystem will be used.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := ctx.Value(contextKey("loggerValues")).([]any)
	if !ok {
		return nil
	}

	// Copy so that sibling contexts never share a backing array.
	return append([]any(nil), vals...)
}

// nullHandler is a slog.Handler implementation that discards all log output.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Discard returns a logger that drops every record without formatting it.
func Discard() *slog.Logger {
	return nullLogger
}

// Get returns the default logger annotated with the subsystem and any values
// attached with With. Only the first non-nil context is consulted.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default()

	if sub := GetSubsystem(realCtx); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}
