package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

// Options controls how a logger encodes and filters entries
type Options struct {
	Level string
	JSON  bool
}

// Get initializes a zap.SugaredLogger from the LOG_LEVEL and JSON_LOG environment
// variables if it has not been initialized already and returns the same instance for subsequent calls.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		l, err := New(Options{
			Level: os.Getenv("LOG_LEVEL"),
			JSON:  os.Getenv("JSON_LOG") != "",
		})
		if err != nil {
			log.Println(fmt.Errorf("invalid level, defaulting to INFO: %w", err))
			l, _ = New(Options{JSON: os.Getenv("JSON_LOG") != ""})
		}

		logger = l
	})

	return logger
}

// New builds a logger writing to stdout. An empty level means info.
func New(opts Options) (*zap.SugaredLogger, error) {
	level := zap.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	return newWithSink(opts, level, zapcore.AddSync(os.Stdout), isatty.IsTerminal(os.Stdout.Fd())), nil
}

func newWithSink(opts Options, level zapcore.Level, sink zapcore.WriteSyncer, color bool) *zap.SugaredLogger {
	var encoder zapcore.Encoder
	if opts.JSON {
		productionCfg := zap.NewProductionEncoderConfig()
		productionCfg.TimeKey = "timestamp"
		productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(productionCfg)
	} else {
		developmentCfg := zap.NewDevelopmentEncoderConfig()
		developmentCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		if color {
			developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(developmentCfg)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
		for _, v := range buildInfo.Settings {
			if v.Key == "vcs.revision" && len(v.Value) >= 7 {
				fields = append(fields, zap.String("git_revision", v.Value[0:7]))
				break
			}
		}

		core = core.With(fields)
	}

	return zap.New(core).Sugar()
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	if !ok {
		l = Get()
	}

	if len(with) > 0 {
		return l.With(with...)
	}

	return l
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
