package logger

import (
	"os"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vibemix/blueprint"
)

// NewLogger returns a new zap logger
func NewLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// NewZapSentryLogger returns a new zap logger with sentry integration. When no
// SENTRY_DSN is configured it degrades to the plain production logger.
func NewZapSentryLogger(opts *blueprint.VibemixLoggerOptions) *zap.Logger {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return log
	}

	if opts == nil {
		opts = &blueprint.VibemixLoggerOptions{
			Component: "system",
			RequestID: "not_set",
		}
	}
	if opts.Component == "" {
		opts.Component = "system"
	}
	if opts.RequestID == "" {
		opts.RequestID = "not_set"
	}

	cfg := zapsentry.Configuration{
		Level:             zapcore.WarnLevel,
		BreadcrumbLevel:   zapcore.WarnLevel,
		EnableBreadcrumbs: true,
		DisableStacktrace: !opts.AddTrace,
		Tags: map[string]string{
			"component":  opts.Component,
			"when":       time.Now().String(),
			"request_id": opts.RequestID,
		},
	}

	core, zErr := zapsentry.NewCore(cfg, zapsentry.NewSentryClientFromDSN(dsn))
	if zErr != nil {
		log.Warn("could not create zapsentry core, continuing without sentry", zap.Error(zErr))
		return log
	}

	log = zapsentry.AttachCoreToLogger(core, log)
	sentryScope := sentry.NewScope()

	sentryScope.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "Request ID",
		Data:     map[string]interface{}{"request_id": opts.RequestID},
	}, 1)

	if opts.Error != nil {
		sentryScope.AddBreadcrumb(&sentry.Breadcrumb{
			Category: "Error",
			Message:  "Error encountered while making the request",
			Data:     map[string]interface{}{"error": opts.Error},
		}, 1)
	}

	return log.With(zapsentry.NewScopeFromScope(sentryScope))
}
