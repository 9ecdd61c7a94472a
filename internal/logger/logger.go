package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stash-indexer/config"
)

// RequestIDKey is the gin context key holding the per-request correlation id.
const RequestIDKey = "request_id"

// New creates a new zap logger based on the configuration.
func New(cfg *config.LogConfig) (*zap.Logger, error) {
	var zcfg zap.Config

	if cfg.Level == "debug" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.DisableStacktrace = true
	} else {
		zcfg.Encoding = "json"
	}

	zcfg.EncoderConfig.LevelKey = "level"
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.MessageKey = "message"

	return zcfg.Build()
}

// WithRequestID returns a logger with the request_id field set from the gin context.
func WithRequestID(l *zap.Logger, c *gin.Context) *zap.Logger {
	if id := c.GetString(RequestIDKey); id != "" {
		return l.With(zap.String(RequestIDKey, id))
	}
	return l
}
