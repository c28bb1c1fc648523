package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/motorlane/carstock/config"
)

var (
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger
)

// InitLogger initializes the global Zap logger. Production logs JSON at
// info level; everything else logs at debug.
func InitLogger(cfg *config.Config) error {
	level := zapcore.DebugLevel
	if cfg.App.Environment == "production" {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if cfg.App.Environment == "development" && cfg.App.Debug {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)

	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	Sugar = Logger.Sugar()

	return nil
}

// GetLogger returns the structured logger
func GetLogger() *zap.Logger {
	return Logger
}

// GetSugarLogger returns the sugared logger
func GetSugarLogger() *zap.SugaredLogger {
	return Sugar
}

// Sync syncs all logs (call this before application exits)
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogRequest logs HTTP request information
func LogRequest(method, path string, statusCode int, duration int64, clientIP string, userAgent string) {
	Logger.Info("HTTP Request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", statusCode),
		zap.Int64("duration_ms", duration),
		zap.String("client_ip", clientIP),
		zap.String("user_agent", userAgent),
	)
}

// LogPanic logs a recovered panic with its stack
func LogPanic(recovered interface{}) {
	Logger.Error("Panic recovered",
		zap.Any("panic", recovered),
		zap.Stack("stack"),
	)
}
