package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a JSON logger writing to a rotated file under logDir.
// level accepts zap's textual levels ("debug", "info", ...); anything else
// falls back to info.
func NewLogger(logDir, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	lvl := zap.InfoLevel
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		lvl = parsed
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "keepalive.log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, lvl)
	return zap.New(core), nil
}
