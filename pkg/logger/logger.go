package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is an optional file path, stdout is always written.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(cfg.LogLevel),
		Development:      cfg.LogLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if cfg.Sink != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, cfg.Sink)
	}
	l, err := zcfg.Build()
	if err != nil {
		log.Fatal("logger build ", err)
	}
	return l.Named(name)
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}
