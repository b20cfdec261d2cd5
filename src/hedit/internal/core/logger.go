package core

import (
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyLogging = "logging"
	_serviceName      = "hedit-daemon"
)

// LoggingConfig describes the daemon's logging setup from the config files.
type LoggingConfig struct {
	Level       string   `yaml:"level"`
	Development bool     `yaml:"development"`
	Encoding    string   `yaml:"encoding"`
	OutputPaths []string `yaml:"outputPaths"`
}

// LoggerModule provides the logger dependencies.
var LoggerModule = fx.Options(
	fx.Provide(NewSugaredLogger),
	fx.Provide(NewLogger),
)

// NewLogger unwraps the sugared logger for components on the typed API.
func NewLogger(sugar *zap.SugaredLogger) *zap.Logger {
	return sugar.Desugar()
}

// NewSugaredLogger builds the daemon's logger from the logging config block.
// Unset fields fall back to info-level json on stdout.
func NewSugaredLogger(provider config.Provider) (*zap.SugaredLogger, error) {
	loggingConfig := LoggingConfig{
		Level:       "info",
		Encoding:    "json",
		OutputPaths: []string{"stdout"},
	}
	if err := provider.Get(_configKeyLogging).Populate(&loggingConfig); err != nil {
		return nil, err
	}

	level, err := zap.ParseAtomicLevel(loggingConfig.Level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if loggingConfig.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = level
	cfg.Encoding = loggingConfig.Encoding
	cfg.OutputPaths = loggingConfig.OutputPaths
	cfg.InitialFields = map[string]interface{}{"service": _serviceName}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
