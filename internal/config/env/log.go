package env

import (
	"os"
	"slot_backend/internal/config"
	"strconv"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logDirEnvName   = "LOG_DIR"
	logFileEnvName  = "LOG_FILE"
	appNameEnvName  = "APP_NAME"
)

type logConfig struct {
	level string
	app   string
	dir   string
	file  bool
}

func NewLogConfig() config.LogConfig {
	cfg := &logConfig{
		level: os.Getenv(logLevelEnvName),
		app:   os.Getenv(appNameEnvName),
		dir:   os.Getenv(logDirEnvName),
	}
	if len(cfg.level) == 0 {
		cfg.level = "info"
	}
	if len(cfg.app) == 0 {
		cfg.app = "slot"
	}
	if len(cfg.dir) == 0 {
		cfg.dir = "logs"
	}
	cfg.file, _ = strconv.ParseBool(os.Getenv(logFileEnvName))
	return cfg
}

func (cfg *logConfig) Level() string { return cfg.level }
func (cfg *logConfig) App() string   { return cfg.app }
func (cfg *logConfig) Dir() string   { return cfg.dir }
func (cfg *logConfig) File() bool    { return cfg.file }
