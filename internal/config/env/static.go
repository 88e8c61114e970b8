package env

import (
	"os"
	"slot_backend/internal/config"
)

const (
	staticDirEnvName = "STATIC_DIR"
	defaultStaticDir = "public"
)

type staticConfig struct {
	dir string
}

func NewStaticConfig() config.StaticConfig {
	dir := os.Getenv(staticDirEnvName)
	if len(dir) == 0 {
		dir = defaultStaticDir
	}
	return &staticConfig{dir: dir}
}

func (cfg *staticConfig) Dir() string {
	return cfg.dir
}
