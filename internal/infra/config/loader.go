package config

import (
	"os"

	"github.com/aalvaropc/orchard/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_config",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_config",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
