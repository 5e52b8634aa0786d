package kafka

import (
	"github.com/caarlos0/env/v10"
)

// LoadEnv заполняет cfg из переменных окружения (caarlos0/env/v10).
// Значения, которых нет в окружении, остаются как были в cfg, если у поля нет envDefault.
func LoadEnv(cfg *Config) error {
	return env.Parse(cfg)
}
