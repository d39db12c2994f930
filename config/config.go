package config

import (
	"github.com/jeff-nasseri/mailharvest/internal/logger"
)

type AppConfig struct {
	Mailbox string `env:"MAILHARVEST_MAILBOX" envDefault:"INBOX"`
}

type Config struct {
	AppConfig *AppConfig
	Logger    *logger.Config
}
