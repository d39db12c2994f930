package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"

	"github.com/jeff-nasseri/mailharvest/internal/enum"
)

// Credentials authenticate one IMAP account. Secret is an app password,
// never logged.
type Credentials struct {
	Username string `env:"USERNAME,required"`
	Secret   string `env:"APP_PASSWORD,required"`
}

// LoadCredentials reads <PROVIDER>_USERNAME and <PROVIDER>_APP_PASSWORD
// from the environment for the given provider.
func LoadCredentials(provider enum.EmailProvider) (Credentials, error) {
	prefix := strings.ToUpper(provider.String()) + "_"

	credentials := Credentials{}
	if err := env.Parse(&credentials, env.Options{Prefix: prefix}); err != nil {
		return Credentials{}, errors.Wrapf(err, "missing credentials for %s (set %sUSERNAME and %sAPP_PASSWORD)", provider, prefix, prefix)
	}

	return credentials, nil
}
