package imap

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/jeff-nasseri/mailharvest/internal/enum"
	er "github.com/jeff-nasseri/mailharvest/internal/errors"
)

// ProviderProfile is the static IMAP endpoint for one provider.
type ProviderProfile struct {
	Name enum.EmailProvider
	Host string
	Port int
}

var providerProfiles = map[enum.EmailProvider]ProviderProfile{
	enum.EmailProviderGmail:   {Name: enum.EmailProviderGmail, Host: "imap.gmail.com", Port: 993},
	enum.EmailProviderOutlook: {Name: enum.EmailProviderOutlook, Host: "outlook.office365.com", Port: 993},
	enum.EmailProviderYahoo:   {Name: enum.EmailProviderYahoo, Host: "imap.mail.yahoo.com", Port: 993},
	enum.EmailProviderAol:     {Name: enum.EmailProviderAol, Host: "imap.aol.com", Port: 993},
	enum.EmailProviderZoho:    {Name: enum.EmailProviderZoho, Host: "imap.zoho.com", Port: 993},
}

// ResolveProvider maps a provider name to its endpoint. Names are
// case-insensitive.
func ResolveProvider(name string) (ProviderProfile, error) {
	provider := enum.EmailProvider(strings.ToLower(strings.TrimSpace(name)))
	profile, ok := providerProfiles[provider]
	if !ok {
		return ProviderProfile{}, errors.Wrapf(er.ErrUnsupportedProvider, "%q", name)
	}
	return profile, nil
}
