package enum

type EmailProvider string

const (
	EmailProviderGmail   EmailProvider = "gmail"
	EmailProviderOutlook EmailProvider = "outlook"
	EmailProviderYahoo   EmailProvider = "yahoo"
	EmailProviderAol     EmailProvider = "aol"
	EmailProviderZoho    EmailProvider = "zoho"
)

func (t EmailProvider) String() string {
	return string(t)
}
