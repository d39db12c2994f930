package email_processor

import (
	"net/mail"
)

const canonicalDateLayout = "2006-01-02 15:04:05"

// NormalizeDate renders an RFC 2822 date header as
// "YYYY-MM-DD HH:MM:SS". Unparsable values pass through unchanged;
// downstream consumers tolerate free-text dates.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := mail.ParseDate(raw)
	if err != nil {
		return raw
	}

	return parsed.Format(canonicalDateLayout)
}
