package email_processor

import (
	"bytes"

	"github.com/jhillyerd/enmime"
	"github.com/pkg/errors"
)

// ParsedEmail is one parsed MIME message with its headers decoded.
type ParsedEmail struct {
	Subject string
	From    string
	Date    string

	envelope *enmime.Envelope
}

// Parse reads a raw RFC 822 message and decodes the headers a harvest
// record needs. Body extraction is deferred to Content so excluded
// senders never pay for it.
func Parse(raw []byte) (*ParsedEmail, error) {
	envelope, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse message")
	}

	return &ParsedEmail{
		Subject:  DecodeHeader(envelope.Root.Header.Get("Subject")),
		From:     DecodeHeader(envelope.Root.Header.Get("From")),
		Date:     NormalizeDate(envelope.Root.Header.Get("Date")),
		envelope: envelope,
	}, nil
}
