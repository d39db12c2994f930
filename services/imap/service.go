package imap

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/charset"
	"github.com/pkg/errors"

	"github.com/jeff-nasseri/mailharvest/config"
	"github.com/jeff-nasseri/mailharvest/interfaces"
	er "github.com/jeff-nasseri/mailharvest/internal/errors"
	"github.com/jeff-nasseri/mailharvest/internal/logger"
	"github.com/jeff-nasseri/mailharvest/internal/models"
	"github.com/jeff-nasseri/mailharvest/services/email_processor"
)

func init() {
	imap.CharsetReader = charset.Reader
}

// IMAPConnector wraps one authenticated IMAP connection. It is not safe
// for concurrent use; one connector serves one run.
type IMAPConnector struct {
	profile     ProviderProfile
	credentials config.Credentials
	mailbox     string
	log         logger.Logger

	client *client.Client
}

func NewIMAPConnector(profile ProviderProfile, credentials config.Credentials, mailbox string, log logger.Logger) interfaces.EmailConnector {
	if mailbox == "" {
		mailbox = "INBOX"
	}
	return &IMAPConnector{
		profile:     profile,
		credentials: credentials,
		mailbox:     mailbox,
		log:         log,
	}
}

func (s *IMAPConnector) Connect() error {
	serverAddr := fmt.Sprintf("%s:%d", s.profile.Host, s.profile.Port)

	dialer := &net.Dialer{
		Timeout: 30 * time.Second,
	}
	tlsConfig := &tls.Config{
		ServerName: s.profile.Host,
	}

	c, err := client.DialWithDialerTLS(dialer, serverAddr, tlsConfig)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", serverAddr)
	}

	if err := c.Login(s.credentials.Username, s.credentials.Secret); err != nil {
		// Close the connection before returning
		c.Logout()
		return errors.Wrapf(err, "failed to login to %s", s.profile.Name)
	}

	s.client = c
	s.log.Infof("connected to %s", serverAddr)
	return nil
}

// FetchEmails scans the mailbox and returns one record per message that
// survives the exclusion list. Per-message fetch or parse failures are
// logged and skipped so one corrupt message cannot lose the rest of the
// mailbox.
func (s *IMAPConnector) FetchEmails(opts interfaces.FetchOptions) ([]models.EmailRecord, error) {
	if s.client == nil {
		return nil, er.ErrNotConnected
	}

	if _, err := s.client.Select(s.mailbox, false); err != nil {
		return nil, errors.Wrapf(err, "failed to select %s", s.mailbox)
	}

	ids, err := s.client.Search(imap.NewSearchCriteria())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list messages in %s", s.mailbox)
	}
	if len(ids) == 0 {
		s.log.Infof("no messages found in %s", s.mailbox)
		return []models.EmailRecord{}, nil
	}

	ids = tailWindow(ids, opts.Limit)
	s.log.Infof("processing %d messages", len(ids))

	records := make([]models.EmailRecord, 0, len(ids))
	for _, id := range ids {
		raw, err := s.fetchRawMessage(id)
		if err != nil {
			s.log.Warnf("failed to fetch message %d, skipping: %v", id, err)
			continue
		}

		record, excluded, err := buildRecord(strconv.FormatUint(uint64(id), 10), raw, opts)
		if err != nil {
			s.log.Warnf("failed to parse message %d, skipping: %v", id, err)
			continue
		}
		if excluded {
			s.log.Debugf("skipping message %d, sender is excluded", id)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// Disconnect closes the mailbox and logs out. Cleanup failures are
// swallowed; the harvest has already completed by the time it runs.
func (s *IMAPConnector) Disconnect() {
	if s.client == nil {
		return
	}

	if err := s.client.Close(); err != nil {
		s.log.Debugf("close mailbox: %v", err)
	}
	if err := s.client.Logout(); err != nil {
		s.log.Debugf("logout: %v", err)
	}
	s.client = nil
}

// tailWindow keeps the most recent limit ids, preserving server order.
func tailWindow(ids []uint32, limit int) []uint32 {
	if limit > 0 && len(ids) > limit {
		return ids[len(ids)-limit:]
	}
	return ids
}

// buildRecord turns one raw message into a record. The bool reports an
// exclusion-list skip.
func buildRecord(id string, raw []byte, opts interfaces.FetchOptions) (models.EmailRecord, bool, error) {
	parsed, err := email_processor.Parse(raw)
	if err != nil {
		return models.EmailRecord{}, false, err
	}

	if opts.Exclusions.MatchesSender(parsed.From) {
		return models.EmailRecord{}, true, nil
	}

	return models.EmailRecord{
		ID:      id,
		Subject: parsed.Subject,
		From:    parsed.From,
		Date:    parsed.Date,
		Content: parsed.Content(opts.PlainTextOnly),
	}, false, nil
}

func (s *IMAPConnector) fetchRawMessage(id uint32) ([]byte, error) {
	seqSet := new(imap.SeqSet)
	seqSet.AddNum(id)

	items := []imap.FetchItem{imap.FetchRFC822}

	messages := make(chan *imap.Message, 1)
	if err := s.client.Fetch(seqSet, items, messages); err != nil {
		return nil, err
	}

	msg, ok := <-messages
	if !ok || msg == nil {
		return nil, er.ErrEmptyMessage
	}

	for section, literal := range msg.Body {
		if section.Peek {
			continue // Skip PEEK sections to avoid duplicates
		}

		if len(section.Path) == 0 && section.Specifier == imap.EntireSpecifier {
			return io.ReadAll(literal)
		}
	}

	return nil, er.ErrEmptyMessage
}
