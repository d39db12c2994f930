package export

import (
	"github.com/jeff-nasseri/mailharvest/interfaces"
	"github.com/jeff-nasseri/mailharvest/internal/logger"
)

// Options carries the per-run harvest parameters from the CLI.
type Options struct {
	OutputPath string
	Fetch      interfaces.FetchOptions
}

// Service wires one connector and one exporter into a single harvest
// run.
type Service struct {
	connector interfaces.EmailConnector
	exporter  interfaces.EmailExporter
	log       logger.Logger
}

func NewService(connector interfaces.EmailConnector, exporter interfaces.EmailExporter, log logger.Logger) *Service {
	return &Service{
		connector: connector,
		exporter:  exporter,
		log:       log,
	}
}

// Run executes connect, fetch, export. The connection is released on
// every path, including fetch and export failures.
func (s *Service) Run(opts Options) error {
	if err := s.connector.Connect(); err != nil {
		return err
	}
	defer s.connector.Disconnect()

	s.log.Info("fetching emails")
	records, err := s.connector.FetchEmails(opts.Fetch)
	if err != nil {
		return err
	}
	s.log.Infof("fetched %d emails", len(records))

	if err := s.exporter.Export(records, opts.OutputPath); err != nil {
		return err
	}

	s.log.Info("export completed")
	return nil
}
