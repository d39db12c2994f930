package export

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/jeff-nasseri/mailharvest/interfaces"
	"github.com/jeff-nasseri/mailharvest/internal/logger"
	"github.com/jeff-nasseri/mailharvest/internal/models"
)

// JSONExporter writes records as one indented JSON array with non-ASCII
// characters preserved literally.
type JSONExporter struct {
	log logger.Logger
}

func NewJSONExporter(log logger.Logger) interfaces.EmailExporter {
	return &JSONExporter{log: log}
}

func (e *JSONExporter) Export(records []models.EmailRecord, path string) error {
	if records == nil {
		records = []models.EmailRecord{}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create export file %s", path)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(records); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write records to %s", path)
	}

	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close export file %s", path)
	}

	e.log.Infof("exported %d records to %s", len(records), path)
	return nil
}
