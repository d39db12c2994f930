package interfaces

import (
	"github.com/jeff-nasseri/mailharvest/internal/models"
)

type EmailExporter interface {
	Export(records []models.EmailRecord, path string) error
}
