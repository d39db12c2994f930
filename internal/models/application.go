package models

import (
	"time"

	"github.com/jeff-nasseri/mailharvest/internal/enum"
)

// Application is one harvested email classified as job-application
// related.
type Application struct {
	EmailID  string
	Company  string
	Position string
	Status   enum.ApplicationStatus
	Date     time.Time
}

// ApplicationGroup aggregates duplicate applications for the same
// company and position.
type ApplicationGroup struct {
	Company    string
	Position   string
	Status     enum.ApplicationStatus
	EmailIDs   []string
	EmailCount int
}
