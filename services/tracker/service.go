package tracker

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jeff-nasseri/mailharvest/internal/enum"
	"github.com/jeff-nasseri/mailharvest/internal/logger"
	"github.com/jeff-nasseri/mailharvest/internal/models"
	"github.com/jeff-nasseri/mailharvest/internal/utils"
)

// TrackerService classifies harvested records as job applications and
// aggregates them per company and position.
type TrackerService struct {
	log logger.Logger
}

func NewTrackerService(log logger.Logger) *TrackerService {
	return &TrackerService{log: log}
}

// LoadRecords reads a harvest export back into memory.
func (s *TrackerService) LoadRecords(path string) ([]models.EmailRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var records []models.EmailRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "%s is not a valid export file", path)
	}

	return records, nil
}

// Analyze keeps the records that look job-application related and
// classifies each one.
func (s *TrackerService) Analyze(records []models.EmailRecord) []models.Application {
	applications := make([]models.Application, 0, len(records))
	for _, record := range records {
		if !isJobApplication(record) {
			continue
		}

		applications = append(applications, models.Application{
			EmailID:  record.ID,
			Company:  extractCompany(record.From),
			Position: extractPosition(record),
			Status:   determineStatus(record),
			Date:     extractDate(record.Date),
		})
	}

	return applications
}

// Aggregate merges duplicate company+position applications, keeping the
// strongest status and every email id.
func (s *TrackerService) Aggregate(applications []models.Application) []models.ApplicationGroup {
	type groupKey struct {
		company  string
		position string
	}

	groups := make(map[groupKey]*models.ApplicationGroup)
	for _, app := range applications {
		key := groupKey{company: app.Company, position: app.Position}
		group, ok := groups[key]
		if !ok {
			group = &models.ApplicationGroup{
				Company:  app.Company,
				Position: app.Position,
				Status:   app.Status,
			}
			groups[key] = group
		} else if app.Status.Priority() > group.Status.Priority() {
			group.Status = app.Status
		}
		group.EmailIDs = append(group.EmailIDs, app.EmailID)
		group.EmailCount++
	}

	result := make([]models.ApplicationGroup, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Company != result[j].Company {
			return result[i].Company < result[j].Company
		}
		return result[i].Position < result[j].Position
	})

	return result
}

func isJobApplication(record models.EmailRecord) bool {
	subject := strings.ToLower(record.Subject)
	content := strings.ToLower(record.Content)
	for _, keyword := range applicationKeywords {
		if strings.Contains(subject, keyword) || strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}

func extractCompany(sender string) string {
	domain := utils.ExtractEmailDomain(sender)
	if domain == "" {
		return unknownCompany
	}

	label := strings.Split(domain, ".")[0]
	if utils.IsStringInSlice(label, freeMailDomains) {
		return unknownCompany
	}
	return utils.Capitalize(label)
}

func extractPosition(record models.EmailRecord) string {
	text := strings.ToLower(record.Subject) + " " + strings.ToLower(record.Content)
	for _, title := range jobTitles {
		if strings.Contains(text, title) {
			return titleCase(title)
		}
	}
	return defaultPosition
}

func determineStatus(record models.EmailRecord) enum.ApplicationStatus {
	text := strings.ToLower(record.Subject) + " " + strings.ToLower(record.Content)

	for _, keyword := range rejectionKeywords {
		if strings.Contains(text, keyword) {
			return enum.ApplicationStatusRejected
		}
	}
	for _, keyword := range interviewKeywords {
		if strings.Contains(text, keyword) {
			return enum.ApplicationStatusInterview
		}
	}
	return enum.ApplicationStatusPending
}

// extractDate accepts the canonical export format and raw RFC 2822
// leftovers; anything else falls back to the current time.
func extractDate(raw string) time.Time {
	if parsed, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC1123Z, raw); err == nil {
		return parsed
	}
	return time.Now()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = utils.Capitalize(word)
	}
	return strings.Join(words, " ")
}
