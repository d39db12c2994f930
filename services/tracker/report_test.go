package tracker

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff-nasseri/mailharvest/internal/enum"
	"github.com/jeff-nasseri/mailharvest/internal/models"
)

func sampleGroups() []models.ApplicationGroup {
	return []models.ApplicationGroup{
		{
			Company:    "Acme",
			Position:   "Backend Developer",
			Status:     enum.ApplicationStatusRejected,
			EmailIDs:   []string{"2"},
			EmailCount: 1,
		},
		{
			Company:    "Techcorp",
			Position:   "Software Developer",
			Status:     enum.ApplicationStatusInterview,
			EmailIDs:   []string{"1", "3"},
			EmailCount: 2,
		},
	}
}

func TestRender_EmptyGroups(t *testing.T) {
	// Arrange
	var buf bytes.Buffer

	// Act
	NewTrackerService(getLogger()).Render(nil, &buf, true)

	// Assert
	assert.Equal(t, "No job applications found in the data.\n", buf.String())
}

func TestRender_TableAndSummary(t *testing.T) {
	// Arrange
	var buf bytes.Buffer

	// Act
	NewTrackerService(getLogger()).Render(sampleGroups(), &buf, true)

	// Assert
	out := buf.String()
	assert.Contains(t, out, "===== JOB APPLICATION TRACKER =====")
	assert.Contains(t, out, "Techcorp")
	assert.Contains(t, out, "Backend Developer")
	assert.Contains(t, out, "1, 3")
	assert.Contains(t, out, "(2 emails)")
	assert.Contains(t, out, "Total Unique Company-Position Combinations: 2")
	assert.Contains(t, out, "Companies with Interviews: 1 (50.0%)")
	assert.Contains(t, out, "Rejections: 1 (50.0%)")
	assert.Contains(t, out, "Companies that invited you for interviews:")
	assert.Contains(t, out, "- Techcorp")
}

func TestRender_NoColorOmitsEscapes(t *testing.T) {
	// Arrange
	var buf bytes.Buffer

	// Act
	NewTrackerService(getLogger()).Render(sampleGroups(), &buf, true)

	// Assert
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestExportCSV_WritesAllRows(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "report.csv")
	service := NewTrackerService(getLogger())

	// Act
	err := service.ExportCSV(sampleGroups(), path)

	// Assert
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"company", "position", "status", "email_id", "email_count"}, rows[0])
	assert.Equal(t, []string{"Acme", "Backend Developer", "Rejected", "2", "1"}, rows[1])
	assert.Equal(t, []string{"Techcorp", "Software Developer", "Interview", "1, 3", "2"}, rows[2])
}

func TestExportCSV_UnwritablePath(t *testing.T) {
	// Act
	err := NewTrackerService(getLogger()).ExportCSV(sampleGroups(), filepath.Join(t.TempDir(), "no-such-dir", "report.csv"))

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create csv file")
}
