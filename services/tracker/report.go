package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/jeff-nasseri/mailharvest/internal/enum"
	"github.com/jeff-nasseri/mailharvest/internal/models"
)

// Render writes the aggregated table and a summary block to w.
func (s *TrackerService) Render(groups []models.ApplicationGroup, w io.Writer, noColor bool) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No job applications found in the data.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== JOB APPLICATION TRACKER =====")
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Company", "Position", "Status", "Email IDs", "Count"})
	table.SetRowLine(true)
	table.SetAutoWrapText(false)

	for i, group := range groups {
		count := ""
		if group.EmailCount > 1 {
			count = fmt.Sprintf("(%d emails)", group.EmailCount)
		}
		row := []string{
			strconv.Itoa(i),
			group.Company,
			group.Position,
			group.Status.String(),
			strings.Join(group.EmailIDs, ", "),
			count,
		}

		if noColor {
			table.Append(row)
			continue
		}
		table.Rich(row, []tablewriter.Colors{
			{},
			{tablewriter.FgBlueColor},
			{},
			statusColor(group.Status),
			{},
			{},
		})
	}
	table.Render()

	s.renderSummary(groups, w)
}

func (s *TrackerService) renderSummary(groups []models.ApplicationGroup, w io.Writer) {
	total := len(groups)
	var interviews, rejected, pending int
	interviewCompanies := make(map[string]struct{})

	for _, group := range groups {
		switch group.Status {
		case enum.ApplicationStatusInterview:
			interviews++
			interviewCompanies[group.Company] = struct{}{}
		case enum.ApplicationStatusRejected:
			rejected++
		default:
			pending++
		}
	}

	percent := func(n int) float64 {
		return float64(n) / float64(total) * 100
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Total Unique Company-Position Combinations: %d\n", total)
	fmt.Fprintf(w, "Companies with Interviews: %d (%.1f%%)\n", len(interviewCompanies), percent(len(interviewCompanies)))
	fmt.Fprintf(w, "Total Interview Opportunities: %d (%.1f%%)\n", interviews, percent(interviews))
	fmt.Fprintf(w, "Rejections: %d (%.1f%%)\n", rejected, percent(rejected))
	fmt.Fprintf(w, "Pending: %d (%.1f%%)\n", pending, percent(pending))

	if len(interviewCompanies) == 0 {
		return
	}

	companies := make([]string, 0, len(interviewCompanies))
	for company := range interviewCompanies {
		companies = append(companies, company)
	}
	sort.Strings(companies)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Companies that invited you for interviews:")
	for _, company := range companies {
		fmt.Fprintf(w, "- %s\n", company)
	}
}

func statusColor(status enum.ApplicationStatus) tablewriter.Colors {
	switch status {
	case enum.ApplicationStatusInterview:
		return tablewriter.Colors{tablewriter.FgGreenColor}
	case enum.ApplicationStatusRejected:
		return tablewriter.Colors{tablewriter.FgRedColor}
	default:
		return tablewriter.Colors{tablewriter.FgYellowColor}
	}
}

// ExportCSV writes the aggregated rows with the same columns the table
// shows.
func (s *TrackerService) ExportCSV(groups []models.ApplicationGroup, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create csv file %s", path)
	}

	writer := csv.NewWriter(file)
	rows := [][]string{{"company", "position", "status", "email_id", "email_count"}}
	for _, group := range groups {
		rows = append(rows, []string{
			group.Company,
			group.Position,
			group.Status.String(),
			strings.Join(group.EmailIDs, ", "),
			strconv.Itoa(group.EmailCount),
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write csv file %s", path)
	}

	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close csv file %s", path)
	}

	s.log.Infof("exported %d rows to %s", len(groups), path)
	return nil
}
