package models

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/jeff-nasseri/mailharvest/internal/utils"
)

// ExclusionList holds lower-cased substrings matched against decoded
// sender headers. Matching is case-insensitive; duplicates are dropped.
type ExclusionList struct {
	patterns []string
}

func NewExclusionList(patterns ...string) *ExclusionList {
	list := &ExclusionList{}
	list.Add(patterns...)
	return list
}

func (l *ExclusionList) Add(patterns ...string) {
	for _, pattern := range patterns {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		l.patterns = append(l.patterns, pattern)
	}
	l.patterns = utils.UniqueStrings(l.patterns)
}

func (l *ExclusionList) MatchesSender(sender string) bool {
	if l == nil || len(l.patterns) == 0 {
		return false
	}
	sender = strings.ToLower(sender)
	for _, pattern := range l.patterns {
		if strings.Contains(sender, pattern) {
			return true
		}
	}
	return false
}

func (l *ExclusionList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.patterns)
}

// LoadExclusionFile reads one substring per line; blank lines and lines
// starting with # are ignored.
func LoadExclusionFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read exclusion file %s", path)
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read exclusion file %s", path)
	}

	return patterns, nil
}
