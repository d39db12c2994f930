package utils

import "strings"

// UniqueStrings drops duplicates while preserving first-seen order.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))

	for _, value := range values {
		if _, exists := seen[value]; !exists {
			seen[value] = struct{}{}
			unique = append(unique, value)
		}
	}

	return unique
}

// ExtractEmailDomain pulls the lower-cased domain out of a sender header,
// tolerating display names with angle brackets (e.g. "Name <a@b.com>").
func ExtractEmailDomain(sender string) string {
	if sender == "" {
		return ""
	}

	sender = strings.TrimSpace(sender)

	if strings.Contains(sender, "<") && strings.Contains(sender, ">") {
		startIdx := strings.LastIndex(sender, "<") + 1
		endIdx := strings.LastIndex(sender, ">")
		if startIdx > 0 && endIdx > startIdx {
			sender = sender[startIdx:endIdx]
		}
	}

	parts := strings.Split(sender, "@")
	if len(parts) != 2 {
		return ""
	}

	return strings.ToLower(strings.TrimSpace(parts[1]))
}
