package repository

import "strings"

// normalizeTagNames trims and lowercases the given names, dropping blanks
// and duplicates while keeping the first occurrence order.
func normalizeTagNames(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	result := make([]string, 0, len(in))
	for _, item := range in {
		name := normalizeTagName(item)
		if name == "" {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func normalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
