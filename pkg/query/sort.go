package query

import "strings"

// SortField is a single ordering term. Field is a view field name.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses "name,-price" into ascending name, descending price.
// Field names are matched case-insensitively against view names by the builder.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}

		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")

		fields = append(fields, SortField{
			Field:      name,
			Descending: desc,
		})
	}

	return fields
}
