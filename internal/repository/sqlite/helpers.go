package sqlite

import (
	"encoding/json"
	"strings"
	"time"
)

// nowISO returns the current time as an RFC 3339 UTC string. All
// timestamp columns store this format, so string comparison in SQL
// (session expiry, ordering) matches chronological order.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// marshalStringArray serializes an ordered string slice for storage in a
// single TEXT column. nil serializes as an empty array.
func marshalStringArray(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// parseStringArray decodes a stored JSON array column. Malformed content,
// non-array values, and non-string elements degrade to an empty list
// rather than surfacing a parse error.
func parseStringArray(value string) []string {
	var raw []any
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return []string{}
	}

	items := make([]string, 0, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	return items
}

// marshalMetadata serializes analytics metadata, falling back to an empty
// object for nil or unserializable input.
func marshalMetadata(metadata map[string]any) string {
	if metadata == nil {
		metadata = map[string]any{}
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// parseMetadata decodes a stored metadata column; malformed content
// degrades to an empty map.
func parseMetadata(value string) map[string]any {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil || parsed == nil {
		return map[string]any{}
	}
	return parsed
}

// boolToInt converts a bool to its SQLite integer representation.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
