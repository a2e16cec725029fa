package domain

import "strings"

// Status is the lifecycle state shared by every level of the hierarchy.
type Status string

const (
	StatusActive Status = "Active"
	StatusPaused Status = "Paused"
)

// NormalizeStatus maps the status spellings found in spreadsheet exports
// onto the two canonical values. Exports mix "Enabled", "enabled", "Active"
// and blanks for the same state, so normalization happens at every
// read/write boundary rather than at call sites. Unknown values and blanks
// resolve to Active.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paused", "disabled", "off":
		return StatusPaused
	default:
		return StatusActive
	}
}

// CleanField trims whitespace and leading/trailing quote characters from a
// raw cell value. Spreadsheet round-trips leave stray quotes around cells;
// embedded quotes are kept as-is.
func CleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// StorageKey converts a display name into a key safe to embed in a document
// path. Slashes and dots are stripped because the store treats them as path
// and field separators. Two display names that sanitize to the same key are
// the same entity as far as the store is concerned.
func StorageKey(displayName string) string {
	s := CleanField(displayName)
	s = strings.ReplaceAll(s, "/", "")
	s = strings.ReplaceAll(s, ".", "")
	return strings.TrimSpace(s)
}

// CleanNumeric strips a raw cell down to the characters of a decimal number
// and returns "" when what remains does not parse. Exports wrap numbers in
// currency symbols, percent signs and thousands separators; a malformed
// cell must never abort an import.
func CleanNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if !validNumber(out) {
		return ""
	}
	return out
}

func validNumber(s string) bool {
	if s == "" || s == "-" || s == "." || s == "-." {
		return false
	}
	dots := 0
	for i, r := range s {
		switch {
		case r == '-':
			if i != 0 {
				return false
			}
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		case r < '0' || r > '9':
			return false
		}
	}
	return true
}

// SplitList splits a multi-value cell ("Google search;Search partners") on
// semicolons, cleaning each element and dropping blanks.
func SplitList(s string) []string {
	if CleanField(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := CleanField(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
