package usecase

import (
	"strings"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// row is one parsed data line, keyed by header. Lookups on headers the
// input did not carry return "".
type row map[string]string

func (r row) get(header string) string { return r[header] }

// first returns the value of the first header in the list that carries a
// non-empty value.
func (r row) first(headers ...string) string {
	for _, h := range headers {
		if v := r[h]; v != "" {
			return v
		}
	}
	return ""
}

// parseTabular converts raw tab/newline-delimited text into rows. The first
// line is the header; every cell is cleaned of whitespace and stray quotes.
// Missing optional headers are not an error, only the Campaign column is
// required.
func parseTabular(text string) ([]row, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, port.ErrEmptyInput
	}

	lines := strings.Split(text, "\n")
	headers := strings.Split(lines[0], "\t")
	for i := range headers {
		headers[i] = domain.CleanField(headers[i])
	}

	hasCampaign := false
	for _, h := range headers {
		if h == colCampaign {
			hasCampaign = true
			break
		}
	}
	if !hasCampaign {
		return nil, port.ErrMissingCampaignHeader
	}

	rows := make([]row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, "\t")
		r := make(row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cells) {
				r[h] = domain.CleanField(cells[i])
			} else {
				r[h] = ""
			}
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return nil, port.ErrNoDataRows
	}
	return rows, nil
}
