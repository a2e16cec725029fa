package port

import "errors"

// Input errors surface before any persistence write; nothing is partially
// applied when one of these comes back from an import.
var (
	// ErrEmptyInput means the import text was blank.
	ErrEmptyInput = errors.New("import text is empty")
	// ErrNoDataRows means only a header row was present.
	ErrNoDataRows = errors.New("import text has no data rows")
	// ErrMissingCampaignHeader means the required Campaign column is absent.
	ErrMissingCampaignHeader = errors.New("required header \"Campaign\" is missing")
	// ErrNoValidCampaigns means no row produced a campaign with at least
	// one ad group.
	ErrNoValidCampaigns = errors.New("no valid campaigns in import")

	// ErrSourceNotFound means a rename addressed a node that does not exist.
	ErrSourceNotFound = errors.New("rename source not found")
)

// IsInputError reports whether err belongs to the import input taxonomy.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrNoDataRows) ||
		errors.Is(err, ErrMissingCampaignHeader) ||
		errors.Is(err, ErrNoValidCampaigns)
}
