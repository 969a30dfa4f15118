package domain

import "fmt"

// TimelineQuery selects the status entries of a project, either for a single
// day or for an inclusive date range. Dates are passed through as given.
type TimelineQuery struct {
	Project string
	Date    string
	Start   string
	End     string
}

// IsRange reports whether the query covers a date range.
func (q TimelineQuery) IsRange() bool {
	return q.Date == "" && (q.Start != "" || q.End != "")
}

// Validate checks that exactly one of a day or a complete range is selected.
func (q TimelineQuery) Validate() error {
	if q.Project == "" {
		return fmt.Errorf("%w: project is required", ErrMalformedInput)
	}
	if q.Date != "" {
		if q.Start != "" || q.End != "" {
			return fmt.Errorf("%w: date and range are mutually exclusive", ErrMalformedInput)
		}
		return nil
	}
	if q.Start == "" || q.End == "" {
		return fmt.Errorf("%w: both start and end are required for a range", ErrMalformedInput)
	}
	return nil
}
