// Package model defines the shared domain types for the acquisition
// transition pipeline.
package model

import "time"

// Category classifies an employment interval relative to one acquisition
// event: the acquired company, the acquiring company, or any other employer.
type Category string

const (
	CategoryAcquiree Category = "E"
	CategoryAcquirer Category = "R"
	CategoryOther    Category = "O"
)

// EmploymentRecord is one employment row from an extracted-profiles export.
// Produced by the external HTML extraction collaborator; the Timeframe field
// is the raw "Mon YYYY - Mon YYYY" (or "... - Present") string.
type EmploymentRecord struct {
	SubjectID    int64  `json:"subject_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ProfileURL   string `json:"profile_url,omitempty"`
	EmployerName string `json:"employer_name"`
	EmployerURL  string `json:"employer_url,omitempty"`
	RoleTitle    string `json:"role_title,omitempty"`
	Timeframe    string `json:"timeframe"`
	Location     string `json:"location,omitempty"`
}

// Tag is the long-form category name used in report labels.
func (c Category) Tag() string {
	switch c {
	case CategoryAcquiree:
		return "ACQUIREE"
	case CategoryAcquirer:
		return "ACQUIRER"
	default:
		return "OTHER"
	}
}

// Interval is one month-precision employment span on a subject's timeline.
// Start and End are always normalized to the first day of their month.
// After merging, Employer may be several names joined by " | ".
type Interval struct {
	Category Category  `json:"category"`
	Employer string    `json:"employer"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// Label is the interval's report label: the category tag for acquiree and
// acquirer intervals, the employer string otherwise.
func (iv Interval) Label() string {
	if iv.Category == CategoryOther {
		return iv.Employer
	}
	return iv.Category.Tag()
}
