package model

import "time"

// AcquisitionEvent is one row of the acquisition dataset: a company being
// acquired by another on a given date, joined to a subject's profile by ID.
type AcquisitionEvent struct {
	SubjectID    int64     `json:"subject_id"`
	AcquireeName string    `json:"acquiree_name"`
	AcquirerName string    `json:"acquirer_name"`
	Date         time.Time `json:"acquisition_date"`
}
