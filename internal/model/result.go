package model

import "time"

// ResultRow is the per-event output of the transition inspection: the
// subject's employment at the acquisition date, the next two job
// transitions, and merged acquiree/acquirer spans before and after the
// acquisition. Immutable once emitted.
type ResultRow struct {
	SubjectID  int64     `json:"subject_id"`
	ProfileRef string    `json:"profile_ref"`
	AcqDate    time.Time `json:"acq_date"`

	CurEmployer string     `json:"cur_employer,omitempty"`
	CurJobStart *time.Time `json:"cur_job_start,omitempty"`
	CurJobEnd   *time.Time `json:"cur_job_end,omitempty"`

	NextEmployer    string     `json:"next_employer,omitempty"`
	NextJobStart    *time.Time `json:"next_job_start,omitempty"`
	DaysToNextJob   *int       `json:"days_to_next_job,omitempty"`
	MonthsToNextJob *int       `json:"months_to_next_job,omitempty"`

	SecondNextEmployer    string     `json:"second_next_employer,omitempty"`
	SecondNextJobStart    *time.Time `json:"second_next_job_start,omitempty"`
	DaysToSecondNextJob   *int       `json:"days_to_second_next_job,omitempty"`
	MonthsToSecondNextJob *int       `json:"months_to_second_next_job,omitempty"`

	Acquiree          string `json:"acquiree"`
	AcquireeInProfile string `json:"acquiree_in_profile,omitempty"`
	AcquireeTimeframe string `json:"acquiree_timeframe,omitempty"`

	Acquirer          string `json:"acquirer"`
	AcquirerInProfile string `json:"acquirer_in_profile,omitempty"`
	AcquirerTimeframe string `json:"acquirer_timeframe,omitempty"`

	AcquireeInProfilePrior string `json:"acquiree_in_profile_prior_acq,omitempty"`
	AcquireeTimeframePrior string `json:"acquiree_timeframe_prior_acq,omitempty"`

	AcquirerInProfilePrior string `json:"acquirer_in_profile_prior_acq,omitempty"`
	AcquirerTimeframePrior string `json:"acquirer_timeframe_prior_acq,omitempty"`
}

// UnmatchedEvent records an acquisition event where neither the acquiree nor
// the acquirer matched any employer in the subject's profile.
type UnmatchedEvent struct {
	SubjectID  int64    `json:"subject_id"`
	ProfileRef string   `json:"profile_ref"`
	Acquiree   string   `json:"acquiree"`
	Acquirer   string   `json:"acquirer"`
	Employers  []string `json:"employers"`
}

// FaultyRecord is a diagnostics side-channel entry for input that could not
// be processed (empty employer string, subject without profile records).
type FaultyRecord struct {
	SubjectID int64  `json:"subject_id"`
	Cause     string `json:"cause"`
}
