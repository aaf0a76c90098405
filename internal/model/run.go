package model

import "time"

// RunStatus is the lifecycle state of a stored inspection run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// RunSummary holds the aggregate counts of one inspection run.
type RunSummary struct {
	Events    int `json:"events"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Faulty    int `json:"faulty"`
}

// InspectionRun is one persisted batch run of the transition inspector.
type InspectionRun struct {
	ID               string     `json:"id"`
	AcquisitionsFile string     `json:"acquisitions_file"`
	ProfilesFile     string     `json:"profiles_file"`
	Status           RunStatus  `json:"status"`
	Summary          RunSummary `json:"summary"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
