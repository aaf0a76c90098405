package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/transition-cli/internal/model"
)

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "12345678", truncateID("123456789abcdef"))
	assert.Equal(t, "short", truncateID("short"))
}

func TestFormatRunsList(t *testing.T) {
	created := time.Date(2020, time.May, 15, 9, 0, 0, 0, time.UTC)
	runs := []model.InspectionRun{{
		ID:               "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		AcquisitionsFile: "acquisitions_2019.csv",
		Status:           model.RunStatusCompleted,
		Summary:          model.RunSummary{Events: 10, Matched: 7},
		CreatedAt:        created,
		UpdatedAt:        created.Add(42 * time.Second),
	}}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	out := buf.String()
	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "acquisitions_2019.csv")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "42s")
}
