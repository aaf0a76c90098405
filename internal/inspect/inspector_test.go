package inspect

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/transition-cli/internal/model"
	"github.com/sells-group/transition-cli/internal/namematch"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newInspector(t *testing.T, events []model.AcquisitionEvent) *Inspector {
	t.Helper()
	canon := namematch.NewCanonicalizer(nil)
	return New(canon, events, WithNow(date(2020, time.May, 15)), WithConcurrency(2))
}

func TestInspect_EndToEnd(t *testing.T) {
	events := []model.AcquisitionEvent{{
		SubjectID:    7,
		AcquireeName: "Acme Corporation",
		AcquirerName: "Initech",
		Date:         date(2019, time.March, 15),
	}}
	profiles := map[int64][]model.EmploymentRecord{
		7: {
			{
				SubjectID:    7,
				EmployerName: "Acme Corp",
				ProfileURL:   "https://www.example.com/in/jane-doe/",
				Timeframe:    "Jan 2018 - Jun 2019",
			},
			{
				SubjectID:    7,
				EmployerName: "Globex Inc",
				ProfileURL:   "https://www.example.com/in/jane-doe/",
				Timeframe:    "Jul 2019 - Present",
			},
		},
	}

	rep, err := newInspector(t, events).Inspect(context.Background(), events, profiles)
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Empty(t, rep.Unmatched)
	assert.Empty(t, rep.Faulty)

	row := rep.Results[0]
	assert.Equal(t, int64(7), row.SubjectID)
	assert.Equal(t, "jane-doe", row.ProfileRef)

	assert.Equal(t, "ACQUIREE", row.CurEmployer)
	require.NotNil(t, row.CurJobStart)
	assert.Equal(t, date(2018, time.January, 1), *row.CurJobStart)
	require.NotNil(t, row.CurJobEnd)
	assert.Equal(t, date(2019, time.June, 1), *row.CurJobEnd)

	assert.Equal(t, "Globex Inc", row.NextEmployer)
	require.NotNil(t, row.MonthsToNextJob)
	assert.Equal(t, 4, *row.MonthsToNextJob)
	require.NotNil(t, row.DaysToNextJob)
	assert.Equal(t, 108, *row.DaysToNextJob)
	assert.Empty(t, row.SecondNextEmployer)

	// the acquiree stint starts before the acquisition but ends after it,
	// so it lands on the post side of the span partition
	assert.Equal(t, "Acme Corp", row.AcquireeInProfile)
	assert.Equal(t, "01/2018 - 06/2019", row.AcquireeTimeframe)
	assert.Empty(t, row.AcquireeInProfilePrior)
	assert.Empty(t, row.AcquirerInProfile)
}

func TestInspect_NoProfileRecords(t *testing.T) {
	events := []model.AcquisitionEvent{{
		SubjectID:    9,
		AcquireeName: "Acme Corporation",
		AcquirerName: "Initech",
		Date:         date(2019, time.March, 15),
	}}

	rep, err := newInspector(t, events).Inspect(context.Background(), events, nil)
	require.NoError(t, err)
	assert.Empty(t, rep.Results)
	assert.Empty(t, rep.Unmatched)
	require.Len(t, rep.Faulty, 1)
	assert.Equal(t, int64(9), rep.Faulty[0].SubjectID)
}

func TestInspect_UnmatchedEvent(t *testing.T) {
	events := []model.AcquisitionEvent{{
		SubjectID:    11,
		AcquireeName: "Acme Corporation",
		AcquirerName: "Initech",
		Date:         date(2019, time.March, 15),
	}}
	profiles := map[int64][]model.EmploymentRecord{
		11: {
			{SubjectID: 11, EmployerName: "Globex Inc", Timeframe: "Jan 2018 - Present"},
			{SubjectID: 11, EmployerName: "Umbrella Ltd", Timeframe: "Jan 2012 - Dec 2017"},
		},
	}

	rep, err := newInspector(t, events).Inspect(context.Background(), events, profiles)
	require.NoError(t, err)
	assert.Empty(t, rep.Results)
	require.Len(t, rep.Unmatched, 1)
	un := rep.Unmatched[0]
	assert.Equal(t, "Acme Corporation", un.Acquiree)
	assert.ElementsMatch(t, []string{"Globex Inc", "Umbrella Ltd"}, un.Employers)
}

func TestInspect_EmptyEmployerGoesToFaulty(t *testing.T) {
	events := []model.AcquisitionEvent{{
		SubjectID:    13,
		AcquireeName: "Acme Corporation",
		AcquirerName: "Initech",
		Date:         date(2019, time.March, 15),
	}}
	profiles := map[int64][]model.EmploymentRecord{
		13: {
			{SubjectID: 13, EmployerName: "  ", Timeframe: "Jan 2016 - Dec 2016"},
			{SubjectID: 13, EmployerName: "Acme Corp", Timeframe: "Jan 2018 - Jun 2019"},
		},
	}

	rep, err := newInspector(t, events).Inspect(context.Background(), events, profiles)
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	require.Len(t, rep.Faulty, 1)
	assert.Equal(t, "empty employer name", rep.Faulty[0].Cause)
}

func TestInspect_ToleranceOption(t *testing.T) {
	events := []model.AcquisitionEvent{{
		SubjectID:    15,
		AcquireeName: "Acme Corporation",
		AcquirerName: "Initech",
		Date:         date(2019, time.March, 15),
	}}
	profiles := map[int64][]model.EmploymentRecord{
		15: {
			{SubjectID: 15, EmployerName: "Acme Corp", Timeframe: "Jan 2018 - Jun 2019"},
			{SubjectID: 15, EmployerName: "Globex Inc", Timeframe: "Oct 2019 - Dec 2019"},
			{SubjectID: 15, EmployerName: "Umbrella Ltd", Timeframe: "May 2020 - Sep 2020"},
		},
	}

	// default tolerance: the four-month gap keeps the two other stints apart
	rep, err := newInspector(t, events).Inspect(context.Background(), events, profiles)
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, "Globex Inc", rep.Results[0].NextEmployer)
	assert.Equal(t, "Umbrella Ltd", rep.Results[0].SecondNextEmployer)

	// a wider tolerance merges them into one next job
	canon := namematch.NewCanonicalizer(nil)
	ins := New(canon, events,
		WithNow(date(2020, time.May, 15)),
		WithConcurrency(2),
		WithTolerance(6))
	rep, err = ins.Inspect(context.Background(), events, profiles)
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, "Globex Inc | Umbrella Ltd", rep.Results[0].NextEmployer)
	assert.Empty(t, rep.Results[0].SecondNextEmployer)
}

func TestInspect_PreservesEventOrder(t *testing.T) {
	events := []model.AcquisitionEvent{
		{SubjectID: 1, AcquireeName: "Acme Corporation", AcquirerName: "Initech", Date: date(2019, time.March, 15)},
		{SubjectID: 2, AcquireeName: "Globex Corporation", AcquirerName: "Initech", Date: date(2018, time.June, 1)},
	}
	profiles := map[int64][]model.EmploymentRecord{
		1: {{SubjectID: 1, EmployerName: "Acme Corp", Timeframe: "Jan 2018 - Jun 2019"}},
		2: {{SubjectID: 2, EmployerName: "Globex Inc", Timeframe: "Jan 2017 - Dec 2018"}},
	}

	rep, err := newInspector(t, events).Inspect(context.Background(), events, profiles)
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, int64(1), rep.Results[0].SubjectID)
	assert.Equal(t, int64(2), rep.Results[1].SubjectID)
}
