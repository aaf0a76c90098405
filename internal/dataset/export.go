package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/transition-cli/internal/model"
	"github.com/sells-group/transition-cli/internal/timeline"
)

// resultColumns defines the ordered result CSV output columns.
var resultColumns = []string{
	"aid",
	"profile",
	"acquisition_date",
	"cur_employer",
	"cur_job_start",
	"cur_job_end",
	"next_employer",
	"next_job_start",
	"days_to_next_job",
	"months_to_next_job",
	"second_next_employer",
	"second_next_job_start",
	"days_to_second_next_job",
	"months_to_second_next_job",
	"acquiree",
	"acquiree_in_profile",
	"acquiree_timeframe",
	"acquirer",
	"acquirer_in_profile",
	"acquirer_timeframe",
	"acquiree_in_profile_prior_acq",
	"acquiree_timeframe_prior_acq",
	"acquirer_in_profile_prior_acq",
	"acquirer_timeframe_prior_acq",
}

var unmatchedColumns = []string{"aid", "profile", "acquiree", "acquirer", "employers"}

var faultyColumns = []string{"aid", "cause"}

// OutputPaths are the three report files of one run, named
// "<group>__<kind>_<timestamp>.csv" under the output directory.
type OutputPaths struct {
	Results   string
	Unmatched string
	Faulty    string
}

// BuildOutputPaths derives the run's file names from the group label and
// start time.
func BuildOutputPaths(dir, group string, ts time.Time) OutputPaths {
	stamp := ts.Format("20060102_150405")
	name := func(kind string) string {
		return filepath.Join(dir, fmt.Sprintf("%s__%s_%s.csv", group, kind, stamp))
	}
	return OutputPaths{
		Results:   name("employment_continuity_by_acquisition"),
		Unmatched: name("unmatched_acquisitions"),
		Faulty:    name("faulty_records"),
	}
}

// WriteResults writes the per-event result rows as a CSV file. Dates render
// as "mm/yyyy", or "Present" when the year equals now's year.
func WriteResults(rows []model.ResultRow, path string, now time.Time) error {
	return writeCSV(path, resultColumns, len(rows), func(i int) []string {
		return buildResultRow(rows[i], now)
	})
}

// WriteUnmatched writes the unmatched-event side channel.
func WriteUnmatched(events []model.UnmatchedEvent, path string) error {
	return writeCSV(path, unmatchedColumns, len(events), func(i int) []string {
		ev := events[i]
		return []string{
			strconv.FormatInt(ev.SubjectID, 10),
			ev.ProfileRef,
			ev.Acquiree,
			ev.Acquirer,
			strings.Join(ev.Employers, " | "),
		}
	})
}

// WriteFaulty writes the faulty-record diagnostics side channel.
func WriteFaulty(recs []model.FaultyRecord, path string) error {
	return writeCSV(path, faultyColumns, len(recs), func(i int) []string {
		return []string{strconv.FormatInt(recs[i].SubjectID, 10), recs[i].Cause}
	})
}

func writeCSV(path string, columns []string, n int, row func(int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush")
	}
	return nil
}

// buildResultRow maps a ResultRow to its CSV row.
func buildResultRow(r model.ResultRow, now time.Time) []string {
	return []string{
		strconv.FormatInt(r.SubjectID, 10),        // aid
		r.ProfileRef,                              // profile
		r.AcqDate.Format("2006-01-02"),            // acquisition_date
		r.CurEmployer,                             // cur_employer
		fmtDatePtr(r.CurJobStart, now),            // cur_job_start
		fmtDatePtr(r.CurJobEnd, now),              // cur_job_end
		r.NextEmployer,                            // next_employer
		fmtDatePtr(r.NextJobStart, now),           // next_job_start
		fmtIntPtr(r.DaysToNextJob),                // days_to_next_job
		fmtIntPtr(r.MonthsToNextJob),              // months_to_next_job
		r.SecondNextEmployer,                      // second_next_employer
		fmtDatePtr(r.SecondNextJobStart, now),     // second_next_job_start
		fmtIntPtr(r.DaysToSecondNextJob),          // days_to_second_next_job
		fmtIntPtr(r.MonthsToSecondNextJob),        // months_to_second_next_job
		r.Acquiree,                                // acquiree
		r.AcquireeInProfile,                       // acquiree_in_profile
		r.AcquireeTimeframe,                       // acquiree_timeframe
		r.Acquirer,                                // acquirer
		r.AcquirerInProfile,                       // acquirer_in_profile
		r.AcquirerTimeframe,                       // acquirer_timeframe
		r.AcquireeInProfilePrior,                  // acquiree_in_profile_prior_acq
		r.AcquireeTimeframePrior,                  // acquiree_timeframe_prior_acq
		r.AcquirerInProfilePrior,                  // acquirer_in_profile_prior_acq
		r.AcquirerTimeframePrior,                  // acquirer_timeframe_prior_acq
	}
}

func fmtDatePtr(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	return timeline.FormatDate(*t, now)
}

func fmtIntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
