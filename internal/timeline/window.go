package timeline

import (
	"strings"
	"time"

	"github.com/sells-group/transition-cli/internal/model"
)

// Window is the slice of a timeline surrounding an acquisition date: the
// intervals covering the date, the first subsequent job in a different
// category, and the job after that.
type Window struct {
	Current    []model.Interval
	Next       *model.Interval
	SecondNext *model.Interval
}

// CurrentJob summarizes the covering intervals into one reportable stint.
type CurrentJob struct {
	Employer string
	Category model.Category
	Start    time.Time
	End      time.Time
}

// FutureJob is a post-acquisition stint with its distance from the
// acquisition date.
type FutureJob struct {
	Employer string
	Start    time.Time
	DaysTo   int
	MonthsTo int
}

// LocateWindow finds the intervals relevant to an acquisition date. An
// interval covers the date when it starts strictly before and ends on or
// after it. The next job is the first interval starting on or after the
// date in a different category than the last member of the current set;
// intervals matching that category fold into the current job instead. The
// second next job is the first later interval starting strictly after the
// next job ends. Without a covering interval there is no next job either.
func LocateWindow(tl []model.Interval, acqDate time.Time) Window {
	var w Window
	for i := range tl {
		iv := tl[i]
		if iv.Start.Before(acqDate) && !acqDate.After(iv.End) {
			w.Current = append(w.Current, iv)
		}
	}
	if len(w.Current) == 0 {
		return w
	}

	nextIdx := -1
	// The comparison category follows the newest current-set member, so a
	// mixed covering set hinges on whichever interval was appended last.
	cat := w.Current[len(w.Current)-1].Category
	for i := range tl {
		iv := tl[i]
		if iv.Start.Before(acqDate) {
			continue
		}
		if iv.Category == cat {
			w.Current = append(w.Current, iv)
			continue
		}
		w.Next = &tl[i]
		nextIdx = i
		break
	}
	if w.Next == nil {
		return w
	}

	for i := nextIdx + 1; i < len(tl); i++ {
		if tl[i].Start.After(w.Next.End) {
			w.SecondNext = &tl[i]
			break
		}
	}
	return w
}

// Summarize flattens the covering intervals into a single stint: distinct
// employer labels joined with " | " (commas stripped so the label stays a
// single CSV field), the earliest start and the latest end.
func (w Window) Summarize() *CurrentJob {
	if len(w.Current) == 0 {
		return nil
	}
	job := &CurrentJob{
		Category: w.Current[0].Category,
		Start:    w.Current[0].Start,
		End:      w.Current[0].End,
	}
	var labels []string
	for _, iv := range w.Current {
		for _, l := range strings.Split(iv.Label(), " | ") {
			l = strings.ReplaceAll(l, ",", "")
			if !hasLabel(job.Employer, l) {
				labels = append(labels, l)
				job.Employer = strings.Join(labels, " | ")
			}
		}
		if iv.Start.Before(job.Start) {
			job.Start = iv.Start
		}
		if iv.End.After(job.End) {
			job.End = iv.End
		}
	}
	return job
}

// Future measures an interval's distance from the acquisition date.
func Future(iv *model.Interval, acqDate time.Time) *FutureJob {
	if iv == nil {
		return nil
	}
	return &FutureJob{
		Employer: iv.Label(),
		Start:    iv.Start,
		DaysTo:   DaysBetween(iv.Start, acqDate),
		MonthsTo: MonthsBetween(iv.Start, acqDate),
	}
}
