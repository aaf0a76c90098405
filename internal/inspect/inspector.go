// Package inspect orchestrates the transition inspection: matching
// acquisition events against profile employment records and reading the
// resulting timelines.
package inspect

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/transition-cli/internal/model"
	"github.com/sells-group/transition-cli/internal/namematch"
	"github.com/sells-group/transition-cli/internal/timeline"
)

// DefaultConcurrency is the worker limit when the caller passes none.
const DefaultConcurrency = 8

// Report is a full inspection run's output: one result row per matched
// event plus the unmatched and faulty side channels.
type Report struct {
	Results   []model.ResultRow
	Unmatched []model.UnmatchedEvent
	Faulty    []model.FaultyRecord
}

// Inspector processes acquisition events against a profile dataset. The
// reference table is built once and shared read-only across workers; each
// worker owns its matcher so the probe cache never crosses goroutines.
type Inspector struct {
	canon       *namematch.Canonicalizer
	ref         namematch.ReferenceTable
	now         time.Time
	concurrency int
	tolerance   int
}

type Option func(*Inspector)

// WithConcurrency caps the number of events processed in parallel.
func WithConcurrency(n int) Option {
	return func(i *Inspector) {
		if n > 0 {
			i.concurrency = n
		}
	}
}

// WithNow pins the clock used for "Present" end dates, for reproducible
// runs and tests.
func WithNow(now time.Time) Option {
	return func(i *Inspector) { i.now = now }
}

// WithTolerance overrides the gap, in months, under which adjacent
// same-category stints merge when building timelines.
func WithTolerance(months int) Option {
	return func(i *Inspector) {
		if months > 0 {
			i.tolerance = months
		}
	}
}

// New builds an Inspector with a reference table covering every distinct
// acquiree and acquirer name in events.
func New(canon *namematch.Canonicalizer, events []model.AcquisitionEvent, opts ...Option) *Inspector {
	names := make([]string, 0, 2*len(events))
	for _, ev := range events {
		names = append(names, ev.AcquireeName, ev.AcquirerName)
	}
	ins := &Inspector{
		canon:       canon,
		ref:         namematch.BuildReferenceTable(canon, names),
		now:         time.Now(),
		concurrency: DefaultConcurrency,
		tolerance:   timeline.DefaultToleranceMonths,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// outcome carries one event's contribution to the report; exactly one of
// row/unmatched is set unless the event was skipped as faulty.
type outcome struct {
	row       *model.ResultRow
	unmatched *model.UnmatchedEvent
	faulty    []model.FaultyRecord
}

// Inspect runs every event against the profile records, grouped by subject
// ID. Events fan out across workers; the report preserves input event
// order regardless of completion order.
func (ins *Inspector) Inspect(ctx context.Context, events []model.AcquisitionEvent, profiles map[int64][]model.EmploymentRecord) (*Report, error) {
	outcomes := make([]outcome, len(events))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(ins.concurrency)
	for i, ev := range events {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			outcomes[i] = ins.inspectEvent(ev, profiles[ev.SubjectID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "inspect: run events")
	}

	rep := &Report{}
	for _, out := range outcomes {
		rep.Faulty = append(rep.Faulty, out.faulty...)
		if out.unmatched != nil {
			rep.Unmatched = append(rep.Unmatched, *out.unmatched)
		}
		if out.row != nil {
			rep.Results = append(rep.Results, *out.row)
		}
	}
	zap.L().Info("inspection complete",
		zap.Int("events", len(events)),
		zap.Int("matched", len(rep.Results)),
		zap.Int("unmatched", len(rep.Unmatched)),
		zap.Int("faulty", len(rep.Faulty)))
	return rep, nil
}

func (ins *Inspector) inspectEvent(ev model.AcquisitionEvent, recs []model.EmploymentRecord) outcome {
	var out outcome
	if len(recs) == 0 {
		out.faulty = append(out.faulty, model.FaultyRecord{
			SubjectID: ev.SubjectID,
			Cause:     "no profile records for subject",
		})
		return out
	}

	sorted := make([]model.EmploymentRecord, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EmployerName < sorted[j].EmployerName
	})

	matcher := namematch.NewMatcher(ins.canon, ins.ref)
	var acquiree, acquirer, other []model.EmploymentRecord
	for _, rec := range sorted {
		if strings.TrimSpace(rec.EmployerName) == "" {
			out.faulty = append(out.faulty, model.FaultyRecord{
				SubjectID: ev.SubjectID,
				Cause:     "empty employer name",
			})
			continue
		}
		if _, ok := matcher.Match(rec.EmployerName, ev.AcquireeName); ok {
			acquiree = append(acquiree, rec)
		} else if _, ok := matcher.Match(rec.EmployerName, ev.AcquirerName); ok {
			acquirer = append(acquirer, rec)
		} else {
			other = append(other, rec)
		}
	}

	ref := profileRef(sorted)
	if len(acquiree) == 0 && len(acquirer) == 0 {
		out.unmatched = &model.UnmatchedEvent{
			SubjectID:  ev.SubjectID,
			ProfileRef: ref,
			Acquiree:   ev.AcquireeName,
			Acquirer:   ev.AcquirerName,
			Employers:  distinctEmployers(sorted),
		}
		return out
	}

	builder := timeline.NewBuilder(ins.now)
	builder.ToleranceMonths = ins.tolerance
	tl := builder.Build(acquiree, acquirer, other)
	out.row = ins.buildRow(ev, ref, tl)
	return out
}

func (ins *Inspector) buildRow(ev model.AcquisitionEvent, ref string, tl []model.Interval) *model.ResultRow {
	row := &model.ResultRow{
		SubjectID:  ev.SubjectID,
		ProfileRef: ref,
		AcqDate:    ev.Date,
		Acquiree:   ev.AcquireeName,
		Acquirer:   ev.AcquirerName,
	}

	w := timeline.LocateWindow(tl, ev.Date)
	if cur := w.Summarize(); cur != nil {
		row.CurEmployer = cur.Employer
		row.CurJobStart = timePtr(cur.Start)
		row.CurJobEnd = timePtr(cur.End)
	}
	if next := timeline.Future(w.Next, ev.Date); next != nil {
		row.NextEmployer = next.Employer
		row.NextJobStart = timePtr(next.Start)
		row.DaysToNextJob = intPtr(next.DaysTo)
		row.MonthsToNextJob = intPtr(next.MonthsTo)
	}
	if second := timeline.Future(w.SecondNext, ev.Date); second != nil {
		row.SecondNextEmployer = second.Employer
		row.SecondNextJobStart = timePtr(second.Start)
		row.DaysToSecondNextJob = intPtr(second.DaysTo)
		row.MonthsToSecondNextJob = intPtr(second.MonthsTo)
	}

	spans := timeline.BuildSpanReport(tl, ev.Date)
	row.AcquireeInProfile, row.AcquireeTimeframe = timeline.RenderSpans(spans.AcquireePost, ins.now)
	row.AcquirerInProfile, row.AcquirerTimeframe = timeline.RenderSpans(spans.AcquirerPost, ins.now)
	row.AcquireeInProfilePrior, row.AcquireeTimeframePrior = timeline.RenderSpans(spans.AcquireePrior, ins.now)
	row.AcquirerInProfilePrior, row.AcquirerTimeframePrior = timeline.RenderSpans(spans.AcquirerPrior, ins.now)
	return row
}

// profileRef extracts the short profile handle from the first record that
// carries a profile URL ("…/in/<handle>").
func profileRef(recs []model.EmploymentRecord) string {
	for _, rec := range recs {
		if rec.ProfileURL == "" {
			continue
		}
		if _, after, ok := strings.Cut(rec.ProfileURL, "/in/"); ok {
			return strings.Trim(after, "/")
		}
		return rec.ProfileURL
	}
	return ""
}

func distinctEmployers(recs []model.EmploymentRecord) []string {
	seen := make(map[string]struct{}, len(recs))
	var out []string
	for _, rec := range recs {
		name := strings.TrimSpace(rec.EmployerName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(n int) *int              { return &n }
