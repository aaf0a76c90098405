package timeline

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/transition-cli/internal/model"
)

// DefaultToleranceMonths is the gap, in average-length months, below which
// two same-category stints are merged into one interval.
const DefaultToleranceMonths = 3

// Builder turns categorized employment records into a merged, ordered
// timeline. Now anchors "Present" end dates and the report date format.
type Builder struct {
	Now             time.Time
	ToleranceMonths int
}

func NewBuilder(now time.Time) *Builder {
	return &Builder{Now: now, ToleranceMonths: DefaultToleranceMonths}
}

// Build parses and merges the three category record sets into a single
// timeline sorted by start date. Records whose timeframe does not parse are
// dropped with a debug log; an otherwise-empty timeline is a valid result.
func (b *Builder) Build(acquiree, acquirer, other []model.EmploymentRecord) []model.Interval {
	merged := make([]model.Interval, 0, len(acquiree)+len(acquirer)+len(other))
	merged = append(merged, b.mergeCategory(model.CategoryAcquiree, acquiree)...)
	merged = append(merged, b.mergeCategory(model.CategoryAcquirer, acquirer)...)
	merged = append(merged, b.mergeCategory(model.CategoryOther, other)...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Start.Before(merged[j].Start)
	})
	return merged
}

// mergeCategory parses one category's records, orders them by start date and
// folds stints separated by less than the tolerance into single intervals.
// OTHER intervals accumulate every distinct employer label they absorb.
func (b *Builder) mergeCategory(cat model.Category, recs []model.EmploymentRecord) []model.Interval {
	intervals := make([]model.Interval, 0, len(recs))
	for _, rec := range recs {
		start, end, err := ParseTimeframe(rec.Timeframe, b.Now)
		if err != nil {
			zap.L().Debug("dropping record with unparseable timeframe",
				zap.Int64("subject_id", rec.SubjectID),
				zap.String("employer", rec.EmployerName),
				zap.String("timeframe", rec.Timeframe))
			continue
		}
		intervals = append(intervals, model.Interval{
			Category: cat,
			Employer: rec.EmployerName,
			Start:    start,
			End:      end,
		})
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})

	tol := b.ToleranceMonths
	if tol <= 0 {
		tol = DefaultToleranceMonths
	}

	merged := make([]model.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if len(merged) == 0 {
			merged = append(merged, iv)
			continue
		}
		last := &merged[len(merged)-1]
		// Separate interval when the gap since the previous stint is at
		// least the tolerance; otherwise the previous stint swallows it.
		if !last.End.After(subtractMonths(iv.Start, tol)) {
			merged = append(merged, iv)
			continue
		}
		last.End = iv.End
		if cat == model.CategoryOther && !hasLabel(last.Employer, iv.Employer) {
			last.Employer += " | " + iv.Employer
		}
	}
	return merged
}

func hasLabel(joined, label string) bool {
	for _, l := range strings.Split(joined, " | ") {
		if l == label {
			return true
		}
	}
	return false
}
