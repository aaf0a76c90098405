package timeline

import (
	"strings"
	"time"

	"github.com/sells-group/transition-cli/internal/model"
)

// Span is one contiguous run of same-category employment, on one side of the
// acquisition date.
type Span struct {
	Employers []string
	Start     time.Time
	End       time.Time
}

// SpanReport collects the subject's acquiree and acquirer stints, split into
// those ending strictly before the acquisition date and those reaching it or
// beyond.
type SpanReport struct {
	AcquireePrior []Span
	AcquireePost  []Span
	AcquirerPrior []Span
	AcquirerPost  []Span
}

// spanAccumulator folds adjacent same-side intervals of one category into
// spans. It is either empty or holds one open span; appending an interval
// that cannot extend the open span flushes it first.
type spanAccumulator struct {
	open  bool
	prior bool
	span  Span

	priorOut *[]Span
	postOut  *[]Span
}

// append feeds the accumulator the next interval of its category. adjacent
// reports whether the interval immediately followed another interval of the
// same category on the full timeline; only adjacent intervals on the same
// side of the acquisition date extend the open span.
func (a *spanAccumulator) append(iv model.Interval, prior, adjacent bool) {
	if a.open && (a.prior != prior || !adjacent) {
		a.flush()
	}
	if !a.open {
		a.open = true
		a.prior = prior
		a.span = Span{Employers: []string{iv.Employer}, Start: iv.Start, End: iv.End}
		return
	}
	a.span.End = iv.End
	if !containsString(a.span.Employers, iv.Employer) {
		a.span.Employers = append(a.span.Employers, iv.Employer)
	}
}

// flush emits the open span, if any, onto its side's list and resets the
// accumulator to empty.
func (a *spanAccumulator) flush() {
	if !a.open {
		return
	}
	if a.prior {
		*a.priorOut = append(*a.priorOut, a.span)
	} else {
		*a.postOut = append(*a.postOut, a.span)
	}
	a.open = false
	a.span = Span{}
}

// BuildSpanReport partitions the merged timeline around the acquisition
// date and merges each partition's acquiree and acquirer intervals into
// spans. An interval belongs to the prior partition when it ends strictly
// before the acquisition date; crossing the partition boundary forces a
// flush, as does any break in same-category adjacency.
func BuildSpanReport(tl []model.Interval, acqDate time.Time) SpanReport {
	var rep SpanReport
	acquiree := spanAccumulator{priorOut: &rep.AcquireePrior, postOut: &rep.AcquireePost}
	acquirer := spanAccumulator{priorOut: &rep.AcquirerPrior, postOut: &rep.AcquirerPost}

	for i, iv := range tl {
		prior := iv.End.Before(acqDate)
		adjacent := i > 0 && tl[i-1].Category == iv.Category
		switch iv.Category {
		case model.CategoryAcquiree:
			acquiree.append(iv, prior, adjacent)
		case model.CategoryAcquirer:
			acquirer.append(iv, prior, adjacent)
		}
	}
	acquiree.flush()
	acquirer.flush()
	return rep
}

// RenderSpans flattens a span list into the two parallel report strings:
// the employer names and the "mm/yyyy - mm/yyyy" timeframes, each joined
// by " | ". An end date in the current year renders as "Present".
func RenderSpans(spans []Span, now time.Time) (employers, timeframes string) {
	if len(spans) == 0 {
		return "", ""
	}
	names := make([]string, 0, len(spans))
	frames := make([]string, 0, len(spans))
	for _, sp := range spans {
		names = append(names, strings.Join(sp.Employers, " | "))
		frames = append(frames, FormatDate(sp.Start, now)+" - "+FormatDate(sp.End, now))
	}
	return strings.Join(names, " | "), strings.Join(frames, " | ")
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
