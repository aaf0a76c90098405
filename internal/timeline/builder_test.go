package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/transition-cli/internal/model"
)

func rec(employer, timeframe string) model.EmploymentRecord {
	return model.EmploymentRecord{SubjectID: 1, EmployerName: employer, Timeframe: timeframe}
}

func TestBuilder_MergeWithinTolerance(t *testing.T) {
	b := NewBuilder(date(2020, time.May, 15))

	// two-month gap between stints merges into a single interval
	tl := b.Build(nil, nil, []model.EmploymentRecord{
		rec("Alpha", "Jan 2010 - Jun 2010"),
		rec("Beta", "Aug 2010 - Dec 2010"),
	})
	require.Len(t, tl, 1)
	assert.Equal(t, model.CategoryOther, tl[0].Category)
	assert.Equal(t, "Alpha | Beta", tl[0].Employer)
	assert.Equal(t, date(2010, time.January, 1), tl[0].Start)
	assert.Equal(t, date(2010, time.December, 1), tl[0].End)
}

func TestBuilder_SeparateBeyondTolerance(t *testing.T) {
	b := NewBuilder(date(2020, time.May, 15))

	// four-month gap stays two intervals
	tl := b.Build(nil, nil, []model.EmploymentRecord{
		rec("Alpha", "Jan 2010 - Jun 2010"),
		rec("Beta", "Oct 2010 - Dec 2010"),
	})
	require.Len(t, tl, 2)
	assert.Equal(t, "Alpha", tl[0].Employer)
	assert.Equal(t, "Beta", tl[1].Employer)
}

func TestBuilder_CategoriesMergeIndependently(t *testing.T) {
	b := NewBuilder(date(2020, time.May, 15))

	// the acquiree stint sits inside the gap between the two other-category
	// stints but must not bridge them
	tl := b.Build(
		[]model.EmploymentRecord{rec("Acme", "Feb 2011 - Aug 2011")},
		nil,
		[]model.EmploymentRecord{
			rec("Alpha", "Jan 2010 - Dec 2010"),
			rec("Beta", "Jan 2012 - Jun 2012"),
		},
	)
	require.Len(t, tl, 3)
	assert.Equal(t, model.CategoryOther, tl[0].Category)
	assert.Equal(t, model.CategoryAcquiree, tl[1].Category)
	assert.Equal(t, model.CategoryOther, tl[2].Category)
}

func TestBuilder_SortedByStart(t *testing.T) {
	b := NewBuilder(date(2020, time.May, 15))

	tl := b.Build(
		[]model.EmploymentRecord{rec("Acme", "Jan 2018 - Jun 2019")},
		[]model.EmploymentRecord{rec("MegaCorp", "Aug 2019 - Present")},
		[]model.EmploymentRecord{rec("Globex", "Jan 2012 - Jun 2014")},
	)
	require.Len(t, tl, 3)
	for i := 1; i < len(tl); i++ {
		assert.False(t, tl[i].Start.Before(tl[i-1].Start))
	}
	assert.Equal(t, "Globex", tl[0].Employer)
}

func TestBuilder_DropsUnparseableTimeframes(t *testing.T) {
	b := NewBuilder(date(2020, time.May, 15))

	tl := b.Build(nil, nil, []model.EmploymentRecord{
		rec("Alpha", "garbage"),
		rec("Beta", "Jan 2015 - Jun 2016"),
	})
	require.Len(t, tl, 1)
	assert.Equal(t, "Beta", tl[0].Employer)
}

func TestBuilder_AcquireeLabelStaysSingle(t *testing.T) {
	b := NewBuilder(date(2020, time.May, 15))

	// only the other category accumulates labels on merge
	tl := b.Build([]model.EmploymentRecord{
		rec("Acme Corp", "Jan 2015 - Jun 2016"),
		rec("Acme Corporation", "Jul 2016 - Dec 2017"),
	}, nil, nil)
	require.Len(t, tl, 1)
	assert.Equal(t, "Acme Corp", tl[0].Employer)
	assert.Equal(t, date(2017, time.December, 1), tl[0].End)
}
