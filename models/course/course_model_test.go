package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDays(n int) []CourseDay {
	days := make([]CourseDay, 0, n)
	for i := 1; i <= n; i++ {
		days = append(days, CourseDay{DayNumber: i, Title: "Day"})
	}
	return days
}

func TestCourseDayCap(t *testing.T) {
	c := &Course{Title: "Capped"}

	require.NoError(t, c.SetDays(makeDays(5)))
	assert.NoError(t, c.BeforeSave(nil))

	require.NoError(t, c.SetDays(makeDays(6)))
	assert.EqualError(t, c.BeforeSave(nil), "course cannot have more than 5 days")
}

func TestCourseDayNumberBounds(t *testing.T) {
	c := &Course{Title: "Bounds"}

	require.NoError(t, c.SetDays([]CourseDay{{DayNumber: 0, Title: "Zero"}}))
	assert.Error(t, c.BeforeSave(nil))

	require.NoError(t, c.SetDays([]CourseDay{{DayNumber: 6, Title: "Six"}}))
	assert.Error(t, c.BeforeSave(nil))
}

func TestFindDay(t *testing.T) {
	c := &Course{}
	require.NoError(t, c.SetDays(makeDays(3)))

	day := c.FindDay(2)
	require.NotNil(t, day)
	assert.Equal(t, 2, day.DayNumber)

	assert.Nil(t, c.FindDay(4))
}

func TestEnrollmentCompletedDayHelpers(t *testing.T) {
	e := &Enrollment{}

	assert.Empty(t, e.CompletedDayList())
	assert.False(t, e.HasCompletedDay(1))

	assert.True(t, e.AddCompletedDay(1))
	assert.True(t, e.AddCompletedDay(3))
	assert.False(t, e.AddCompletedDay(1))

	assert.Equal(t, []int{1, 3}, e.CompletedDayList())
	assert.True(t, e.HasCompletedDay(3))
	assert.False(t, e.HasCompletedDay(2))
}
