package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_SortsAscendingAndTotals(t *testing.T) {
	works := []AuthorWork{
		{Email: "c@example.com", Name: "C", Hours: 5, Commits: 7},
		{Email: "a@example.com", Name: "A", Hours: 1.5, Commits: 2},
		{Email: "b@example.com", Name: "B", Hours: 3, Commits: 4},
	}

	report := BuildReport(works)

	require.Len(t, report.Authors, 3)
	assert.Equal(t, "a@example.com", report.Authors[0].Email)
	assert.Equal(t, "b@example.com", report.Authors[1].Email)
	assert.Equal(t, "c@example.com", report.Authors[2].Email)
	assert.InDelta(t, 9.5, report.Total.Hours, 1e-9)
	assert.Equal(t, 13, report.Total.Commits)

	// Input is left untouched
	assert.Equal(t, "c@example.com", works[0].Email)
}

func TestBuildReport_StableForEqualHours(t *testing.T) {
	works := []AuthorWork{
		{Email: "first@example.com", Hours: 2},
		{Email: "zero@example.com", Hours: 0},
		{Email: "second@example.com", Hours: 2},
		{Email: "third@example.com", Hours: 2},
	}

	report := BuildReport(works)

	emails := make([]string, 0, len(report.Authors))
	for _, author := range report.Authors {
		emails = append(emails, author.Email)
	}
	assert.Equal(t, []string{
		"zero@example.com",
		"first@example.com",
		"second@example.com",
		"third@example.com",
	}, emails)
}

func TestBuildReport_EqualHoursOrderedByCommits(t *testing.T) {
	works := []AuthorWork{
		{Email: "many@example.com", Hours: 2, Commits: 5},
		{Email: "few@example.com", Hours: 2, Commits: 2},
		{Email: "less@example.com", Hours: 1, Commits: 9},
	}

	report := BuildReport(works)

	require.Len(t, report.Authors, 3)
	assert.Equal(t, "less@example.com", report.Authors[0].Email)
	assert.Equal(t, "few@example.com", report.Authors[1].Email)
	assert.Equal(t, "many@example.com", report.Authors[2].Email)
}

func TestAnalyze_EqualHoursFewerCommitsFirst(t *testing.T) {
	t0 := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	commits := []Commit{
		// a: two 60 minute gaps, 2.0h over three commits
		{SHA: "a1", Author: "A", Email: "a@x.io", Timestamp: t0},
		{SHA: "a2", Author: "A", Email: "a@x.io", Timestamp: t0.Add(60 * time.Minute)},
		{SHA: "a3", Author: "A", Email: "a@x.io", Timestamp: t0.Add(120 * time.Minute)},
		// b: one 300 minute gap, a new session worth 2.0h over two commits
		{SHA: "b1", Author: "B", Email: "b@x.io", Timestamp: t0},
		{SHA: "b2", Author: "B", Email: "b@x.io", Timestamp: t0.Add(300 * time.Minute)},
	}

	report := Analyze(commits, DefaultOptions())

	require.Len(t, report.Authors, 2)
	assert.InDelta(t, report.Authors[0].Hours, report.Authors[1].Hours, 1e-9)
	assert.Equal(t, "b@x.io", report.Authors[0].Email)
	assert.Equal(t, "a@x.io", report.Authors[1].Email)
}

func TestBuildReport_Empty(t *testing.T) {
	report := BuildReport(nil)

	assert.Empty(t, report.Authors)
	assert.Equal(t, Totals{Hours: 0, Commits: 0}, report.Total)
}

func TestAnalyze_SingleAuthorScenario(t *testing.T) {
	t0 := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	commits := []Commit{
		{SHA: "3", Author: "Dana", Email: "dana@example.com", Timestamp: t0.Add(400 * time.Minute)},
		{SHA: "2", Author: "Dana", Email: "dana@example.com", Timestamp: t0.Add(10 * time.Minute)},
		{SHA: "1", Author: "Dana", Email: "dana@example.com", Timestamp: t0},
	}

	report := Analyze(commits, DefaultOptions())

	require.Len(t, report.Authors, 1)
	assert.Equal(t, "Dana", report.Authors[0].Name)
	assert.Equal(t, 3, report.Authors[0].Commits)
	assert.InDelta(t, 2.1667, report.Authors[0].Hours, 1e-4)
	assert.InDelta(t, report.Authors[0].Hours, report.Total.Hours, 1e-9)
	assert.Equal(t, 3, report.Total.Commits)
}

func TestAnalyze_TwoAuthorsWithAlias(t *testing.T) {
	t0 := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	commits := []Commit{
		{SHA: "a1", Author: "Linus", Email: "linus@linux.com", Timestamp: t0},
		{SHA: "a2", Author: "Linus", Email: "linus@torvalds.com", Timestamp: t0.Add(10 * time.Minute)},
		{SHA: "a3", Author: "Linus", Email: "linus@linux.com", Timestamp: t0.Add(400 * time.Minute)},
		{SHA: "b1", Author: "Ann", Email: "ann@example.com", Timestamp: t0},
		{SHA: "b2", Author: "Ann", Email: "ann@example.com", Timestamp: t0.Add(30 * time.Minute)},
	}

	report := Analyze(commits, DefaultOptions())

	require.Len(t, report.Authors, 2)
	assert.Equal(t, "ann@example.com", report.Authors[0].Email)
	assert.InDelta(t, 0.5, report.Authors[0].Hours, 1e-9)
	assert.Equal(t, "linus@linux.com", report.Authors[1].Email)
	assert.Equal(t, 3, report.Authors[1].Commits)
	assert.InDelta(t, 10.0/60+2.0, report.Authors[1].Hours, 1e-9)

	assertConservation(t, report, len(commits))
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	report := Analyze(nil, DefaultOptions())

	assert.Empty(t, report.Authors)
	assert.Equal(t, Totals{}, report.Total)
}

func TestAnalyze_Deterministic(t *testing.T) {
	t0 := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	var commits []Commit
	emails := []string{"a@x.io", "b@x.io", "c@x.io", ""}
	for i := 0; i < 40; i++ {
		commits = append(commits, Commit{
			SHA:       string(rune('a' + i%26)),
			Author:    "dev",
			Email:     emails[i%len(emails)],
			Timestamp: t0.Add(time.Duration(i*i) * 7 * time.Minute),
		})
	}

	first := Analyze(commits, DefaultOptions())
	second := Analyze(commits, DefaultOptions())

	assert.Equal(t, first, second)
	assertConservation(t, first, len(commits))
	for i := 0; i+1 < len(first.Authors); i++ {
		assert.LessOrEqual(t, first.Authors[i].Hours, first.Authors[i+1].Hours)
	}
}

func assertConservation(t *testing.T, report *Report, commitCount int) {
	t.Helper()

	var hours float64
	var commits int
	for _, author := range report.Authors {
		hours += author.Hours
		commits += author.Commits
	}

	assert.Equal(t, commitCount, report.Total.Commits)
	assert.Equal(t, commits, report.Total.Commits)
	assert.InDelta(t, hours, report.Total.Hours, 1e-9)
}
