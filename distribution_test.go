package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChiSqTest(t *testing.T) {
	assert.Equal(t, 0.0, ChiSqTest(map[byte]int{}, 0))
	assert.Equal(t, 0.0, ChiSqTest(map[byte]int{'a': 10}, 10))
	assert.Equal(t, 0.0, ChiSqTest(map[byte]int{'a': 2, 'b': 2, 'c': 2, 'd': 2}, 8))

	// expected 5 each: (8-5)^2/5 + (2-5)^2/5 = 3.6
	assert.InDelta(t, 3.6, ChiSqTest(map[byte]int{'a': 8, 'b': 2}, 10), 1e-12)
}

func TestKsTest(t *testing.T) {
	assert.Equal(t, KsResult{}, KsTest(map[byte]int{}, 0))

	uniform := KsTest(map[byte]int{'a': 2, 'b': 2, 'c': 2, 'd': 2}, 8)
	assert.InDelta(t, 0.0, uniform.Statistic, 1e-12)

	skewed := KsTest(map[byte]int{'a': 9, 'b': 1}, 10)
	assert.InDelta(t, 0.4, skewed.Statistic, 1e-12)
	assert.Equal(t, byte('a'), skewed.MaxDiffChar)
	assert.Greater(t, skewed.CriticalValue001, skewed.CriticalValue005)
}

func TestCountSummary(t *testing.T) {
	summary, err := CountSummary(map[byte]int{'a': 1, 'b': 2, 'c': 3, 'd': 4})
	require.NoError(t, err)

	assert.InDelta(t, 2.5, summary.Mean, 1e-12)
	assert.InDelta(t, 2.5, summary.Median, 1e-12)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 4.0, summary.Max)
	assert.Greater(t, summary.StdDev, 0.0)
	assert.GreaterOrEqual(t, summary.P90, summary.Median)
}

func TestCountSummary_Empty(t *testing.T) {
	summary, err := CountSummary(map[byte]int{})
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}

func TestClassBreakdown(t *testing.T) {
	counter := map[byte]int{
		'a':  3,
		'z':  1,
		'Q':  2,
		'7':  4,
		' ':  1,
		'\t': 1,
		'!':  5,
		'$':  1,
		0x01: 1,
		0xe9: 2, // é
		0xb2: 1, // ²
	}

	classes, err := ClassBreakdown(counter)
	require.NoError(t, err)

	byName := map[string]ClassCount{}
	var names []string
	total := 0
	for _, c := range classes {
		byName[c.Class] = c
		names = append(names, c.Class)
		total += c.Occurrences
	}

	assert.Equal(t, []string{"lowercase", "uppercase", "digit", "whitespace", "symbol", "control", "other"}, names)
	assert.Equal(t, ClassCount{Class: "lowercase", Occurrences: 6, Distinct: 3}, byName["lowercase"])
	assert.Equal(t, ClassCount{Class: "uppercase", Occurrences: 2, Distinct: 1}, byName["uppercase"])
	assert.Equal(t, ClassCount{Class: "digit", Occurrences: 4, Distinct: 1}, byName["digit"])
	assert.Equal(t, ClassCount{Class: "whitespace", Occurrences: 2, Distinct: 2}, byName["whitespace"])
	assert.Equal(t, ClassCount{Class: "symbol", Occurrences: 6, Distinct: 2}, byName["symbol"])
	assert.Equal(t, ClassCount{Class: "control", Occurrences: 1, Distinct: 1}, byName["control"])
	assert.Equal(t, ClassCount{Class: "other", Occurrences: 1, Distinct: 1}, byName["other"])
	assert.Equal(t, sumCounts(counter), total)
}

func TestClassBreakdown_Empty(t *testing.T) {
	classes, err := ClassBreakdown(nil)
	require.NoError(t, err)
	require.Len(t, classes, 7)
	for _, c := range classes {
		assert.Zero(t, c.Occurrences)
		assert.Zero(t, c.Distinct)
	}
}

func TestAnalyze(t *testing.T) {
	counter := CharCounter{
		Filename:  "passwords.txt",
		Counter:   map[byte]int{'a': 2, 'b': 2, 'c': 2, 'd': 2},
		CharsRead: 8,
		BytesRead: 8,
	}

	analysis, err := Analyze(counter, 3)
	require.NoError(t, err)

	assert.Equal(t, CorpusStats{Filename: "passwords.txt", TotalChars: 8, UniqueChars: 4, Entropy: 2.0}, analysis.Stats)
	assert.Equal(t, 2.0, analysis.Distribution.MaxEntropy)
	assert.Equal(t, 1.0, analysis.Distribution.Efficiency)
	assert.Equal(t, 0.0, analysis.Distribution.ChiSquare)
	assert.Len(t, analysis.Top, 3)
	assert.Len(t, analysis.Classes, 7)
}

func TestAnalyze_Empty(t *testing.T) {
	analysis, err := Analyze(CharCounter{Filename: "empty.txt", Counter: map[byte]int{}}, 30)
	require.NoError(t, err)

	assert.Equal(t, 0.0, analysis.Stats.Entropy)
	assert.Equal(t, 0, analysis.Stats.TotalChars)
	assert.Empty(t, analysis.Top)
}
