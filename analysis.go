/*
* Corpus analysis module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import "fmt"

// CorpusStats is the summary derived from one frequency table.
type CorpusStats struct {
	Filename    string  `json:"filename"`
	TotalChars  int     `json:"total_chars"`
	UniqueChars int     `json:"unique_chars"`
	Entropy     float64 `json:"entropy"`
}

// Distribution groups the uniformity measures of the character counts.
type Distribution struct {
	MaxEntropy float64  `json:"max_entropy"`
	Efficiency float64  `json:"efficiency"`
	ChiSquare  float64  `json:"chi_square"`
	KS         KsResult `json:"ks"`
	Counts     Summary  `json:"counts"`
}

type Analysis struct {
	Stats        CorpusStats  `json:"stats"`
	Distribution Distribution `json:"distribution"`
	Classes      []ClassCount `json:"classes"`
	Top          []CharCount  `json:"top"`
}

func NewCorpusStats(counter CharCounter) CorpusStats {
	return CorpusStats{
		Filename:    counter.Filename,
		TotalChars:  counter.CharsRead,
		UniqueChars: len(counter.Counter),
		Entropy:     EntropyEstimation(counter.Counter, counter.CharsRead),
	}
}

// Analyze derives every statistic reported for a frequency table.
func Analyze(counter CharCounter, topN int) (*Analysis, error) {
	corpusStats := NewCorpusStats(counter)

	summary, err := CountSummary(counter.Counter)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize counts: %w", err)
	}

	classes, err := ClassBreakdown(counter.Counter)
	if err != nil {
		return nil, fmt.Errorf("failed to classify characters: %w", err)
	}

	return &Analysis{
		Stats: corpusStats,
		Distribution: Distribution{
			MaxEntropy: MaxEntropy(corpusStats.UniqueChars),
			Efficiency: EntropyEfficiency(corpusStats.Entropy, corpusStats.UniqueChars),
			ChiSquare:  ChiSqTest(counter.Counter, counter.CharsRead),
			KS:         KsTest(counter.Counter, counter.CharsRead),
			Counts:     summary,
		},
		Classes: classes,
		Top:     TopCharacters(counter.Counter, topN),
	}, nil
}
