/*
* Character count summary statistics
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

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the spread of per-character counts.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P90    float64 `json:"p90"`
}

func countsAsFloats(totalCounter map[byte]int) stats.Float64Data {
	data := make(stats.Float64Data, 0, len(totalCounter))
	for i := 0; i < 256; i++ {
		if count, ok := totalCounter[byte(i)]; ok {
			data = append(data, float64(count))
		}
	}
	return data
}

func CountSummary(totalCounter map[byte]int) (Summary, error) {
	data := countsAsFloats(totalCounter)
	if len(data) == 0 {
		return Summary{}, nil
	}

	var summary Summary
	var err error

	if summary.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("mean calc error: %w", err)
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("median calc error: %w", err)
	}
	if summary.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, fmt.Errorf("standard deviation calc error: %w", err)
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("min calc error: %w", err)
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("max calc error: %w", err)
	}
	if summary.P90, err = stats.Percentile(data, 90); err != nil {
		return Summary{}, fmt.Errorf("percentile calc error: %w", err)
	}
	return summary, nil
}
