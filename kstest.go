/*
* Kolmogorov-Smirnov test module
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
	"math"
)

// KsResult holds the largest deviation between the empirical CDF and a
// uniform CDF over the observed alphabet, ordered by byte value.
type KsResult struct {
	Statistic        float64 `json:"statistic"`
	MaxDiffChar      byte    `json:"max_diff_char"`
	CriticalValue001 float64 `json:"critical_value_001"`
	CriticalValue005 float64 `json:"critical_value_005"`
}

func KsTest(totalCounter map[byte]int, readCharsCount int) KsResult {
	unique := len(totalCounter)
	if unique == 0 || readCharsCount <= 0 {
		return KsResult{}
	}

	var empiricalCumSum, theoreticalCumSum float64
	var result KsResult
	step := 1 / float64(unique)

	for i := 0; i < 256; i++ {
		count, ok := totalCounter[byte(i)]
		if !ok {
			continue
		}
		empiricalCumSum += float64(count) / float64(readCharsCount)
		theoreticalCumSum += step
		diff := math.Abs(empiricalCumSum - theoreticalCumSum)
		if diff > result.Statistic {
			result.Statistic = diff
			result.MaxDiffChar = byte(i)
		}
	}

	result.CriticalValue001 = 1.63 / math.Sqrt(float64(readCharsCount))
	result.CriticalValue005 = 1.36 / math.Sqrt(float64(readCharsCount))
	return result
}
