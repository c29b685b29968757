/*
* Chi-square uniformity test module
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

// ChiSqTest measures how far the character counts are from a uniform
// distribution over the characters actually observed.
func ChiSqTest(totalCounter map[byte]int, readCharsCount int) float64 {
	unique := len(totalCounter)
	if unique <= 1 || readCharsCount <= 0 {
		return 0
	}

	expected := float64(readCharsCount) / float64(unique)

	var chiSquare, observed float64
	for i := 0; i < 256; i++ {
		count, ok := totalCounter[byte(i)]
		if !ok {
			continue
		}
		observed = float64(count)
		chiSquare += math.Pow(observed-expected, 2) / expected
	}
	return chiSquare
}
