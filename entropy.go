/*
* Entropy estimation module
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

// EntropyEstimation returns the Shannon entropy in bits per character.
// Empty input yields 0.
func EntropyEstimation(totalCounter map[byte]int, readCharsCount int) float64 {
	if readCharsCount <= 0 {
		return 0
	}

	var p, entropy float64
	for i := 0; i < 256; i++ {
		count := totalCounter[byte(i)]
		if count <= 0 {
			continue
		}
		p = float64(count) / float64(readCharsCount)
		entropy += p * math.Log2(p)
	}
	if entropy == 0 {
		return 0
	}
	return -entropy
}

// MaxEntropy is log2 of the alphabet size.
func MaxEntropy(unique int) float64 {
	if unique <= 1 {
		return 0
	}
	return math.Log2(float64(unique))
}

// EntropyEfficiency is the entropy normalized by MaxEntropy.
func EntropyEfficiency(entropy float64, unique int) float64 {
	maxEntropy := MaxEntropy(unique)
	if maxEntropy == 0 {
		return 0
	}
	return entropy / maxEntropy
}
