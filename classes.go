/*
* Character class breakdown module
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

	"github.com/BurntSushi/rure-go"
)

type ClassCount struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
	Distinct    int    `json:"distinct"`
}

type classPattern struct {
	name  string
	regex string
}

// Order matters: a tab is both whitespace and a control character.
var classPatterns = []classPattern{
	{"lowercase", `^\p{Ll}$`},
	{"uppercase", `^\p{Lu}$`},
	{"digit", `^\p{Nd}$`},
	{"whitespace", `^\s$`},
	{"symbol", `^[\p{P}\p{S}]$`},
	{"control", `^\p{C}$`},
}

const otherClass = "other"

type classifier struct {
	names   []string
	regexes []*rure.Regex
}

func newClassifier() (*classifier, error) {
	c := &classifier{}
	for _, pattern := range classPatterns {
		regex, err := rure.Compile(pattern.regex)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for %s: %w", pattern.name, err)
		}
		c.names = append(c.names, pattern.name)
		c.regexes = append(c.regexes, regex)
	}
	return c, nil
}

func (c *classifier) classify(b byte) string {
	char := string(decodeChar(b))
	for i, regex := range c.regexes {
		if regex.IsMatch(char) {
			return c.names[i]
		}
	}
	return otherClass
}

// ClassBreakdown groups the observed characters by Unicode class.
// The result always lists every class, in a fixed order.
func ClassBreakdown(totalCounter map[byte]int) ([]ClassCount, error) {
	c, err := newClassifier()
	if err != nil {
		return nil, err
	}

	result := make([]ClassCount, 0, len(classPatterns)+1)
	index := map[string]int{}
	for _, name := range c.names {
		index[name] = len(result)
		result = append(result, ClassCount{Class: name})
	}
	index[otherClass] = len(result)
	result = append(result, ClassCount{Class: otherClass})

	for i := 0; i < 256; i++ {
		count, ok := totalCounter[byte(i)]
		if !ok {
			continue
		}
		entry := &result[index[c.classify(byte(i))]]
		entry.Occurrences += count
		entry.Distinct++
	}
	return result, nil
}
