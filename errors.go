/*
* Error types
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
	"errors"
	"fmt"
)

// ErrEmptyDistribution is returned by the chart renderer when there is nothing to plot.
var ErrEmptyDistribution = errors.New("frequency map is empty")

// FileNotFoundError means the input path does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("the file '%s' was not found", e.Path)
}

// ReadError wraps any other failure while opening or reading the input.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("an unexpected error occurred while reading '%s': %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("an unexpected error occurred while reading '%s'", e.Path)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
