/*
* Common functions library
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/text/encoding/charmap"
)

const defaultBlockSize = 4096

// CharCounter is the frequency table of one input. Newline bytes are never counted.
type CharCounter struct {
	Filename  string
	Counter   map[byte]int
	CharsRead int
	BytesRead int
}

// ProgressFunc receives the number of raw bytes read so far.
type ProgressFunc func(readBytesCount int)

func printProgress(w io.Writer) ProgressFunc {
	return func(readBytesCount int) {
		_, _ = fmt.Fprintf(w, "%.1f MB\r", float32(readBytesCount)/1048576)
	}
}

func isNewline(b byte) bool {
	return b == '\n' || b == '\r'
}

// decodeChar maps a byte to its ISO-8859-1 character. Every byte is valid.
func decodeChar(b byte) rune {
	return charmap.ISO8859_1.DecodeByte(b)
}

func countChars(data []byte) map[byte]int {
	counter := make(map[byte]int)
	for _, b := range data {
		if isNewline(b) {
			continue
		}
		counter[b]++
	}
	return counter
}

func mergeCounterLists(counter1 map[byte]int, counter2 map[byte]int) map[byte]int {
	result := map[byte]int{}
	for k, v := range counter1 {
		result[k] += v
	}
	for k, v := range counter2 {
		result[k] += v
	}
	return result
}

func sumCounts(counter map[byte]int) int {
	total := 0
	for _, v := range counter {
		total += v
	}
	return total
}

// CountChars reads r sequentially in chunks of at most blockSize bytes and
// accumulates character frequencies. Only the counts are kept.
func CountChars(r io.Reader, blockSize int, progress ProgressFunc) (CharCounter, error) {
	if blockSize < 1 {
		blockSize = defaultBlockSize
	}

	buffer := make([]byte, blockSize)
	var readBytesCount int
	totalCounter := map[byte]int{}

	for {
		bytesRead, err := r.Read(buffer)
		if bytesRead > 0 {
			readBytesCount += bytesRead
			// Only process the bytes that were actually read
			blockCounter := countChars(buffer[:bytesRead])
			totalCounter = mergeCounterLists(totalCounter, blockCounter)
			if progress != nil {
				progress(readBytesCount)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return CharCounter{}, err
		}
	}

	return CharCounter{
		Counter:   totalCounter,
		CharsRead: sumCounts(totalCounter),
		BytesRead: readBytesCount,
	}, nil
}

// CreateFileCounter opens filename and accumulates its character frequencies.
func CreateFileCounter(filename string, blockSize int, progress ProgressFunc) (result CharCounter, err error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return CharCounter{}, &FileNotFoundError{Path: filename}
		}
		return CharCounter{}, &ReadError{Path: filename, Cause: err}
	}
	defer func(file *os.File) {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &ReadError{Path: filename, Cause: closeErr}
		}
	}(file)

	fileStat, err := file.Stat()
	if err != nil {
		return CharCounter{}, &ReadError{Path: filename, Cause: err}
	}
	if fileStat.IsDir() {
		return CharCounter{}, &ReadError{Path: filename, Cause: errors.New("path is a directory")}
	}

	if blockSize < 1 {
		blockSize = defaultBlockSize
	}
	fsize := int(fileStat.Size())
	if fsize > 0 && fsize < blockSize {
		blockSize = 1 << int(math.Floor(math.Log2(float64(fsize))))
	}

	reader := bufio.NewReaderSize(file, blockSize)
	result, err = CountChars(reader, blockSize, progress)
	if err != nil {
		return CharCounter{}, &ReadError{Path: filename, Cause: err}
	}
	result.Filename = filename
	return result, nil
}
