package main

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestCountChars_ExcludesNewlines(t *testing.T) {
	counter, err := CountChars(strings.NewReader("a\nb"), defaultBlockSize, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, counter.CharsRead)
	assert.Equal(t, 3, counter.BytesRead)
	assert.Equal(t, map[byte]int{'a': 1, 'b': 1}, counter.Counter)
	assert.NotContains(t, counter.Counter, byte('\n'))
}

func TestCountChars_Empty(t *testing.T) {
	counter, err := CountChars(strings.NewReader(""), defaultBlockSize, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, counter.CharsRead)
	assert.Empty(t, counter.Counter)
}

func TestCountChars_ChunkSizeDoesNotMatter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 10000)
	for i := range data {
		// Mostly printable with a sprinkling of newlines and high bytes
		switch rng.Intn(10) {
		case 0:
			data[i] = '\n'
		case 1:
			data[i] = byte(0x80 + rng.Intn(0x80))
		default:
			data[i] = byte('!' + rng.Intn(94))
		}
	}

	whole, err := CountChars(bytes.NewReader(data), len(data), nil)
	require.NoError(t, err)

	for _, blockSize := range []int{1, 2, 3, 7, 64, 4096, 9999, 20000} {
		chunked, err := CountChars(bytes.NewReader(data), blockSize, nil)
		require.NoError(t, err)
		assert.Equal(t, whole.Counter, chunked.Counter, "block size %d", blockSize)
		assert.Equal(t, whole.CharsRead, chunked.CharsRead, "block size %d", blockSize)
		assert.Equal(t,
			EntropyEstimation(whole.Counter, whole.CharsRead),
			EntropyEstimation(chunked.Counter, chunked.CharsRead),
			"block size %d", blockSize)
	}

	oneByte, err := CountChars(iotest.OneByteReader(bytes.NewReader(data)), 4096, nil)
	require.NoError(t, err)
	assert.Equal(t, whole.Counter, oneByte.Counter)

	halfReads, err := CountChars(iotest.HalfReader(bytes.NewReader(data)), 4096, nil)
	require.NoError(t, err)
	assert.Equal(t, whole.Counter, halfReads.Counter)

	dataErr, err := CountChars(iotest.DataErrReader(bytes.NewReader(data)), 4096, nil)
	require.NoError(t, err)
	assert.Equal(t, whole.Counter, dataErr.Counter)
}

func TestCountChars_Invariants(t *testing.T) {
	counter, err := CountChars(strings.NewReader("hello\nworld\n"), 4, nil)
	require.NoError(t, err)

	assert.Equal(t, sumCounts(counter.Counter), counter.CharsRead)
	assert.Len(t, counter.Counter, 7)
	for b, count := range counter.Counter {
		assert.Positive(t, count, "character %q", b)
	}
}

func TestCountChars_ReportsProgress(t *testing.T) {
	var reported []int
	_, err := CountChars(strings.NewReader("abcdefghij"), 4, func(n int) {
		reported = append(reported, n)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 10}, reported)
}

func TestCountChars_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := CountChars(iotest.ErrReader(boom), 16, nil)
	assert.ErrorIs(t, err, boom)
}

func TestMergeCounterLists(t *testing.T) {
	merged := mergeCounterLists(map[byte]int{'a': 1, 'b': 2}, map[byte]int{'b': 3, 'c': 4})
	assert.Equal(t, map[byte]int{'a': 1, 'b': 5, 'c': 4}, merged)
}

func TestDecodeChar_Latin1(t *testing.T) {
	assert.Equal(t, 'A', decodeChar('A'))
	assert.Equal(t, 'é', decodeChar(0xe9))
	assert.Equal(t, 'ÿ', decodeChar(0xff))
}

func TestCreateFileCounter_File(t *testing.T) {
	path := writeTempFile(t, "passwords.txt", []byte("aabbccdd"))

	counter, err := CreateFileCounter(path, defaultBlockSize, nil)
	require.NoError(t, err)

	assert.Equal(t, path, counter.Filename)
	assert.Equal(t, 8, counter.CharsRead)
	assert.Len(t, counter.Counter, 4)
}

func TestCreateFileCounter_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.txt", nil)

	counter, err := CreateFileCounter(path, defaultBlockSize, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, counter.CharsRead)
	assert.Empty(t, counter.Counter)
}

func TestCreateFileCounter_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := CreateFileCounter(path, defaultBlockSize, nil)
	var notFound *FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, path, notFound.Path)
	assert.Contains(t, err.Error(), path)
}

func TestCreateFileCounter_Directory(t *testing.T) {
	_, err := CreateFileCounter(t.TempDir(), defaultBlockSize, nil)
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, err.Error(), "directory")
}
