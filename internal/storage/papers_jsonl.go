// Package storage persists the canonical paper collection. The JSONL file
// is authoritative and ordered; the SQLite database is an ephemeral query
// cache rebuilt from it.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paperdex/paperdex/internal/paper"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads the whole collection from a JSONL file, preserving record
// order. A missing file is an empty collection, not an error.
func ReadAll(path string) ([]paper.Paper, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening papers file: %w", err)
	}
	defer f.Close()

	var papers []paper.Paper
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p paper.Paper
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		papers = append(papers, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading papers file: %w", err)
	}

	return papers, nil
}

// WriteAll rewrites the collection atomically: records are written to a
// temporary file in the same directory which then replaces the target, so a
// crash mid-write never leaves a truncated collection behind.
func WriteAll(path string, papers []paper.Paper) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating papers directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".papers-*.jsonl")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for i := range papers {
		if err := enc.Encode(&papers[i]); err != nil {
			tmp.Close()
			return fmt.Errorf("encoding paper %s: %w", papers[i].ID, err)
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing papers file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing papers file: %w", err)
	}
	return nil
}

// Append adds one paper to the end of the collection file.
func Append(path string, p paper.Paper) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening papers file for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling paper %s: %w", p.ID, err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("appending paper: %w", err)
	}
	return nil
}
