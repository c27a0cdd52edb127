package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSONLines writes items one JSON document per line. Used for the
// intermediate dumps whose records are too nested for a flat CSV.
func WriteJSONLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}

// ReadJSONLines reads a JSON-lines stream back. Blank lines are skipped.
func ReadJSONLines[T any](r io.Reader) ([]T, error) {
	var out []T
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var it T
		if err := json.Unmarshal(line, &it); err != nil {
			return nil, fmt.Errorf("jsonl: line %d: %w", len(out)+1, err)
		}
		out = append(out, it)
	}
	return out, sc.Err()
}

// WriteJSONLinesFile writes items to path. The parent directory must exist.
func WriteJSONLinesFile[T any](path string, items []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSONLines(f, items); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSONLinesFile reads a JSON-lines file; a missing file yields an empty
// slice so merge runs tolerate a source that was never scraped.
func ReadJSONLinesFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSONLines[T](f)
}
