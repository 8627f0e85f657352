package jsonldb

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize bounds a single JSONL row.
const maxLineSize = 1 << 20

// ReadJSONL decodes one JSON value per non-empty line.
func ReadJSONL[T any](r io.Reader) ([]T, error) {
	rows := []T{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var row T
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("failed to unmarshal row on line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// WriteJSONL encodes rows one per line.
func WriteJSONL[T any](w io.Writer, rows []T) error {
	writer := bufio.NewWriter(w)
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row: %w", err)
		}
		if _, err := writer.Write(data); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write newline: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}
	return nil
}
