package output

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/relegoai/future-vision/internal/vision"
)

// Column labels of the output file
const (
	headerID     = "ID"
	headerPrompt = "Prompt"
)

// WriteCSV writes the batch to path: a header row followed by one row per
// item, every field quoted (embedded quotes doubled per RFC 4180) so the
// file round-trips through any standard CSV reader. An existing file at
// path is overwritten. The file is written only once the full batch has
// been assembled, so a failed run never leaves partial output.
func WriteCSV(path string, items []vision.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriter(f)

	writeRow(w, headerID, headerPrompt)
	for _, item := range items {
		writeRow(w, strconv.Itoa(item.ID), item.Prompt)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// writeRow emits one record with every field quoted
func writeRow(w *bufio.Writer, fields ...string) {
	for i, field := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteString("\r\n")
}
