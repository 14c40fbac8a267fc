// Package export writes the detail and summary reports as CSV files. The
// default encoding is Shift-JIS so the files open cleanly in the Excel
// setups the reports are made for; UTF-8 is available as an option.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	EncodingShiftJIS = "shift-jis"
	EncodingUTF8     = "utf-8"
)

// ValidateEncoding rejects anything but the two supported encodings.
func ValidateEncoding(encoding string) error {
	if encoding != EncodingShiftJIS && encoding != EncodingUTF8 {
		return fmt.Errorf("invalid encoding %q - valid encodings: %s, %s", encoding, EncodingShiftJIS, EncodingUTF8)
	}
	return nil
}

// Writer writes report files into Dir, creating it on demand.
type Writer struct {
	Dir      string
	Encoding string
}

func (w *Writer) writeCSV(path string, header []string, rows [][]string) error {
	err := os.MkdirAll(w.Dir, 0o755)
	if err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer file.Close()

	var cw *csv.Writer
	if w.Encoding == EncodingShiftJIS {
		tw := transform.NewWriter(file, japanese.ShiftJIS.NewEncoder())
		defer tw.Close()
		cw = csv.NewWriter(tw)
	} else {
		cw = csv.NewWriter(file)
	}

	err = cw.Write(header)
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	err = cw.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// formatHours renders an hour figure the way a spreadsheet shows a number:
// no trailing zeros ("8", "8.5").
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

func (w *Writer) path(name string) string {
	return filepath.Join(w.Dir, name)
}
