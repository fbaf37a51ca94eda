package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"leaf-cells/internal/area"
)

// CSVHeader is the header row of the area report.
var CSVHeader = []string{"cell_id", "area"}

// EncodeCSV writes the header followed by one "id,area" row per record.
func EncodeCSV(w io.Writer, t area.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range t {
		if err := cw.Write([]string{strconv.Itoa(r.ID), strconv.Itoa(r.Area)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the area table to path, replacing any existing file.
func WriteCSV(t area.Table, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeCSV(w, t)
	})
}
