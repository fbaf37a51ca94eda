package report

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v as indented JSON to path, replacing any existing file.
func WriteJSON(v any, path string) error {
	return writeFile(path, func(w io.Writer) error {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	})
}
