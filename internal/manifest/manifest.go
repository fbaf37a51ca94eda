// Package manifest reads dataset manifests listing the images to analyse.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImageMimeType is the only mimetype selected for analysis.
const ImageMimeType = "image/png"

// Item is one file entry of a manifest.
type Item struct {
	Path     string `json:"path"`
	MimeType string `json:"mimetype"`
	Hash     string `json:"hash,omitempty"`
	Size     int64  `json:"size_in_bytes,omitempty"`
}

// File is a dataset manifest.
type File struct {
	FileList []Item `json:"file_list"`

	root string
}

// Entry is an image selected for analysis.
type Entry struct {
	Path string // Absolute path to the image
	Tag  string // First component of the manifest path, e.g. the genotype
}

// Load reads a manifest. Relative item paths resolve against the
// manifest's directory.
func Load(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m File
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	m.root = filepath.Dir(abs)
	return &m, nil
}

// Images returns the PNG entries in manifest order.
// Entries whose path has no directory component cannot be tagged and are
// rejected.
func (m *File) Images() ([]Entry, error) {
	var out []Entry
	for _, item := range m.FileList {
		if item.MimeType != ImageMimeType {
			continue
		}
		rel := filepath.ToSlash(item.Path)
		tag, rest, ok := strings.Cut(rel, "/")
		if !ok || tag == "" || rest == "" {
			return nil, fmt.Errorf("manifest path %q has no tag directory", item.Path)
		}
		out = append(out, Entry{
			Path: filepath.Join(m.root, filepath.FromSlash(rel)),
			Tag:  tag,
		})
	}
	return out, nil
}
