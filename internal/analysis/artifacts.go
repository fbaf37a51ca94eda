package analysis

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// ArtifactWriter saves intermediate images as NNN_name.png in a directory,
// numbering them in the order they are recorded.
type ArtifactWriter struct {
	dir string
	log zerolog.Logger

	mu   sync.Mutex
	next int
}

// NewArtifactWriter creates a writer for dir.
func NewArtifactWriter(dir string, log zerolog.Logger) *ArtifactWriter {
	return &ArtifactWriter{dir: dir, log: log}
}

// Record writes img. Failures are logged; intermediate images never fail
// an analysis.
func (w *ArtifactWriter) Record(name string, img image.Image) {
	w.mu.Lock()
	w.next++
	n := w.next
	w.mu.Unlock()

	path := filepath.Join(w.dir, fmt.Sprintf("%03d_%s.png", n, name))
	if err := imaging.Save(img, path); err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("failed to write intermediate image")
		return
	}
	w.log.Debug().Str("path", path).Msg("wrote intermediate image")
}
