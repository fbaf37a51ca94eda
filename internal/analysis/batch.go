package analysis

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"leaf-cells/internal/area"
	"leaf-cells/internal/manifest"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one manifest entry. Result is nil when
// Err is set.
type BatchResult struct {
	Entry  manifest.Entry
	Result *Result
	Err    error
}

// OutputDir returns <root>/<tag>/<basename> for an entry.
func OutputDir(root string, e manifest.Entry) string {
	base := filepath.Base(e.Path)
	return filepath.Join(root, e.Tag, strings.TrimSuffix(base, filepath.Ext(base)))
}

// RunBatch analyses every entry using the whole image as mask, with at
// most Config().Workers files in flight. Images in which no cells are
// detected are recorded in their BatchResult and do not stop the batch.
// Any other failure cancels scheduling of the remaining entries and is
// returned, as is the error of a cancelled ctx.
func (a *Analyzer) RunBatch(ctx context.Context, entries []manifest.Entry, outputRoot string) ([]BatchResult, error) {
	log := a.log.Component("batch")
	log.Info().Int("files", len(entries)).Int("workers", a.cfg.Workers).Msg("starting batch")

	results := make([]BatchResult, len(entries))
	for i, e := range entries {
		results[i].Entry = e
	}

	parent := ctx
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(a.cfg.Workers)

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			dir := OutputDir(outputRoot, e)
			if err := EnsureDir(dir); err != nil {
				results[i].Err = err
				return err
			}

			res, err := a.AnalyseFile(e.Path, "", dir)
			results[i].Result = res
			results[i].Err = err
			switch {
			case err == nil:
				return nil
			case errors.Is(err, area.ErrEmptySegmentation):
				log.Warn().Str("image", e.Path).Msg("no cells detected")
				return nil
			default:
				return fmt.Errorf("%s: %w", e.Path, err)
			}
		})
	}

	err := g.Wait()
	if err == nil {
		err = parent.Err()
	}
	if err != nil {
		log.Error().Err(err).Msg("batch stopped")
		return results, err
	}

	done := 0
	for _, r := range results {
		if r.Err == nil && r.Result != nil {
			done++
		}
	}
	log.Info().Int("analysed", done).Int("files", len(entries)).Msg("batch complete")
	return results, nil
}
