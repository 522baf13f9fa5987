// Package figure turns heteronym records into chart image files.
package figure

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/f3rmion/homograf/internal/config"
	"github.com/f3rmion/homograf/internal/heteronym"
	"github.com/google/renameio/v2"
)

// Result lists what a run produced.
type Result struct {
	Written []string // Paths in view order
	Skipped []string // View names with nothing to draw
	Groups  []heteronym.WordGroup
}

// Count returns the number of figures written.
func (r *Result) Count() int {
	return len(r.Written)
}

// Generator renders the figure views.
type Generator struct {
	opts config.Options
}

// NewGenerator creates a generator for the given options.
func NewGenerator(opts config.Options) *Generator {
	return &Generator{opts: opts}
}

// Generate writes one PNG per view into outDir and returns the count written.
func Generate(records []heteronym.Record, outDir string, opts config.Options) (int, error) {
	res, err := NewGenerator(opts).Generate(records, outDir)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}

// Generate writes one PNG per view into outDir, creating it if needed.
// Every file is written completely or not at all. On error the result holds
// the figures written before the failure.
func (g *Generator) Generate(records []heteronym.Record, outDir string) (*Result, error) {
	if err := g.opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records loaded", ErrEmptyDataset)
	}

	for _, r := range heteronym.DuplicateSenses(records) {
		slog.Warn("Duplicate sense_id, counted once",
			"language", r.Language,
			"word", r.Word,
			"sense_id", r.SenseID,
			"at", fmt.Sprintf("%s:%d", r.SourceFile, r.Line))
	}

	groups := heteronym.FilterGroups(heteronym.GroupWords(records), g.opts.IncludeSingleSense)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no word has more than one sense (include single-sense words to chart them)", ErrEmptyDataset)
	}

	in := input{
		records:  heteronym.FilterRecords(records, groups),
		groups:   groups,
		topWords: g.opts.TopWords,
		maxCards: g.opts.MaxCards,
	}

	slog.Debug("Grouped records",
		"records", len(records),
		"charted_records", len(in.records),
		"words", len(groups),
		"include_single_sense", g.opts.IncludeSingleSense)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, &WriteError{Path: outDir, Err: err}
	}

	res := &Result{Groups: groups}
	for _, v := range Views {
		fig, ok := v.build(in)
		if !ok {
			slog.Warn("Skipping figure with no data", "figure", v.Name)
			res.Skipped = append(res.Skipped, v.Name)
			continue
		}

		path := filepath.Join(outDir, v.FileName())
		canvas := fig.Render(g.opts.DPI)
		err := writeAtomic(path, canvas.EncodePNG)
		canvas.Close()
		if err != nil {
			return res, err
		}

		slog.Info("Wrote figure", "path", path)
		res.Written = append(res.Written, path)
	}

	return res, nil
}

// writeAtomic encodes into a pending file next to path and renames it into
// place once it is complete. The pending file is removed on any failure.
func writeAtomic(path string, encode func(io.Writer) error) error {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o644))
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer pf.Cleanup()

	if err := encode(pf); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
