// Package dataset loads heteronym records from CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/f3rmion/homograf/internal/heteronym"
	"golang.org/x/text/unicode/norm"
)

// FilePattern matches dataset files inside a data directory.
const FilePattern = "heteronyms_*.csv"

// Load reads records from a CSV file, or from every file matching
// FilePattern when path is a directory. Files are read in name order and
// rows keep their file order.
func Load(path string) ([]heteronym.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	if !info.IsDir() {
		return LoadFile(path)
	}

	files, err := Files(path)
	if err != nil {
		return nil, err
	}

	var records []heteronym.Record
	for _, file := range files {
		recs, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	return records, nil
}

// Files lists the dataset files of a directory in name order.
func Files(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return nil, fmt.Errorf("listing dataset files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrFileNotFound, FilePattern, dir)
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile reads records from a single CSV file.
func LoadFile(path string) ([]heteronym.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer file.Close()

	records, err := Parse(file, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded dataset file", "path", path, "records", len(records))
	return records, nil
}

// Parse reads CSV with a header row from r. name is used for diagnostics and
// as the records' source file.
func Parse(r io.Reader, name string) ([]heteronym.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, &MissingFieldError{File: name, Line: 1, Field: heteronym.ColLanguage}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", name, err)
	}

	// Column name -> index
	columns := make(map[string]int)
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}

	for _, col := range heteronym.RequiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, &MissingFieldError{File: name, Line: 1, Field: col}
		}
	}

	var records []heteronym.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		line, _ := reader.FieldPos(0)
		field := func(col string) string {
			i, ok := columns[col]
			if !ok || i >= len(row) {
				return ""
			}
			return norm.NFC.String(strings.TrimSpace(row[i]))
		}

		rec := heteronym.Record{
			Language:   field(heteronym.ColLanguage),
			Word:       field(heteronym.ColWord),
			SenseID:    field(heteronym.ColSenseID),
			POS:        field(heteronym.ColPOS),
			Meaning:    field(heteronym.ColMeaning),
			IPA:        field(heteronym.ColIPA),
			Notes:      field(heteronym.ColNotes),
			SourceFile: name,
			Line:       line,
		}

		for _, col := range heteronym.RequiredColumns {
			if field(col) == "" {
				return nil, &MissingFieldError{File: name, Line: line, Field: col}
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
