package dataset

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "language,word,sense_id,pos,meaning,ipa,notes\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_RowCount(t *testing.T) {
	data := header +
		"sv,banan,1,subst,frukt,baˈnɑːn,\n" +
		"sv,banan,2,subst,bestämd form av bana,ˈbɑːnan,\n" +
		"sv,stol,1,subst,möbel,stuːl,\"en vanlig, enkel stol\"\n"

	records, err := Parse(strings.NewReader(data), "heteronyms_sv.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "banan", records[0].Word)
	assert.Equal(t, "1", records[0].SenseID)
	assert.Equal(t, "baˈnɑːn", records[0].IPA)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, "heteronyms_sv.csv", records[0].SourceFile)
	assert.Equal(t, "en vanlig, enkel stol", records[2].Notes)
}

func TestParse_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		row   string
		field string
	}{
		{name: "word", row: "sv,,1,,,,\n", field: "word"},
		{name: "language", row: " ,banan,1,,,,\n", field: "language"},
		{name: "sense_id", row: "sv,banan,,,,,\n", field: "sense_id"},
		{name: "short row", row: "sv,banan\n", field: "sense_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header+"sv,stol,1,,,,\n"+tt.row), "data.csv")

			var mfe *MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, tt.field, mfe.Field)
			assert.Equal(t, 3, mfe.Line)
			assert.Equal(t, "data.csv", mfe.File)
		})
	}
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("language,word,ipa\nsv,banan,x\n"), "data.csv")

	var mfe *MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "sense_id", mfe.Field)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestParse_OptionalFieldsDefaultEmpty(t *testing.T) {
	records, err := Parse(strings.NewReader("word,sense_id,language\nbanan,1,sv\n"), "data.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "sv", r.Language)
	assert.Empty(t, r.POS)
	assert.Empty(t, r.Meaning)
	assert.Empty(t, r.IPA)
	assert.Empty(t, r.Notes)
}

func TestParse_HeaderOnly(t *testing.T) {
	records, err := Parse(strings.NewReader(header), "data.csv")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_Normalization(t *testing.T) {
	// "ä" written as a + combining diaeresis, a BOM and padded header names.
	data := "\ufeff Language , WORD,sense_id\n sv ,  ta\u0308lt ,1\n"

	records, err := Parse(strings.NewReader(data), "data.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "sv", records[0].Language)
	assert.Equal(t, "t\u00e4lt", records[0].Word)
}

func TestParse_MalformedCSV(t *testing.T) {
	_, err := Parse(strings.NewReader(header+"sv,\"banan,1\n"), "data.csv")

	var pe *csv.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "heteronyms_sv.csv", header+"sv,banan,1,,,,\n")
	writeFile(t, dir, "heteronyms_en.csv", header+"en,lead,1,,,,\nen,lead,2,,,,\n")
	writeFile(t, dir, "README.csv", header+"xx,ignored,1,,,,\n")

	records, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// heteronyms_en.csv sorts before heteronyms_sv.csv
	assert.Equal(t, "en", records[0].Language)
	assert.Equal(t, "heteronyms_en.csv", records[0].SourceFile)
	assert.Equal(t, "2", records[1].SenseID)
	assert.Equal(t, "sv", records[2].Language)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "words.csv", header+"sv,banan,1,,,,\nsv,banan,2,,,,\n")

	records, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
