// Package heteronym provides the core types and grouping logic for the
// heteronym dataset.
package heteronym

// Column names in the dataset header.
const (
	ColLanguage = "language"
	ColWord     = "word"
	ColSenseID  = "sense_id"
	ColPOS      = "pos"
	ColMeaning  = "meaning"
	ColIPA      = "ipa"
	ColNotes    = "notes"
)

// RequiredColumns must be present in the header and non-empty in every row.
var RequiredColumns = []string{ColLanguage, ColWord, ColSenseID}

// OptionalColumns default to the empty string when absent.
var OptionalColumns = []string{ColPOS, ColMeaning, ColIPA, ColNotes}

// Record is one row of the dataset.
type Record struct {
	Language string `json:"language"`
	Word     string `json:"word"`
	SenseID  string `json:"sense_id"`
	POS      string `json:"pos,omitempty"`
	Meaning  string `json:"meaning,omitempty"`
	IPA      string `json:"ipa,omitempty"`
	Notes    string `json:"notes,omitempty"`

	SourceFile string `json:"source_file,omitempty"` // Base name of the CSV file
	Line       int    `json:"line,omitempty"`        // 1-based line in SourceFile
}

// Key identifies a word within a language.
type Key struct {
	Language string
	Word     string
}

// Key returns the grouping key of the record.
func (r Record) Key() Key {
	return Key{Language: r.Language, Word: r.Word}
}

// Reading pairs a transcription with the meaning it carries.
type Reading struct {
	IPA     string
	Meaning string
}

// WordGroup aggregates all senses of one spelling in one language.
type WordGroup struct {
	Language string
	Word     string
	Senses   int       // Distinct sense_id values
	Variants int       // Distinct non-empty IPA values
	IPAs     []string  // Distinct non-empty IPA values, sorted
	Readings []Reading // Distinct (ipa, meaning) pairs with both set, sorted
}

// IsHeteronym reports whether the word has more than one sense.
func (g WordGroup) IsHeteronym() bool {
	return g.Senses >= 2
}

// LanguageTotal summarizes the groups of one language.
type LanguageTotal struct {
	Language string
	Words    int
	Senses   int
}

// SenseBucket counts how many words have exactly Senses senses.
type SenseBucket struct {
	Senses int
	Words  int
}
