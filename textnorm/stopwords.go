package textnorm

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"genre-lab/errors"

	"github.com/blugelabs/bluge/analysis/lang/en"
	"github.com/samber/lo"
)

//go:embed stopwords_english.txt
var englishStopwords string

// Names accepted by ByName.
const (
	StopwordsNLTK     = "nltk"
	StopwordsSnowball = "snowball"
	StopwordsFile     = "file"
)

// StopwordSet is an immutable set of lowercase words.
// The zero value is an empty set and is safe to use.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet builds a set from the given words. Words are trimmed and lowercased,
// empty entries are ignored.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return StopwordSet{words: set}
}

// Contains is an exact, case-sensitive membership test.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

func (s StopwordSet) Len() int {
	return len(s.words)
}

// Words returns a sorted copy of the set.
func (s StopwordSet) Words() []string {
	words := lo.Keys(s.words)
	sort.Strings(words)
	return words
}

// English returns the NLTK English stopword list.
func English() StopwordSet {
	set, _ := ParseStopwords(strings.NewReader(englishStopwords))
	return set
}

// Snowball returns the Snowball English list bluge ships for its stop filter.
func Snowball() StopwordSet {
	var words []string
	for w := range en.StopWords() {
		words = append(words, w)
	}
	return NewStopwordSet(words...)
}

// ParseStopwords reads one word per line. Blank lines and lines starting with '#' or '|' are skipped.
func ParseStopwords(r io.Reader) (StopwordSet, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "|") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return StopwordSet{}, err
	}
	if len(words) == 0 {
		return StopwordSet{}, errors.ErrEmptyStopwords
	}
	return NewStopwordSet(words...), nil
}

// LoadStopwordFile reads a stopword list from disk.
func LoadStopwordFile(path string) (StopwordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return StopwordSet{}, err
	}
	defer f.Close()
	set, err := ParseStopwords(f)
	if err != nil {
		return StopwordSet{}, fmt.Errorf("stopword file %s: %w", path, err)
	}
	return set, nil
}

// ByName resolves a configured stopword source. path is only read for StopwordsFile.
func ByName(name, path string) (StopwordSet, error) {
	switch strings.ToLower(name) {
	case "", StopwordsNLTK:
		return English(), nil
	case StopwordsSnowball:
		return Snowball(), nil
	case StopwordsFile:
		return LoadStopwordFile(path)
	default:
		return StopwordSet{}, fmt.Errorf("%w: %q", errors.ErrUnknownStopwordsName, name)
	}
}
