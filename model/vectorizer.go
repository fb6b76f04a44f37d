package model

import (
	"fmt"
	"math"
	"strings"

	"genre-lab/domain"
	"genre-lab/errors"
)

const (
	KindTfidf   = "tfidf"
	KindHashing = "hashing"

	normL1 = "l1"
	normL2 = "l2"

	defaultMinTokenLength = 2
)

// VectorizerSpec is the persisted form of a fitted vectorizer.
type VectorizerSpec struct {
	Kind           string         `json:"kind" validate:"required,oneof=tfidf hashing"`
	Vocabulary     map[string]int `json:"vocabulary" validate:"required_if=Kind tfidf"`
	IDF            []float64      `json:"idf" validate:"required_if=Kind tfidf"`
	NFeatures      int            `json:"n_features" validate:"required_if=Kind hashing,gte=0"`
	Norm           *string        `json:"norm"`
	SublinearTF    bool           `json:"sublinear_tf"`
	MinTokenLength int            `json:"min_token_length" validate:"gte=0"`
}

// NewVectorizer builds the vectorizer described by spec.
func NewVectorizer(spec VectorizerSpec) (*TfidfVectorizer, error) {
	// A missing norm means l2, "" turns normalization off.
	norm := normL2
	if spec.Norm != nil {
		norm = *spec.Norm
	}
	if norm != "" && norm != normL1 && norm != normL2 {
		return nil, fmt.Errorf("%w: vectorizer norm %q", errors.ErrUnknownArtifactKind, norm)
	}
	minLen := spec.MinTokenLength
	if minLen == 0 {
		minLen = defaultMinTokenLength
	}
	switch spec.Kind {
	case KindTfidf:
		size := len(spec.IDF)
		for term, col := range spec.Vocabulary {
			if col < 0 || col >= size {
				return nil, fmt.Errorf("%w: term %q maps to column %d, idf has %d entries",
					errors.ErrDimensionMismatch, term, col, size)
			}
		}
		return &TfidfVectorizer{
			vocabulary:  spec.Vocabulary,
			idf:         spec.IDF,
			norm:        norm,
			sublinearTF: spec.SublinearTF,
			minTokenLen: minLen,
		}, nil
	case KindHashing:
		return &TfidfVectorizer{
			hashing:     NewHashingVectorizer(spec.NFeatures),
			norm:        norm,
			minTokenLen: minLen,
		}, nil
	default:
		return nil, fmt.Errorf("%w: vectorizer %q", errors.ErrUnknownArtifactKind, spec.Kind)
	}
}

// TfidfVectorizer weights token counts by inverse document frequency.
// When built from a hashing spec the columns come from feature hashing and carry no idf.
type TfidfVectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	hashing     *HashingVectorizer
	norm        string
	sublinearTF bool
	minTokenLen int
}

func (v *TfidfVectorizer) Dimension() int {
	if v.hashing != nil {
		return v.hashing.size
	}
	return len(v.idf)
}

func (v *TfidfVectorizer) Transform(docs []string) ([]domain.Vector, error) {
	rows := make([]domain.Vector, len(docs))
	for i, doc := range docs {
		rows[i] = v.transformOne(doc)
	}
	return rows, nil
}

func (v *TfidfVectorizer) transformOne(doc string) domain.Vector {
	tokens := v.tokens(doc)
	if v.hashing != nil {
		return normalize(v.hashing.Features(tokens), v.norm)
	}

	vec := make(domain.Vector, len(v.idf))
	for _, token := range tokens {
		if col, ok := v.vocabulary[token]; ok {
			vec[col]++
		}
	}
	for col, tf := range vec {
		if tf == 0 {
			continue
		}
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		vec[col] = tf * v.idf[col]
	}
	return normalize(vec, v.norm)
}

// tokens lowercases and keeps whitespace separated tokens of at least minTokenLen runes.
func (v *TfidfVectorizer) tokens(doc string) []string {
	fields := strings.Fields(strings.ToLower(doc))
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= v.minTokenLen {
			out = append(out, f)
		}
	}
	return out
}

func normalize(vec domain.Vector, norm string) domain.Vector {
	var total float64
	switch norm {
	case normL1:
		for _, x := range vec {
			total += math.Abs(x)
		}
	case normL2:
		for _, x := range vec {
			total += x * x
		}
		total = math.Sqrt(total)
	default:
		return vec
	}
	if total == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= total
	}
	return vec
}
