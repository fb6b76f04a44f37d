package model

import (
	"hash/fnv"

	"genre-lab/domain"
)

// HashingVectorizer maps tokens to a fixed number of columns without a vocabulary.
type HashingVectorizer struct {
	size int
}

// NewHashingVectorizer initializes a vectorizer with a fixed size.
// The size must match the n_features the classifier was trained with.
func NewHashingVectorizer(size int) *HashingVectorizer {
	return &HashingVectorizer{size: size}
}

// Features uses the hashing trick: each token sets its FNV-1a column to 1.
func (v *HashingVectorizer) Features(tokens []string) domain.Vector {
	vec := make(domain.Vector, v.size)
	if v.size == 0 {
		return vec
	}
	for _, w := range tokens {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		idx := int(h.Sum32() % uint32(v.size))
		// Binary feature, plot summaries repeat names a lot
		vec[idx] = 1.0
	}
	return vec
}
