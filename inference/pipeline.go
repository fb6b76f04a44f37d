// Package inference predicts movie genres from a plot description.
package inference

import (
	"fmt"
	"log/slog"

	"genre-lab/contract"
	"genre-lab/domain"
	"genre-lab/errors"
	"genre-lab/textnorm"
)

// Pipeline chains normalization, vectorization, classification and label decoding.
// It holds its collaborators without owning them and never mutates them, so one
// Pipeline can serve concurrent callers.
type Pipeline struct {
	log        *slog.Logger
	normalizer textnorm.Normalizer
	vectorizer contract.Vectorizer
	classifier contract.Classifier
	binarizer  contract.Binarizer
	decoder    contract.Decoder
}

func NewPipeline(
	log *slog.Logger,
	normalizer textnorm.Normalizer,
	vectorizer contract.Vectorizer,
	classifier contract.Classifier,
	binarizer contract.Binarizer,
	decoder contract.Decoder,
) *Pipeline {
	return &Pipeline{
		log:        log,
		normalizer: normalizer,
		vectorizer: vectorizer,
		classifier: classifier,
		binarizer:  binarizer,
		decoder:    decoder,
	}
}

// InferGenres returns the genres predicted for one plot, in the binarizer's column order.
// Errors from the collaborators are returned as they are. A code the decoder does not
// know yields an error matching errors.ErrDecodeKey.
func (p *Pipeline) InferGenres(text string) (domain.Genres, error) {
	genres, err := p.InferBatch([]string{text})
	if err != nil {
		return nil, err
	}
	return genres[0], nil
}

// InferBatch runs the pipeline over several plots with one call per collaborator.
// Row i of the result belongs to texts[i].
func (p *Pipeline) InferBatch(texts []string) ([]domain.Genres, error) {
	if len(texts) == 0 {
		return []domain.Genres{}, nil
	}

	normalized := make([]string, len(texts))
	for i, text := range texts {
		normalized[i] = p.normalizer.FullClean(text)
	}
	p.log.Debug("Texts normalized", "count", len(texts), "first", normalized[0])

	features, err := p.vectorizer.Transform(normalized)
	if err != nil {
		return nil, err
	}
	predicted, err := p.classifier.Predict(features)
	if err != nil {
		return nil, err
	}
	labelSets, err := p.binarizer.InverseTransform(predicted)
	if err != nil {
		return nil, err
	}
	if len(labelSets) != len(texts) {
		return nil, fmt.Errorf("%w: %d label sets for %d texts",
			errors.ErrDimensionMismatch, len(labelSets), len(texts))
	}

	result := make([]domain.Genres, len(labelSets))
	for i, codes := range labelSets {
		genres, err := p.decode(codes)
		if err != nil {
			return nil, err
		}
		result[i] = genres
	}
	return result, nil
}

func (p *Pipeline) decode(codes []domain.LabelCode) (domain.Genres, error) {
	genres := make(domain.Genres, 0, len(codes))
	for _, code := range codes {
		name, ok := p.decoder.Decode(code)
		if !ok {
			p.log.Error("Label code missing from decoder", "code", code)
			return nil, fmt.Errorf("%w: %q", errors.ErrDecodeKey, code)
		}
		genres = append(genres, name)
	}
	return genres, nil
}
