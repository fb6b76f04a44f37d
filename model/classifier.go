package model

import (
	"fmt"
	"math"

	"genre-lab/domain"
	"genre-lab/errors"
)

const KindOneVsRestLogistic = "one_vs_rest_logistic"

// ClassifierSpec is the persisted form of a one-vs-rest logistic regression.
// Coef has one row per binarizer class.
type ClassifierSpec struct {
	Kind      string      `json:"kind" validate:"required,oneof=one_vs_rest_logistic"`
	Coef      [][]float64 `json:"coef" validate:"required,min=1,dive,min=1"`
	Intercept []float64   `json:"intercept" validate:"required,min=1"`
	Threshold float64     `json:"threshold" validate:"gte=0,lt=1"`
}

// LogisticClassifier predicts every class independently.
type LogisticClassifier struct {
	coef      [][]float64
	intercept []float64
	threshold float64
	features  int
}

func NewLogisticClassifier(spec ClassifierSpec) (*LogisticClassifier, error) {
	if spec.Kind != KindOneVsRestLogistic {
		return nil, fmt.Errorf("%w: classifier %q", errors.ErrUnknownArtifactKind, spec.Kind)
	}
	if len(spec.Coef) != len(spec.Intercept) {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d intercepts",
			errors.ErrDimensionMismatch, len(spec.Coef), len(spec.Intercept))
	}
	features := len(spec.Coef[0])
	for i, row := range spec.Coef {
		if len(row) != features {
			return nil, fmt.Errorf("%w: coefficient row %d has %d features, expected %d",
				errors.ErrDimensionMismatch, i, len(row), features)
		}
	}
	return &LogisticClassifier{
		coef:      spec.Coef,
		intercept: spec.Intercept,
		threshold: spec.Threshold,
		features:  features,
	}, nil
}

func (c *LogisticClassifier) Classes() int {
	return len(c.coef)
}

func (c *LogisticClassifier) Features() int {
	return c.features
}

// Predict fires a class when its decision function is positive, or when its
// probability reaches the threshold if one is set.
func (c *LogisticClassifier) Predict(features []domain.Vector) ([]domain.LabelVector, error) {
	rows := make([]domain.LabelVector, len(features))
	for i, x := range features {
		if len(x) != c.features {
			return nil, fmt.Errorf("%w: row %d has %d features, classifier expects %d",
				errors.ErrDimensionMismatch, i, len(x), c.features)
		}
		row := make(domain.LabelVector, len(c.coef))
		for k, w := range c.coef {
			if c.fires(dot(w, x) + c.intercept[k]) {
				row[k] = 1
			}
		}
		rows[i] = row
	}
	return rows, nil
}

func (c *LogisticClassifier) fires(decision float64) bool {
	if c.threshold > 0 {
		return sigmoid(decision) >= c.threshold
	}
	return decision > 0
}

func dot(w []float64, x domain.Vector) float64 {
	var sum float64
	for i, xi := range x {
		if xi != 0 {
			sum += w[i] * xi
		}
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
