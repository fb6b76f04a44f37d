//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "genre-lab/domain"

// Vectorizer turns normalized documents into feature rows, one row per document.
type Vectorizer interface {
	Transform(docs []string) ([]domain.Vector, error)
	Dimension() int
}

// Classifier predicts one multi-hot row per feature row.
type Classifier interface {
	Predict(features []domain.Vector) ([]domain.LabelVector, error)
}

// Binarizer maps multi-hot rows back to the label codes they encode.
// Codes come out in the column order fixed when the binarizer was fitted.
type Binarizer interface {
	InverseTransform(rows []domain.LabelVector) ([][]domain.LabelCode, error)
	Classes() []domain.LabelCode
}

// Decoder resolves a label code into a human readable genre.
type Decoder interface {
	Decode(code domain.LabelCode) (string, bool)
}
