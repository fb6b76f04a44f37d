package model

import (
	"fmt"

	"genre-lab/domain"
	"genre-lab/errors"

	"github.com/samber/lo"
)

// BinarizerSpec keeps the class order the multi-label binarizer was fitted with.
type BinarizerSpec struct {
	Classes []domain.LabelCode `json:"classes" validate:"required,min=1,unique,dive,required"`
}

// MultiLabelBinarizer maps multi-hot rows to label codes.
type MultiLabelBinarizer struct {
	classes []domain.LabelCode
}

func NewMultiLabelBinarizer(spec BinarizerSpec) *MultiLabelBinarizer {
	return &MultiLabelBinarizer{classes: spec.Classes}
}

// Classes returns a copy of the fit-time column order.
func (b *MultiLabelBinarizer) Classes() []domain.LabelCode {
	return append([]domain.LabelCode(nil), b.classes...)
}

// InverseTransform returns, per row, the codes of the active columns in column order.
func (b *MultiLabelBinarizer) InverseTransform(rows []domain.LabelVector) ([][]domain.LabelCode, error) {
	out := make([][]domain.LabelCode, len(rows))
	for i, row := range rows {
		if len(row) != len(b.classes) {
			return nil, fmt.Errorf("%w: row %d has %d columns, binarizer has %d classes",
				errors.ErrDimensionMismatch, i, len(row), len(b.classes))
		}
		out[i] = lo.Filter(b.classes, func(_ domain.LabelCode, col int) bool {
			return row.Active(col)
		})
	}
	return out, nil
}
