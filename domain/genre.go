package domain

// LabelCode is the internal code of a genre as the binarizer was fitted with it.
// Integer codes are carried in their decimal form.
type LabelCode string

// Vector is one row of features produced by a vectorizer.
type Vector []float64

// LabelVector is a multi-hot row, one column per binarizer class.
type LabelVector []int

// Genres is the decoded, ordered result of one inference.
type Genres []string

// Active reports whether column i fired.
func (l LabelVector) Active(i int) bool {
	return i >= 0 && i < len(l) && l[i] != 0
}
