package errors

import "fmt"

var (
	ErrArtifactLoad         = fmt.Errorf("artifact load failed")
	ErrUnknownArtifactKind  = fmt.Errorf("unknown artifact kind")
	ErrDimensionMismatch    = fmt.Errorf("dimension mismatch")
	ErrDecodeKey            = fmt.Errorf("label code missing from decoder")
	ErrBundleNotFound       = fmt.Errorf("artifact bundle not found")
	ErrEmptyStopwords       = fmt.Errorf("no stopwords have been found")
	ErrUnknownStopwordsName = fmt.Errorf("unknown stopword list")
)
