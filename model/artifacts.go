// Package model reads the persisted genre model artifacts and exposes them as the
// collaborators the inference pipeline consumes.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"genre-lab/contract"
	"genre-lab/domain"
	"genre-lab/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Artifact file names inside a model directory or bundle.
const (
	VectorizerFile = "vectorizer.json"
	ClassifierFile = "classifier.json"
	BinarizerFile  = "binarizer.json"
	DecoderFile    = "decoder.json"
)

// ArtifactFiles lists every file a complete model needs.
var ArtifactFiles = []string{VectorizerFile, ClassifierFile, BinarizerFile, DecoderFile}

var validate = validator.New()

// Bundle holds the loaded collaborators. They are read-only once loaded.
type Bundle struct {
	Vectorizer contract.Vectorizer
	Classifier contract.Classifier
	Binarizer  contract.Binarizer
	Decoder    contract.Decoder
}

// LoadBundle reads the four artifacts from dir.
func LoadBundle(log *slog.Logger, dir string) (Bundle, error) {
	files := make(map[string][]byte, len(ArtifactFiles))
	for _, name := range ArtifactFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Bundle{}, fmt.Errorf("%w: %s: %v", errors.ErrArtifactLoad, path, err)
		}
		files[name] = data
	}
	log.Debug("Artifacts read", "dir", dir)
	return LoadBundleFromFiles(log, files)
}

// LoadBundleFromFiles builds a bundle from raw artifact contents keyed by file name.
func LoadBundleFromFiles(log *slog.Logger, files map[string][]byte) (Bundle, error) {
	var (
		vecSpec VectorizerSpec
		clfSpec ClassifierSpec
		binSpec BinarizerSpec
		decSpec DecoderSpec
	)
	specs := map[string]any{
		VectorizerFile: &vecSpec,
		ClassifierFile: &clfSpec,
		BinarizerFile:  &binSpec,
		DecoderFile:    &decSpec,
	}
	for _, name := range ArtifactFiles {
		data, ok := files[name]
		if !ok {
			return Bundle{}, fmt.Errorf("%w: %s is missing", errors.ErrArtifactLoad, name)
		}
		if err := decodeArtifact(data, specs[name]); err != nil {
			return Bundle{}, fmt.Errorf("%w: %s: %v", errors.ErrArtifactLoad, name, err)
		}
	}

	vectorizer, err := NewVectorizer(vecSpec)
	if err != nil {
		return Bundle{}, fmt.Errorf("%w: %s: %w", errors.ErrArtifactLoad, VectorizerFile, err)
	}
	classifier, err := NewLogisticClassifier(clfSpec)
	if err != nil {
		return Bundle{}, fmt.Errorf("%w: %s: %w", errors.ErrArtifactLoad, ClassifierFile, err)
	}
	binarizer := NewMultiLabelBinarizer(binSpec)
	decoder := NewGenreDecoder(decSpec)

	if classifier.Features() != vectorizer.Dimension() {
		return Bundle{}, fmt.Errorf("%w: %w: classifier expects %d features, vectorizer produces %d",
			errors.ErrArtifactLoad, errors.ErrDimensionMismatch, classifier.Features(), vectorizer.Dimension())
	}
	if classifier.Classes() != len(binSpec.Classes) {
		return Bundle{}, fmt.Errorf("%w: %w: classifier has %d classes, binarizer has %d",
			errors.ErrArtifactLoad, errors.ErrDimensionMismatch, classifier.Classes(), len(binSpec.Classes))
	}

	undecodable := lo.Filter(binSpec.Classes, func(code domain.LabelCode, _ int) bool {
		_, ok := decoder.Decode(code)
		return !ok
	})
	if len(undecodable) > 0 {
		log.Warn("Binarizer classes missing from decoder", "codes", undecodable)
	}

	log.Info("Model loaded",
		"features", vectorizer.Dimension(),
		"classes", classifier.Classes(),
		"genres", decoder.Len())

	return Bundle{
		Vectorizer: vectorizer,
		Classifier: classifier,
		Binarizer:  binarizer,
		Decoder:    decoder,
	}, nil
}

// decodeArtifact rejects anything that is not a text document before parsing it as JSON.
// Binary model dumps (pickle, joblib) stop here with their detected type.
func decodeArtifact(data []byte, target any) error {
	if !isText(mimetype.Detect(data)) {
		return fmt.Errorf("expected a JSON document, got %s", mimetype.Detect(data).String())
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return validate.Struct(target)
}

func isText(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("application/json") || strings.HasPrefix(m.String(), "text/plain") {
			return true
		}
	}
	return false
}
