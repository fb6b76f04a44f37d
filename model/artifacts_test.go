package model

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"genre-lab/domain"
	"genre-lab/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const demoDir = "testdata/demo"

func readDemo(t *testing.T) map[string][]byte {
	files := make(map[string][]byte)
	for _, name := range ArtifactFiles {
		data, err := os.ReadFile(filepath.Join(demoDir, name))
		require.NoError(t, err)
		files[name] = data
	}
	return files
}

func TestLoadBundle_Demo(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	bundle, err := LoadBundle(log, demoDir)
	req.NoError(err)
	req.Equal(6, bundle.Vectorizer.Dimension())
	req.Equal([]domain.LabelCode{"0", "1", "2"}, bundle.Binarizer.Classes())

	// When the normalized plot goes through the collaborators
	features, err := bundle.Vectorizer.Transform([]string{"plot romantic comedy movie", "plot action movie"})
	req.NoError(err)
	predicted, err := bundle.Classifier.Predict(features)
	req.NoError(err)
	codes, err := bundle.Binarizer.InverseTransform(predicted)
	req.NoError(err)

	// Then codes come out in fit-time column order
	req.Equal([][]domain.LabelCode{{"0", "1"}, {"2"}}, codes)
	name, ok := bundle.Decoder.Decode("1")
	req.True(ok)
	req.Equal("romance", name)
}

func TestLoadBundle_Failures(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	tests := []struct {
		name   string
		mutate func(files map[string][]byte)
		target error
	}{
		{
			name:   "Missing artifact",
			mutate: func(files map[string][]byte) { delete(files, DecoderFile) },
		},
		{
			name: "Binary joblib dump",
			mutate: func(files map[string][]byte) {
				files[ClassifierFile] = []byte{0x80, 0x04, 0x95, 0x00, 0x00, 0xff, 0xfe, 0x00, 0x01, 0x02}
			},
		},
		{
			name:   "Corrupt JSON",
			mutate: func(files map[string][]byte) { files[BinarizerFile] = []byte(`{"classes": [`) },
		},
		{
			name:   "Schema violation",
			mutate: func(files map[string][]byte) { files[BinarizerFile] = []byte(`{"classes": ["0", "0", "1"]}`) },
		},
		{
			name: "Unknown vectorizer kind",
			mutate: func(files map[string][]byte) {
				files[VectorizerFile] = []byte(`{"kind": "word2vec"}`)
			},
		},
		{
			name: "Unknown norm",
			mutate: func(files map[string][]byte) {
				files[VectorizerFile] = []byte(`{"kind": "hashing", "n_features": 6, "norm": "max"}`)
			},
			target: errors.ErrUnknownArtifactKind,
		},
		{
			name: "Vocabulary outside idf",
			mutate: func(files map[string][]byte) {
				files[VectorizerFile] = []byte(`{"kind": "tfidf", "vocabulary": {"plot": 9}, "idf": [1.0]}`)
			},
			target: errors.ErrDimensionMismatch,
		},
		{
			name: "Feature count differs from vectorizer",
			mutate: func(files map[string][]byte) {
				files[VectorizerFile] = []byte(`{"kind": "hashing", "n_features": 32}`)
			},
			target: errors.ErrDimensionMismatch,
		},
		{
			name: "Class count differs from binarizer",
			mutate: func(files map[string][]byte) {
				files[BinarizerFile] = []byte(`{"classes": ["0", "1"]}`)
			},
			target: errors.ErrDimensionMismatch,
		},
		{
			name: "Ragged coefficients",
			mutate: func(files map[string][]byte) {
				files[ClassifierFile] = []byte(`{"kind": "one_vs_rest_logistic", "coef": [[1, 0], [1]], "intercept": [0, 0]}`)
			},
			target: errors.ErrDimensionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			files := readDemo(t)
			tt.mutate(files)

			_, err := LoadBundleFromFiles(log, files)
			req.ErrorIs(err, errors.ErrArtifactLoad)
			if tt.target != nil {
				req.ErrorIs(err, tt.target)
			}
		})
	}
}

func TestLoadBundle_MissingDirectory(t *testing.T) {
	_, err := LoadBundle(logs.GetLoggerFromLevel(slog.LevelDebug), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, errors.ErrArtifactLoad)
}

func TestLoadBundle_UndecodableClassIsNotFatal(t *testing.T) {
	req := require.New(t)
	files := readDemo(t)
	files[DecoderFile] = []byte(`{"labels": {"0": "comedy", "1": "romance"}}`)

	bundle, err := LoadBundleFromFiles(logs.GetLoggerFromLevel(slog.LevelDebug), files)
	req.NoError(err)
	_, ok := bundle.Decoder.Decode("2")
	req.False(ok)
}
