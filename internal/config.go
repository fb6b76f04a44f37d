package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

const (
	SourceDir    = "dir"
	SourceBadger = "badger"
)

type Config struct {
	ArtifactSource string `env:"ARTIFACT_SOURCE,default=dir" validate:"oneof=dir badger"`
	ArtifactDir    string `env:"ARTIFACT_DIR,default=outputs/clf_logistic" validate:"required_if=ArtifactSource dir"`
	BadgerFilepath string `env:"BADGER_FILEPATH" validate:"required_if=ArtifactSource badger"`
	BundleVersion  string `env:"BUNDLE_VERSION" validate:"omitempty,uuid"`
	Stopwords      string `env:"STOPWORDS,default=nltk" validate:"oneof=nltk snowball file"`
	StopwordsFile  string `env:"STOPWORDS_FILE" validate:"required_if=Stopwords file"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	LanguageCheck  bool   `env:"LANGUAGE_CHECK,default=true"`
}

var validate = validator.New()

// LoadConfig reads the process environment. Call godotenv.Load first to honour a .env file.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}
