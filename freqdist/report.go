package freqdist

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gookit/color"
)

const (
	DefaultTerms = 30
	DefaultTitle = "Most Frequent Words"
	DefaultColor = "blue"
)

var validate = validator.New()

// Config controls what a report shows and how it looks.
type Config struct {
	Terms   int    `validate:"min=1"`
	Title   string `validate:"max=200"`
	Largest bool
	Color   string `validate:"oneof=black red green yellow blue magenta cyan white"`
}

func DefaultConfig() Config {
	return Config{
		Terms:   DefaultTerms,
		Title:   DefaultTitle,
		Largest: true,
		Color:   DefaultColor,
	}
}

// Renderer draws selected entries.
type Renderer interface {
	Render(w io.Writer, cfg Config, entries []Entry) error
}

// Report selects cfg.Terms entries from fd and renders them to w.
func Report(w io.Writer, fd *FreqDist, cfg Config, renderer Renderer) error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	return renderer.Render(w, cfg, fd.Select(cfg.Terms, cfg.Largest))
}

type rgb struct {
	r, g, b int
}

type palette struct {
	term color.Color
	fill rgb
}

var palettes = map[string]palette{
	"black":   {term: color.FgBlack, fill: rgb{0, 0, 0}},
	"red":     {term: color.FgRed, fill: rgb{214, 39, 40}},
	"green":   {term: color.FgGreen, fill: rgb{44, 160, 44}},
	"yellow":  {term: color.FgYellow, fill: rgb{230, 190, 30}},
	"blue":    {term: color.FgBlue, fill: rgb{31, 119, 180}},
	"magenta": {term: color.FgMagenta, fill: rgb{200, 60, 180}},
	"cyan":    {term: color.FgCyan, fill: rgb{23, 190, 207}},
	"white":   {term: color.FgWhite, fill: rgb{200, 200, 200}},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[DefaultColor]
}

func maxCount(entries []Entry) int {
	highest := 0
	for _, e := range entries {
		if e.Count > highest {
			highest = e.Count
		}
	}
	return highest
}
