package model

import "genre-lab/domain"

// DecoderSpec maps label codes to genre names.
type DecoderSpec struct {
	Labels map[domain.LabelCode]string `json:"labels" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

// GenreDecoder is a read-only code to genre lookup.
type GenreDecoder struct {
	labels map[domain.LabelCode]string
}

func NewGenreDecoder(spec DecoderSpec) *GenreDecoder {
	labels := make(map[domain.LabelCode]string, len(spec.Labels))
	for code, name := range spec.Labels {
		labels[code] = name
	}
	return &GenreDecoder{labels: labels}
}

func (d *GenreDecoder) Decode(code domain.LabelCode) (string, bool) {
	name, ok := d.labels[code]
	return name, ok
}

func (d *GenreDecoder) Len() int {
	return len(d.labels)
}
