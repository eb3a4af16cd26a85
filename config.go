package gaussblur

import (
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// LoadConfig reads the blur options from a TOML document, e.g.
//
//	radius = 4
//	edge = "zero-fill"
//	workers = 2
//
// Missing keys keep their defaults and unknown keys are rejected.
// The returned options are already validated.
func LoadConfig(r io.Reader) (*Blur, error) {
	b := &Blur{
		Radius: DefaultRadius,
		Edge:   EdgeNoOp,
	}

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(b); err != nil {
		return nil, errors.Wrap(err, "could not decode the blur configuration")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
