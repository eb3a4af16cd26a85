package gaussblur

import (
	"fmt"

	"github.com/pkg/errors"
)

// EdgeCondition decides what happens with the destination pixels
// for which the kernel would read outside of the source image.
type EdgeCondition int

const (
	// EdgeNoOp copies the source pixel unchanged.
	EdgeNoOp EdgeCondition = iota
	// EdgeZeroFill sets all the channels, alpha included, to zero.
	EdgeZeroFill
	// EdgeExtend repeats the nearest border pixel outside the image.
	EdgeExtend
	// EdgeWrap reads the missing pixels from the opposite side of the image.
	EdgeWrap
)

var edgeNames = map[EdgeCondition]string{
	EdgeNoOp:     "no-op",
	EdgeZeroFill: "zero-fill",
	EdgeExtend:   "extend",
	EdgeWrap:     "wrap",
}

func (e EdgeCondition) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EdgeCondition(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e EdgeCondition) MarshalText() ([]byte, error) {
	if !e.valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown edge condition %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EdgeCondition) UnmarshalText(text []byte) error {
	for cond, name := range edgeNames {
		if name == string(text) {
			*e = cond
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidArgument, "unknown edge condition %q", string(text))
}

func (e EdgeCondition) valid() bool {
	_, ok := edgeNames[e]
	return ok
}
