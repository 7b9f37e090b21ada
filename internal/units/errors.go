package units

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned by Registry lookups for names it does not know.
var ErrUnknownUnit = errors.New("units: unknown unit")

// DimensionalityError reports an operation between quantities whose
// dimensions are incompatible.
type DimensionalityError struct {
	Op   string
	From Dimension
	To   Dimension
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("units: cannot %s %s and %s", e.Op, e.From, e.To)
}

// IsDimensionality reports whether err is, or wraps, a *DimensionalityError.
func IsDimensionality(err error) bool {
	var de *DimensionalityError
	return errors.As(err, &de)
}
