package rap

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput indicates a derived value was requested before the
	// fields it depends on were set.
	ErrMissingInput = errors.New("rap: missing input")
	// ErrInvalidConstruction indicates a pillar without a sample or a formula
	// whose constant, constant source and category disagree.
	ErrInvalidConstruction = errors.New("rap: invalid construction")
	// ErrRootNotFound indicates the pillar width solver did not converge.
	ErrRootNotFound = errors.New("rap: pillar width root not found")
	// ErrUnsupportedFormula indicates an operation the selected formula
	// cannot take part in, such as back-solving an odd formula.
	ErrUnsupportedFormula = errors.New("rap: operation not supported by formula")
	// ErrUnknownFormula indicates a catalogue lookup miss.
	ErrUnknownFormula = errors.New("rap: unknown formula")
)

// MissingInputError names the unset field.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("rap: missing input %q", e.Field)
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

func missing(field string) error { return &MissingInputError{Field: field} }

// ConstructionError describes what could not be built and why.
type ConstructionError struct {
	What   string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("rap: invalid %s: %s", e.What, e.Reason)
}

func (e *ConstructionError) Unwrap() error { return ErrInvalidConstruction }

// RootFindingError reports the solver stage that gave up.
type RootFindingError struct {
	Stage string // "bracket" or "newton"
	Steps int
	Last  float64
}

func (e *RootFindingError) Error() string {
	return fmt.Sprintf("rap: pillar width %s search failed after %d steps (last x=%g)", e.Stage, e.Steps, e.Last)
}

func (e *RootFindingError) Unwrap() error { return ErrRootNotFound }
