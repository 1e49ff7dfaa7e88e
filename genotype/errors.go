package genotype

import (
	"errors"
	"fmt"
)

// InvalidGenotypesMessage is what a user sees when either parent genotype is
// rejected.
const InvalidGenotypesMessage = "Please enter valid genotypes for both parents (e.g., Aa, AA, or aa)."

// ErrInvalidGenotypeLength is matched by every *InvalidGenotypeLengthError.
var ErrInvalidGenotypeLength = errors.New("genotype must be exactly 2 characters")

// InvalidGenotypeLengthError reports a parent genotype whose length is not 2.
type InvalidGenotypeLengthError struct {
	// Parent is 1 or 2 when known, 0 otherwise.
	Parent int
	Input  string
	Length int
}

func (e *InvalidGenotypeLengthError) Error() string {
	if e.Parent > 0 {
		return fmt.Sprintf("parent %d genotype %q has %d characters: %s", e.Parent, e.Input, e.Length, ErrInvalidGenotypeLength)
	}

	return fmt.Sprintf("genotype %q has %d characters: %s", e.Input, e.Length, ErrInvalidGenotypeLength)
}

func (e *InvalidGenotypeLengthError) Is(target error) bool {
	return target == ErrInvalidGenotypeLength
}
