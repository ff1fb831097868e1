// Package validation checks domain construction parameters before any core
// object (graph, layout engine) is built, following the struct-tag
// validation pattern used elsewhere in this codebase's HTTP request
// validation.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GraphParams are the parameters accepted by an Erdos-Renyi graph build.
type GraphParams struct {
	Vertices    int     `validate:"gte=0"`
	Probability float64 `validate:"gte=0,lte=1"`
}

// ValidateGraphParams checks p, the graph structure's edge probability.
func ValidateGraphParams(params GraphParams) error {
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("invalid graph parameters: %w", formatValidationError(err))
	}
	return nil
}

// EngineParams are the parameters accepted by LayoutEngine construction and
// tuning.
type EngineParams struct {
	Width          float64 `validate:"gt=0"`
	Height         float64 `validate:"gt=0"`
	ScalingConstant float64 `validate:"gte=0"`
	CoolingRate    float64 `validate:"gt=0,lte=1"`
	Theta          float64 `validate:"gte=0"`
}

// ValidateEngineParams checks the frame extents, cooling rate and
// Barnes-Hut theta before a LayoutEngine is constructed or tuned.
func ValidateEngineParams(params EngineParams) error {
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("invalid engine parameters: %w", formatValidationError(err))
	}
	return nil
}

// formatValidationError turns validator.v10's field errors into a single
// descriptive message.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	if len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return fmt.Errorf("field %q failed validation %q (value: %v)", fe.Field(), fe.Tag(), fe.Value())
}
