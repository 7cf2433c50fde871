package codegen

import (
	"fmt"

	"github.com/gogpu/naga"
)

// Validate parses, lowers and validates WGSL source, returning the first
// problem found.
func Validate(source string) error {
	ast, err := naga.Parse(source)
	if err != nil {
		return fmt.Errorf("codegen: %w", err)
	}

	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return fmt.Errorf("codegen: lowering error: %w", err)
	}

	validationErrors, err := naga.Validate(module)
	if err != nil {
		return fmt.Errorf("codegen: validation error: %w", err)
	}
	if len(validationErrors) > 0 {
		return fmt.Errorf("codegen: validation failed: %w", validationErrors[0])
	}
	return nil
}
