package schema

import (
	"fmt"

	"github.com/omniform/docptr/ir"
)

// ValidateFunc is the external JSON-Schema validation routine boundary: it
// receives a fully located schema definition and the value to check.
type ValidateFunc func(schema, value *ir.Node) error

// Validator orchestrates validation: it resolves references to nested
// sub-definitions and hands located definitions to the external routine.
type Validator struct {
	Resolver *Resolver
	Validate ValidateFunc
}

func NewValidator(resolver *Resolver, fn ValidateFunc) *Validator {
	return &Validator{Resolver: resolver, Validate: fn}
}

// ValidateRef expands the schema the "$ref" string addresses and validates
// value against it.
func (v *Validator) ValidateRef(ref string, value *ir.Node) error {
	def, err := v.Resolver.Resolve(ref)
	if err != nil {
		return err
	}
	return v.ValidateDef(def, value)
}

// ValidateDef expands a definition's reference chain and delegates to the
// external routine.
func (v *Validator) ValidateDef(def, value *ir.Node) error {
	if v.Validate == nil {
		return fmt.Errorf("no validation routine configured")
	}
	expanded, err := v.Resolver.Expand(def)
	if err != nil {
		return err
	}
	return v.Validate(expanded, value)
}
