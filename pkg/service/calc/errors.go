package calc

import "fmt"

// Operand positions reported by OperandError.
const (
	First   = "first operand"
	Second  = "second operand"
	Operand = "operand"
)

// Denomination roles reported by DenomError. The empty role is the single
// denomination of add, sub, mul, div and cmp.
const (
	RoleFrom    = "from"
	RoleTo      = "to"
	RoleOperand = "operand"
	RoleFinal   = "final"
)

// OperandError reports a malformed decimal argument.
type OperandError struct {
	Position string
	Err      error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("invalid decimal format for %s: %v", e.Position, e.Err)
}

func (e *OperandError) Unwrap() error { return e.Err }

// DenomError reports an unknown denomination symbol.
type DenomError struct {
	Role string
	Err  error
}

func (e *DenomError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("invalid denomination: %v", e.Err)
	}
	return fmt.Sprintf("invalid %s denomination: %v", e.Role, e.Err)
}

func (e *DenomError) Unwrap() error { return e.Err }
