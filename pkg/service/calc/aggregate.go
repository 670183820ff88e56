package calc

import (
	"fmt"

	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/amirasaad/cryptomath/pkg/money"
)

// Kind selects an aggregate.
type Kind int

const (
	Sum Kind = iota
	Max
	Min
)

func (k Kind) String() string {
	switch k {
	case Sum:
		return "sum"
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses "sum", "max" or "min".
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{Sum, Max, Min} {
		if k.String() == s {
			return k, nil
		}
	}
	return Sum, fmt.Errorf("unknown aggregate %q", s)
}

// Aggregate accumulates amounts row by row.
type Aggregate struct {
	svc     *Service
	kind    Kind
	operand currency.Denom
	final   currency.Denom
	acc     money.Amount
	rows    int
}

// NewAggregate resolves the symbols of an aggregate. Operands are read in
// operandSym and the result is formatted in finalSym.
func (s *Service) NewAggregate(kind Kind, curSym, operandSym, finalSym string) (*Aggregate, error) {
	cur, err := s.currency(curSym)
	if err != nil {
		return nil, err
	}
	final, err := s.denom(cur, finalSym, RoleFinal)
	if err != nil {
		return nil, err
	}
	operand, err := s.denom(cur, operandSym, RoleOperand)
	if err != nil {
		return nil, err
	}
	return &Aggregate{svc: s, kind: kind, operand: operand, final: final, acc: money.New(cur)}, nil
}

// Step folds one value, read in the operand denomination given to
// NewAggregate. A malformed value returns an OperandError and leaves the
// aggregate unchanged.
func (a *Aggregate) Step(text string) error {
	return a.step(a.operand, text)
}

// StepRow folds one value that carries its own symbols, as rows of a SQL
// aggregate do. The value is read in operandSym. curSym must name the
// aggregate's currency and finalSym must resolve in it, but the result keeps
// the final denomination given to NewAggregate.
func (a *Aggregate) StepRow(curSym, operandSym, finalSym, text string) error {
	cur, err := a.svc.currency(curSym)
	if err != nil {
		return err
	}
	if want := a.acc.Currency(); cur != want {
		return fmt.Errorf("%w: %s aggregate given %s", money.ErrCurrencyMismatch, want, cur)
	}
	if _, err := a.svc.denom(cur, finalSym, RoleFinal); err != nil {
		return err
	}
	operand, err := a.svc.denom(cur, operandSym, RoleOperand)
	if err != nil {
		return err
	}
	return a.step(operand, text)
}

func (a *Aggregate) step(operand currency.Denom, text string) error {
	v, err := parse(operand, text, Operand)
	if err != nil {
		return err
	}
	if a.rows == 0 {
		a.acc = v
		a.rows++
		return nil
	}

	switch a.kind {
	case Sum:
		a.acc, err = a.acc.Add(v)
	case Max:
		a.acc, err = money.Max(a.acc, v)
	case Min:
		a.acc, err = money.Min(a.acc, v)
	default:
		err = fmt.Errorf("unknown aggregate %s", a.kind)
	}
	if err != nil {
		return err
	}
	a.rows++
	return nil
}

// Rows returns the number of values folded so far.
func (a *Aggregate) Rows() int { return a.rows }

// Result formats the aggregate in the final denomination. ok is false when
// no value has been folded.
func (a *Aggregate) Result() (string, bool) {
	if a.rows == 0 {
		return "", false
	}
	s, err := a.acc.ToDecimal(a.final)
	if err != nil {
		return "", false
	}
	return s, true
}
