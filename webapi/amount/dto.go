package amount

// OperationRequest is the body of add, sub, mul, div and cmp. For mul and
// div, B is the decimal scalar.
type OperationRequest struct {
	Currency string `json:"currency" validate:"required"`
	Denom    string `json:"denom" validate:"required"`
	A        string `json:"a" validate:"required"`
	B        string `json:"b" validate:"required"`
}

// DivRequest adds the rounding mode. An empty mode uses the server default.
type DivRequest struct {
	OperationRequest
	Mode string `json:"mode" validate:"omitempty,oneof=trunc floor ceil"`
}

// ConvertRequest re-expresses Amount, given in From, in To.
type ConvertRequest struct {
	Currency string `json:"currency" validate:"required"`
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
}

// ReduceRequest folds Values, given in Denom, and reports the result in
// Final, or Denom when Final is empty.
type ReduceRequest struct {
	Kind     string   `json:"kind" validate:"required,oneof=sum max min"`
	Currency string   `json:"currency" validate:"required"`
	Denom    string   `json:"denom" validate:"required"`
	Final    string   `json:"final"`
	Values   []string `json:"values" validate:"required,min=1,max=100000"`
}

// ResultResponse carries a decimal result and the denomination it is in.
type ResultResponse struct {
	Currency string `json:"currency"`
	Denom    string `json:"denom"`
	Result   string `json:"result"`
}

// CmpResponse carries the sign of a - b.
type CmpResponse struct {
	Result int `json:"result"`
}
