package checkout

import "errors"

var (
	ErrIncompleteAddress = errors.New("required address fields missing")
	ErrAlreadyPlaced     = errors.New("order already placed")
	ErrAtFirstStep       = errors.New("already at first step")
)

type Step int

const (
	StepAddress Step = iota
	StepPayment
	StepReview
	StepPlaced
)

func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepPlaced:
		return "placed"
	}
	return "unknown"
}

type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Complete reports whether every required field is filled. Line2 is
// optional.
func (a Address) Complete() bool {
	return a.Name != "" && a.Phone != "" && a.Line1 != "" &&
		a.City != "" && a.State != "" && a.Pincode != ""
}

// Flow is the linear checkout progression for one session:
// address -> payment -> review -> placed. Backward navigation is free
// until the order is placed.
type Flow struct {
	Step          Step
	Address       Address
	PaymentMethod string
}

func NewFlow() *Flow {
	return &Flow{PaymentMethod: "card"}
}

// SetAddress stores the address without advancing; advancing is gated
// separately so partial edits are fine.
func (f *Flow) SetAddress(a Address) error {
	if f.Step == StepPlaced {
		return ErrAlreadyPlaced
	}
	f.Address = a
	return nil
}

func (f *Flow) SetPaymentMethod(m string) error {
	if f.Step == StepPlaced {
		return ErrAlreadyPlaced
	}
	if m != "" {
		f.PaymentMethod = m
	}
	return nil
}

// Next advances one step. Address -> payment requires a complete
// address; payment -> review is unconditional. Review -> placed happens
// through Service.PlaceOrder, not here.
func (f *Flow) Next() error {
	switch f.Step {
	case StepAddress:
		if !f.Address.Complete() {
			return ErrIncompleteAddress
		}
		f.Step = StepPayment
	case StepPayment:
		f.Step = StepReview
	case StepReview, StepPlaced:
		return ErrAlreadyPlaced
	}
	return nil
}

func (f *Flow) Back() error {
	switch f.Step {
	case StepAddress:
		return ErrAtFirstStep
	case StepPlaced:
		return ErrAlreadyPlaced
	default:
		f.Step--
	}
	return nil
}
