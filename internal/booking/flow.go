package booking

import (
	"errors"
	"fmt"
	"strings"

	"breezehire/internal/catalog"
	"breezehire/internal/domain"
)

// Flow states. A flow starts in Editing; Submit moves it through
// Submitting to Submitted or Failed, and Reset returns it to Editing.
type State int

const (
	Editing State = iota
	Submitting
	Submitted
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// FormData holds the mutable booking form fields.
type FormData struct {
	Name      string
	Email     string
	Phone     string
	Location  string
	ProductID string
	Duration  string
	StartDate string
	Message   string // optional
}

// Handler receives the collected request. A non-nil error moves the
// flow to Failed instead of Submitted.
type Handler func(domain.BookingRequest) error

var ErrNotEditing = errors.New("booking: form is not editable in this state")

// Flow is the booking intake state machine. Not safe for concurrent
// use; each form instance owns one.
type Flow struct {
	state       State
	data        FormData
	preSelected string
	failReason  string
}

// NewFlow starts an editing flow. preSelected, when non-empty, seeds
// the product field and survives Reset.
func NewFlow(preSelected string) *Flow {
	return &Flow{
		state: Editing,
		data: FormData{
			ProductID: preSelected,
			Duration:  domain.Daily,
		},
		preSelected: preSelected,
	}
}

func (f *Flow) State() State       { return f.state }
func (f *Flow) Data() FormData     { return f.data }
func (f *Flow) FailReason() string { return f.failReason }

// Update replaces the form fields. Only legal while editing.
func (f *Flow) Update(d FormData) error {
	if f.state != Editing {
		return ErrNotEditing
	}
	if d.Duration == "" {
		d.Duration = domain.Daily
	}
	f.data = d
	return nil
}

// CurrentPrice is the derived read-only price for the selected product
// and duration, recomputed from whatever is currently selected. ok is
// false when no product is selected or the product is not rentable.
func (f *Flow) CurrentPrice(products []domain.Product) (float64, bool) {
	if f.data.ProductID == "" {
		return 0, false
	}
	for _, p := range products {
		if p.ID == f.data.ProductID {
			return catalog.PriceFor(p, f.data.Duration)
		}
	}
	return 0, false
}

// Submit runs the presence check, hands the request to h and settles in
// Submitted or Failed. Required fields are everything except message;
// a miss keeps the flow editable and returns the offending field.
func (f *Flow) Submit(h Handler) error {
	if f.state != Editing {
		return ErrNotEditing
	}
	if field, ok := f.missingField(); !ok {
		return fmt.Errorf("booking: required field %q is empty", field)
	}

	f.state = Submitting
	req := domain.BookingRequest{
		Name:      f.data.Name,
		Email:     f.data.Email,
		Phone:     f.data.Phone,
		Location:  f.data.Location,
		ProductID: f.data.ProductID,
		Duration:  f.data.Duration,
		StartDate: f.data.StartDate,
		Message:   f.data.Message,
	}
	if err := h(req); err != nil {
		f.state = Failed
		f.failReason = err.Error()
		return err
	}
	f.state = Submitted
	return nil
}

// Reset clears the form back to defaults and re-applies the
// pre-selected product. Legal from Submitted and Failed.
func (f *Flow) Reset() {
	f.state = Editing
	f.failReason = ""
	f.data = FormData{
		ProductID: f.preSelected,
		Duration:  domain.Daily,
	}
}

func (f *Flow) missingField() (string, bool) {
	required := []struct{ name, val string }{
		{"name", f.data.Name},
		{"email", f.data.Email},
		{"phone", f.data.Phone},
		{"location", f.data.Location},
		{"product", f.data.ProductID},
		{"duration", f.data.Duration},
		{"start_date", f.data.StartDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return r.name, false
		}
	}
	return "", true
}
