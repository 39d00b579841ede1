package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrUnknownDeliveryType = errors.New("unknown delivery type")
	ErrUnknownField        = errors.New("unknown form field")
	ErrFormNotValid        = errors.New("form is not valid")
)

type DeliveryType string

const (
	DeliveryHouse  DeliveryType = "house"
	DeliveryOffice DeliveryType = "office"
)

func ParseDeliveryType(s string) (DeliveryType, error) {
	switch d := DeliveryType(s); d {
	case DeliveryHouse, DeliveryOffice:
		return d, nil
	case "":
		return DeliveryHouse, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDeliveryType, s)
}

type Field string

const (
	FieldName     Field = "name"
	FieldPhone    Field = "phone"
	FieldRegion   Field = "region"
	FieldCommune  Field = "commune"
	FieldDelivery Field = "delivery_type"
	FieldAddress  Field = "address"
)

// ValidatedFields are the fields checked on submit, in form order.
var ValidatedFields = []Field{
	FieldName, FieldPhone, FieldRegion, FieldCommune, FieldAddress,
}

type Violation string

const (
	ViolationRequired      Violation = "required"
	ViolationPhoneInvalid  Violation = "phone_invalid"
	ViolationRegionUnknown Violation = "region_unknown"
)

type Violations map[Field]Violation

func (v Violations) Valid() bool {
	return len(v) == 0
}

var phonePattern = regexp.MustCompile(`^(\+213|0)[567][0-9]{8}$`)

// NormalizePhone strips every whitespace rune.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func IsValidPhone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

// CustomerDetails are the buyer fields typed into the checkout form.
type CustomerDetails struct {
	Name         string
	Phone        string
	Region       string
	Commune      string
	DeliveryType DeliveryType
	Address      string
}

// Validate reports every violation at once.
func (c CustomerDetails) Validate() Violations {
	vs := make(Violations)

	if blank(c.Name) {
		vs[FieldName] = ViolationRequired
	}

	switch {
	case blank(c.Phone):
		vs[FieldPhone] = ViolationRequired
	case !IsValidPhone(c.Phone):
		vs[FieldPhone] = ViolationPhoneInvalid
	}

	switch {
	case blank(c.Region):
		vs[FieldRegion] = ViolationRequired
	case !IsKnownRegion(strings.TrimSpace(c.Region)):
		vs[FieldRegion] = ViolationRegionUnknown
	}

	if blank(c.Commune) {
		vs[FieldCommune] = ViolationRequired
	}

	if blank(c.Address) {
		vs[FieldAddress] = ViolationRequired
	}

	return vs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type FormState int

const (
	FormEmpty FormState = iota
	FormEditing
	FormInvalid
	FormValidatedPending
	FormSubmitted
	FormCancelled
)

var formStateNames = [...]string{
	FormEmpty:            "empty",
	FormEditing:          "editing",
	FormInvalid:          "invalid",
	FormValidatedPending: "validated_pending",
	FormSubmitted:        "submitted",
	FormCancelled:        "cancelled",
}

func (s FormState) String() string {
	if int(s) < len(formStateNames) {
		return formStateNames[s]
	}
	return fmt.Sprintf("FormState(%d)", int(s))
}

// A CheckoutForm tracks one checkout attempt.
//
// Submitted and Cancelled close the attempt; the next Edit starts a new one
// from an empty form.
type CheckoutForm struct {
	state      FormState
	details    CustomerDetails
	violations Violations
}

func NewCheckoutForm() *CheckoutForm {
	return &CheckoutForm{
		details:    CustomerDetails{DeliveryType: DeliveryHouse},
		violations: make(Violations),
	}
}

func (f *CheckoutForm) State() FormState {
	return f.state
}

func (f *CheckoutForm) Details() CustomerDetails {
	return f.details
}

// Violations returns a copy of the outstanding errors.
func (f *CheckoutForm) Violations() Violations {
	vs := make(Violations, len(f.violations))
	for k, v := range f.violations {
		vs[k] = v
	}
	return vs
}

// Edit sets one field and clears only that field's error.
func (f *CheckoutForm) Edit(field Field, value string) error {
	if f.state == FormSubmitted || f.state == FormCancelled {
		f.Reset()
	}

	switch field {
	case FieldName:
		f.details.Name = value
	case FieldPhone:
		f.details.Phone = value
	case FieldRegion:
		f.details.Region = value
	case FieldCommune:
		f.details.Commune = value
	case FieldAddress:
		f.details.Address = value
	case FieldDelivery:
		d, err := ParseDeliveryType(value)
		if err != nil {
			return err
		}
		f.details.DeliveryType = d
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	delete(f.violations, field)
	f.state = FormEditing
	return nil
}

// Validate checks the current input and moves to Invalid or
// ValidatedPending.
func (f *CheckoutForm) Validate() Violations {
	f.violations = f.details.Validate()
	if f.violations.Valid() {
		f.state = FormValidatedPending
	} else {
		f.state = FormInvalid
	}
	return f.Violations()
}

// Submit always re-validates. A valid form yields its details, reaches
// Submitted and drops the input.
func (f *CheckoutForm) Submit() (CustomerDetails, error) {
	if vs := f.Validate(); !vs.Valid() {
		return CustomerDetails{}, ErrFormNotValid
	}
	details := f.details
	f.clear()
	f.state = FormSubmitted
	return details, nil
}

func (f *CheckoutForm) Cancel() {
	f.clear()
	f.state = FormCancelled
}

func (f *CheckoutForm) Reset() {
	f.clear()
	f.state = FormEmpty
}

func (f *CheckoutForm) clear() {
	f.details = CustomerDetails{DeliveryType: DeliveryHouse}
	f.violations = make(Violations)
}
