package forms

import "errors"

// Form state constants
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
)

var (
	// ErrInvalid is returned by Submit when schema validation failed; the
	// per-field messages are available via FieldErrors
	ErrInvalid = errors.New("form validation failed")
	// ErrSubmitInFlight is returned when Submit is called while a prior
	// submission has not settled yet
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// SubmitFunc receives the validated, normalized snapshot. It must perform at
// most one persistence call; the Form guarantees it is invoked at most once
// per accepted submission.
type SubmitFunc func(Values) error

// Form binds input to a schema: it holds the current (possibly invalid) value
// of every declared field, re-validates a field on each change, and gates
// submission behind full-schema validation plus an in-flight guard.
//
// A Form belongs to a single request/goroutine; it has no internal locking.
type Form struct {
	schema *Schema
	values Values
	errors Errors
	state  State
}

// New creates an empty form bound to the given schema
func New(schema *Schema) *Form {
	return &Form{
		schema: schema,
		values: make(Values),
		errors: make(Errors),
	}
}

// SetField unconditionally stores the value and recomputes that field's error
// state only; no other field's errors change. Editing after a failed attempt
// returns the form to idle.
func (f *Form) SetField(name string, v Value) {
	f.values[name] = v
	if msg := f.schema.ValidateField(name, v); msg != "" {
		f.errors[name] = msg
	} else {
		delete(f.errors, name)
	}
	if f.state != StateSubmitting {
		f.state = StateIdle
	}
}

// Value returns the currently stored value for a field
func (f *Form) Value(name string) Value {
	return f.values[name]
}

// Values returns a copy of the current raw snapshot
func (f *Form) Values() Values {
	return f.values.Clone()
}

// FieldErrors returns the current per-field error messages
func (f *Form) FieldErrors() Errors {
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// State returns the current lifecycle state
func (f *Form) State() State {
	return f.state
}

// Submit re-validates the whole snapshot and, when every field passes, invokes
// fn exactly once with the normalized values. While fn is running the form
// rejects re-entry, so rapid repeated submission cannot duplicate the
// persistence call. Stored values are never modified here: a validation
// failure or a collaborator failure leaves them intact for retry.
func (f *Form) Submit(fn SubmitFunc) (Values, error) {
	if f.state == StateSubmitting {
		return nil, ErrSubmitInFlight
	}

	normalized, errs := f.schema.Validate(f.values)
	if errs != nil {
		f.errors = errs
		f.state = StateIdle
		return nil, ErrInvalid
	}

	f.state = StateSubmitting
	if err := fn(normalized); err != nil {
		f.state = StateIdle
		return nil, err
	}

	f.state = StateSucceeded
	return normalized, nil
}
