// Package form holds the state behind the client form: one structured
// object updated on every field change, from which the submitted payload
// is derived directly.
package form

import (
	"context"
	"errors"
	"sync"

	"github.com/BruksfildServices01/client-directory/internal/enrichment"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

type Action string

const (
	ActionCNPJ   Action = "cnpj"
	ActionCEP    Action = "cep"
	ActionSubmit Action = "submit"
)

// FormError is the error key for failures not tied to a single field.
const FormError = "form"

const msgSubmitFailed = "Não foi possível salvar. Tente novamente."

// ErrBusy is returned when the triggering control is still disabled
// because the same action is in flight.
var ErrBusy = errors.New("form: action already in progress")

type Enricher interface {
	Lookup(ctx context.Context, kind enrichment.Kind, key string) (enrichment.Prefill, error)
}

type Submitter interface {
	Submit(ctx context.Context, in validation.ClientInput) error
}

// SubmitFunc adapts a function to Submitter.
type SubmitFunc func(ctx context.Context, in validation.ClientInput) error

func (f SubmitFunc) Submit(ctx context.Context, in validation.ClientInput) error {
	return f(ctx, in)
}

type State struct {
	mu     sync.Mutex
	values map[string]string
	errs   validation.Errors
	busy   map[Action]bool
}

func New() *State {
	return &State{
		values: make(map[string]string, len(validation.Fields)),
		errs:   validation.Errors{},
		busy:   map[Action]bool{},
	}
}

// FromInput starts an edit form from an existing record.
func FromInput(in validation.ClientInput) *State {
	s := New()
	for k, v := range in.Values() {
		s.values[k] = v
	}
	return s
}

// Set records a field change and clears that field's message.
func (s *State) Set(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[field] = value
	delete(s.errs, field)
}

func (s *State) Value(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[field]
}

func (s *State) Error(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs[field]
}

func (s *State) Errors() validation.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(validation.Errors, len(s.errs))
	for k, v := range s.errs {
		out[k] = v
	}
	return out
}

func (s *State) Busy(a Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy[a]
}

func (s *State) Payload() validation.ClientInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validation.FromValues(s.values)
}

// Validate replaces the current messages with the schema's verdict.
func (s *State) Validate() bool {
	errs := validation.ValidateClient(s.Payload())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = validation.Errors{}
	for k, v := range errs {
		s.errs[k] = v
	}
	return len(errs) == 0
}

// Apply writes prefilled values. Fields the lookup did not return keep
// whatever the user typed.
func (s *State) Apply(p enrichment.Prefill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range p {
		s.values[k] = v
		delete(s.errs, k)
	}
}

func (s *State) begin(a Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[a] {
		return false
	}
	s.busy[a] = true
	return true
}

func (s *State) end(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, a)
}

func (s *State) setError(field, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[field] = msg
}

// Lookup enriches the form from the key currently typed in the cnpj or
// cep field. On failure only that field's message changes.
func (s *State) Lookup(ctx context.Context, e Enricher, kind enrichment.Kind) error {
	action := Action(kind)
	if !s.begin(action) {
		return ErrBusy
	}
	defer s.end(action)

	field := string(kind)
	key := s.Value(field)
	if msg := validation.ValidateField(field, key); msg != "" {
		s.setError(field, msg)
		return validation.Errors{field: msg}
	}

	p, err := e.Lookup(ctx, kind, key)
	if err != nil {
		s.setError(field, lookupMessage(field, err))
		return err
	}

	s.Apply(p)
	s.mu.Lock()
	delete(s.errs, field)
	s.mu.Unlock()
	return nil
}

func lookupMessage(field string, err error) string {
	var le *enrichment.LookupError
	if errors.As(err, &le) {
		return le.Message()
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) && verrs[field] != "" {
		return verrs[field]
	}
	return (&enrichment.LookupError{Field: field}).Message()
}

// Submit validates locally and hands the payload to sub. Messages the
// server returns per field are merged back into the form.
func (s *State) Submit(ctx context.Context, sub Submitter) error {
	if !s.begin(ActionSubmit) {
		return ErrBusy
	}
	defer s.end(ActionSubmit)

	if !s.Validate() {
		return s.Errors()
	}

	err := sub.Submit(ctx, s.Payload())
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		s.mu.Lock()
		for k, v := range verrs {
			s.errs[k] = v
		}
		s.mu.Unlock()
		return err
	}

	s.setError(FormError, msgSubmitFailed)
	return err
}
