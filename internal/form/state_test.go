package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/BruksfildServices01/client-directory/internal/enrichment"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

type enricherFunc func(ctx context.Context, kind enrichment.Kind, key string) (enrichment.Prefill, error)

func (f enricherFunc) Lookup(ctx context.Context, kind enrichment.Kind, key string) (enrichment.Prefill, error) {
	return f(ctx, kind, key)
}

func filledState() *State {
	return FromInput(validation.ClientInput{
		Image:       "http://x/a.png",
		CNPJ:        "12345678000199",
		Name:        "Acme",
		FantasyName: "Acme Co",
		CEP:         "01310000",
		Logradouro:  "Av Paulista",
		Bairro:      "Bela Vista",
		City:        "São Paulo",
		UF:          "SP",
		Email:       "a@a.com",
		Phone:       "1199999999",
	})
}

func TestState_SetClearsFieldError(t *testing.T) {
	s := New()
	if s.Validate() {
		t.Fatalf("empty form must not validate")
	}
	if s.Error(validation.FieldCNPJ) == "" || s.Error(validation.FieldEmail) == "" {
		t.Fatalf("expected errors, got %v", s.Errors())
	}

	s.Set(validation.FieldCNPJ, "1")
	if s.Error(validation.FieldCNPJ) != "" {
		t.Fatalf("Set must clear the field error")
	}
	if s.Error(validation.FieldEmail) == "" {
		t.Fatalf("Set must not touch other fields")
	}
}

func TestState_PayloadFollowsValues(t *testing.T) {
	s := filledState()
	s.Set(validation.FieldComplement, "Sala 3")

	p := s.Payload()
	if p.Complement != "Sala 3" || p.CNPJ != "12345678000199" {
		t.Fatalf("unexpected payload %+v", p)
	}
	if !s.Validate() {
		t.Fatalf("expected valid form, got %v", s.Errors())
	}
}

func TestState_LookupAppliesPrefill(t *testing.T) {
	s := filledState()
	s.Set(validation.FieldCEP, "20040002")
	s.Set(validation.FieldComplement, "typed by user")

	var gotKey string
	e := enricherFunc(func(_ context.Context, kind enrichment.Kind, key string) (enrichment.Prefill, error) {
		if kind != enrichment.KindCEP {
			t.Fatalf("unexpected kind %s", kind)
		}
		gotKey = key
		return enrichment.Prefill{validation.FieldCity: "Rio de Janeiro", validation.FieldUF: "RJ"}, nil
	})

	if err := s.Lookup(context.Background(), e, enrichment.KindCEP); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotKey != "20040002" {
		t.Fatalf("expected typed cep as key, got %q", gotKey)
	}
	if s.Value(validation.FieldCity) != "Rio de Janeiro" || s.Value(validation.FieldUF) != "RJ" {
		t.Fatalf("prefill not applied: %+v", s.Payload())
	}
	if s.Value(validation.FieldComplement) != "typed by user" {
		t.Fatalf("fields absent from the prefill must be kept")
	}
	if s.Busy(ActionCEP) {
		t.Fatalf("busy flag must be cleared")
	}
}

func TestState_LookupFailureOnlyTouchesKeyField(t *testing.T) {
	s := filledState()
	before := s.Payload()

	e := enricherFunc(func(context.Context, enrichment.Kind, string) (enrichment.Prefill, error) {
		return nil, &enrichment.LookupError{Field: validation.FieldCNPJ, Err: enrichment.ErrNotFound}
	})

	err := s.Lookup(context.Background(), e, enrichment.KindCNPJ)
	if !errors.Is(err, enrichment.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Error(validation.FieldCNPJ) != "Erro ao buscar dados do CNPJ. Verifique o valor." {
		t.Fatalf("unexpected message %q", s.Error(validation.FieldCNPJ))
	}
	if len(s.Errors()) != 1 {
		t.Fatalf("expected only the cnpj message, got %v", s.Errors())
	}
	if s.Payload() != before {
		t.Fatalf("failed lookup must not change values")
	}
	if s.Busy(ActionCNPJ) {
		t.Fatalf("busy flag must be cleared on failure")
	}
}

func TestState_LookupMalformedKeySkipsEnricher(t *testing.T) {
	s := filledState()
	s.Set(validation.FieldCEP, "0131-000")

	called := false
	e := enricherFunc(func(context.Context, enrichment.Kind, string) (enrichment.Prefill, error) {
		called = true
		return nil, nil
	})

	err := s.Lookup(context.Background(), e, enrichment.KindCEP)
	var verrs validation.Errors
	if !errors.As(err, &verrs) || verrs[validation.FieldCEP] == "" {
		t.Fatalf("expected cep validation error, got %v", err)
	}
	if called {
		t.Fatalf("enricher must not be called with a malformed key")
	}
	if s.Error(validation.FieldCEP) != "CEP deve conter apenas números." {
		t.Fatalf("unexpected message %q", s.Error(validation.FieldCEP))
	}
}

func TestState_LookupRefusesWhileBusy(t *testing.T) {
	s := filledState()

	entered := make(chan struct{})
	release := make(chan struct{})
	e := enricherFunc(func(context.Context, enrichment.Kind, string) (enrichment.Prefill, error) {
		close(entered)
		<-release
		return enrichment.Prefill{}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Lookup(context.Background(), e, enrichment.KindCNPJ)
	}()

	<-entered
	if !s.Busy(ActionCNPJ) {
		t.Fatalf("expected cnpj action busy")
	}
	if err := s.Lookup(context.Background(), e, enrichment.KindCNPJ); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if s.Busy(ActionCEP) {
		t.Fatalf("cep action must be independent")
	}

	close(release)
	wg.Wait()
	if s.Busy(ActionCNPJ) {
		t.Fatalf("busy flag must be cleared after completion")
	}
}

func TestState_SubmitValidatesFirst(t *testing.T) {
	s := filledState()
	s.Set(validation.FieldEmail, "nope")

	called := false
	err := s.Submit(context.Background(), SubmitFunc(func(context.Context, validation.ClientInput) error {
		called = true
		return nil
	}))

	var verrs validation.Errors
	if !errors.As(err, &verrs) || verrs[validation.FieldEmail] == "" {
		t.Fatalf("expected email validation error, got %v", err)
	}
	if called {
		t.Fatalf("invalid form must not be submitted")
	}
	if s.Busy(ActionSubmit) {
		t.Fatalf("busy flag must be cleared")
	}
}

func TestState_SubmitMergesServerErrors(t *testing.T) {
	s := filledState()

	err := s.Submit(context.Background(), SubmitFunc(func(context.Context, validation.ClientInput) error {
		return validation.Errors{validation.FieldCNPJ: "CNPJ já cadastrado."}
	}))
	if err == nil {
		t.Fatalf("expected error")
	}
	if s.Error(validation.FieldCNPJ) != "CNPJ já cadastrado." {
		t.Fatalf("server message not merged: %v", s.Errors())
	}
}

func TestState_SubmitFailureSetsFormError(t *testing.T) {
	s := filledState()

	var got validation.ClientInput
	err := s.Submit(context.Background(), SubmitFunc(func(_ context.Context, in validation.ClientInput) error {
		got = in
		return errors.New("connection refused")
	}))
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != s.Payload() {
		t.Fatalf("submitted payload must be the form payload")
	}
	if s.Error(FormError) == "" {
		t.Fatalf("expected form-level message, got %v", s.Errors())
	}
	if s.Busy(ActionSubmit) {
		t.Fatalf("busy flag must be cleared")
	}
}
