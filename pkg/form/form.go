package form

import (
	"context"
	"errors"
	"strings"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"
)

// State is the submission lifecycle position.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "idle"
	}
}

// ErrInvalid signals that local validation blocked the submission; the
// per-field messages are available through Errors.
var ErrInvalid = errors.New("Por favor, corrija os erros no formulário.")

// Submitter posts a payload to the contact endpoint.
type Submitter interface {
	Submit(ctx context.Context, payload *domain.SubmissionPayload) error
}

// Form owns a draft and walks it through the lifecycle
// Idle → Submitting → Submitted, falling back to Idle with the draft
// preserved when the server or the network rejects the submission.
type Form struct {
	draft        Draft
	errors       map[string]string
	state        State
	submitter    Submitter
	onConversion func()
}

type Option func(*Form)

// WithConversionHook registers a callback fired once per accepted
// submission, only after the server acknowledged it (the analytics
// conversion pixel hangs off this).
func WithConversionHook(fn func()) Option {
	return func(f *Form) { f.onConversion = fn }
}

func New(submitter Submitter, opts ...Option) *Form {
	f := &Form{
		errors:    make(map[string]string),
		submitter: submitter,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Editing a field clears its displayed error immediately, without
// re-validating the rest of the draft.

func (f *Form) SetName(v string) {
	f.draft.Name = v
	delete(f.errors, "name")
}

func (f *Form) SetEmail(v string) {
	f.draft.Email = v
	delete(f.errors, "email")
}

// SetPhone reformats on every keystroke.
func (f *Form) SetPhone(v string) {
	f.draft.Phone = FormatPhone(v)
	delete(f.errors, "phone")
}

func (f *Form) SetService(v string) {
	f.draft.Service = v
}

func (f *Form) SetMessage(v string) {
	f.draft.Message = v
	delete(f.errors, "message")
}

func (f *Form) SetConsent(v bool) {
	f.draft.Consent = v
	delete(f.errors, "consent")
}

func (f *Form) SetHoneypot(v string) {
	f.draft.Honeypot = v
}

func (f *Form) Draft() Draft                { return f.draft }
func (f *Form) State() State                { return f.state }
func (f *Form) FieldError(field string) string { return f.errors[field] }

// Errors returns a copy of the current per-field messages.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submit runs the lifecycle once. A filled honeypot skips the network
// entirely and lands on Submitted with a cleared draft, so an automated
// filler cannot tell a trapped submission from a delivered one. A genuine
// failure keeps the draft for correction and returns the message to surface.
func (f *Form) Submit(ctx context.Context) error {
	if strings.TrimSpace(f.draft.Honeypot) != "" {
		f.state = StateSubmitted
		f.clear()
		return nil
	}

	if errs := Validate(f.draft); len(errs) > 0 {
		f.errors = errs
		f.state = StateIdle
		return ErrInvalid
	}

	f.state = StateSubmitting
	if err := f.submitter.Submit(ctx, f.draft.payload()); err != nil {
		f.state = StateIdle
		return err
	}

	f.state = StateSubmitted
	if f.onConversion != nil {
		f.onConversion()
	}
	f.clear()
	return nil
}

// Reset returns a Submitted form to Idle ("enviar nova mensagem").
func (f *Form) Reset() {
	f.state = StateIdle
	f.clear()
}

func (f *Form) clear() {
	f.draft = Draft{}
	f.errors = make(map[string]string)
}
