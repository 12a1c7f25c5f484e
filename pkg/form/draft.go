// Package form implements the contact form's client-side contract: draft
// state, local validation with per-field messages, phone input formatting and
// the submission lifecycle against the contact endpoint.
package form

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"
)

// Draft holds one form-fill session. Honeypot stays empty for honest
// submissions; the hidden input is only ever filled by bots.
type Draft struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Message  string
	Consent  bool
	Honeypot string
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s()-]+$`)
)

// Validate applies the local rules and returns at most one message per
// field, first failing rule wins. The draft is submittable iff the result is
// empty. Service is never validated.
func Validate(d Draft) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errs["name"] = "Por favor, informe seu nome."
	case utf8.RuneCountInString(name) < 3:
		errs["name"] = "O nome deve ter pelo menos 3 caracteres."
	case utf8.RuneCountInString(name) > 100:
		errs["name"] = "O nome deve ter no máximo 100 caracteres."
	}

	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		errs["email"] = "Por favor, informe seu e-mail."
	case !emailRegex.MatchString(d.Email):
		errs["email"] = "Por favor, informe um e-mail válido."
	case utf8.RuneCountInString(email) > 255:
		errs["email"] = "O e-mail deve ter no máximo 255 caracteres."
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Por favor, informe seu telefone."
	} else if !phoneRegex.MatchString(d.Phone) || countDigits(d.Phone) < 10 {
		errs["phone"] = "Por favor, informe um telefone válido."
	}

	message := strings.TrimSpace(d.Message)
	switch {
	case message == "":
		errs["message"] = "Por favor, descreva seu projeto."
	case utf8.RuneCountInString(message) < 10:
		errs["message"] = "A mensagem deve ter pelo menos 10 caracteres."
	case utf8.RuneCountInString(message) > 1000:
		errs["message"] = "A mensagem deve ter no máximo 1000 caracteres."
	}

	if !d.Consent {
		errs["consent"] = "Você precisa aceitar os termos para continuar."
	}

	return errs
}

// payload produces the trimmed wire copy of the draft.
func (d Draft) payload() *domain.SubmissionPayload {
	return &domain.SubmissionPayload{
		Name:     strings.TrimSpace(d.Name),
		Email:    strings.TrimSpace(d.Email),
		Phone:    strings.TrimSpace(d.Phone),
		Service:  d.Service,
		Message:  strings.TrimSpace(d.Message),
		Consent:  domain.Consent(d.Consent),
		Honeypot: d.Honeypot,
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
