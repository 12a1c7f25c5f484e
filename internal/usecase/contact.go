package usecase

import (
	"context"
	"strings"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/logger"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/sanitize"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// leadForm holds the sanitized values authoritative validation runs on. Tags
// evaluate left to right and stop at the first failure per field, so every
// failing field contributes exactly one entry to the error list.
type leadForm struct {
	Name    string `json:"name" validate:"required,min=3,max=100"`
	Email   string `json:"email" validate:"required,contact_email,max=255"`
	Phone   string `json:"phone" validate:"required,contact_phone"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
	Consent bool   `json:"consent" validate:"eq=true"`
}

type contactUsecase struct {
	transport domain.Transport
	validate  *validator.Validate
}

// NewContactUsecase creates the contact submission pipeline around an
// injected transport so tests can swap in a double.
func NewContactUsecase(transport domain.Transport, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		transport: transport,
		validate:  validate,
	}
}

// Submit implements the request-scoped pipeline: honeypot check, validation,
// sanitization, composition and a single dispatch attempt.
func (uc *contactUsecase) Submit(ctx context.Context, payload *domain.SubmissionPayload, meta domain.RequestMeta) error {
	// Honeypot before any validation: pretend success and do nothing, so a
	// trapped submission is indistinguishable from a real one.
	if strings.TrimSpace(payload.Honeypot) != "" {
		logger.Log.Info("honeypot acionado, descartando envio", "ip", meta.RemoteIP)
		return nil
	}

	form := leadForm{
		Name:    sanitize.Strip(payload.Name),
		Email:   strings.TrimSpace(payload.Email),
		Phone:   strings.TrimSpace(payload.Phone),
		Message: sanitize.Strip(payload.Message),
		Consent: bool(payload.Consent),
	}
	if err := uc.validate.Struct(form); err != nil {
		fields := validation.Fields(err)
		logger.Log.Info("lead rejeitado na validação", "fields", fields)
		return &domain.ValidationError{Fields: fields}
	}

	lead := composeLead(payload, form, meta)
	if err := uc.transport.Send(ctx, lead); err != nil {
		logger.Log.Error("falha ao enviar e-mail de lead", "error", err)
		return err
	}

	logger.Log.Info("lead enviado", "name", lead.Name, "ip", lead.RemoteIP)
	return nil
}

func composeLead(payload *domain.SubmissionPayload, form leadForm, meta domain.RequestMeta) *domain.Lead {
	service := sanitize.Strip(payload.Service)
	if service == "" {
		service = "Não especificado"
	}

	consentLabel := "Não"
	if form.Consent {
		consentLabel = "Sim"
	}

	ip := meta.RemoteIP
	if ip == "" {
		ip = "desconhecido"
	}
	userAgent := meta.UserAgent
	if userAgent == "" {
		userAgent = "desconhecido"
	}

	return &domain.Lead{
		Name:         form.Name,
		Email:        sanitize.Strip(payload.Email),
		Phone:        sanitize.Strip(payload.Phone),
		Service:      service,
		ConsentLabel: consentLabel,
		RemoteIP:     ip,
		UserAgent:    userAgent,
		// A alternativa texto preserva a mensagem original com quebras de linha
		MessageText: payload.Message,
		MessageHTML: strings.ReplaceAll(form.Message, "\n", "<br/>"),
	}
}
