package domain

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// SubmissionPayload is the wire body of POST /api/contact. Every field is
// optional at the transport level; absent fields decode to their zero value
// exactly like the form sends them.
type SubmissionPayload struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Service  string  `json:"service"`
	Message  string  `json:"message"`
	Consent  Consent `json:"consent"`
	Honeypot string  `json:"honeypot"`
}

// Consent accepts both the boolean true sent by the form and the string
// "true" sent by some embedders. Anything else counts as no consent.
type Consent bool

func (c *Consent) UnmarshalJSON(b []byte) error {
	v := string(bytes.TrimSpace(b))
	*c = v == "true" || v == `"true"`
	return nil
}

// RequestMeta carries caller metadata recorded in the notification for audit.
type RequestMeta struct {
	RemoteIP  string
	UserAgent string
}

// Lead is the notification derived from a validated payload. Free-text fields
// are already HTML-stripped; MessageText keeps the original newline-preserved
// body for the plain-text alternative, MessageHTML the sanitized body with
// line breaks converted for the rendered alternative. A Lead is consumed once
// by the mail transport and never persisted.
type Lead struct {
	Name         string
	Email        string
	Phone        string
	Service      string
	ConsentLabel string
	RemoteIP     string
	UserAgent    string
	MessageText  string
	MessageHTML  string
}

// ValidationError lists the payload fields that failed authoritative
// validation, in declaration order.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// ContactUsecase defines the contact submission pipeline.
type ContactUsecase interface {
	// Submit runs the honeypot check, validation, sanitization and a single
	// dispatch attempt. A trapped (honeypot) submission returns nil without
	// dispatching, indistinguishable from success for the caller.
	Submit(ctx context.Context, payload *SubmissionPayload, meta RequestMeta) error
}

// Transport delivers a composed lead notification. Implementations make
// exactly one attempt per call; there is no retry.
type Transport interface {
	Send(ctx context.Context, lead *Lead) error
}
