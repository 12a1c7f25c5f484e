// Package email implements the outbound SMTP transport for lead
// notifications.
package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/config"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"
)

// Mailer sends lead notifications via SMTP. It satisfies domain.Transport.
type Mailer struct {
	host     string
	port     string
	secure   bool
	username string
	password string
	from     string
	to       string
}

// NewMailer builds the transport from the loaded configuration. The SMTP
// login doubles as the envelope sender, as most relay providers require.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		secure:   cfg.SMTPSecure,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.SMTPUser,
		to:       cfg.ContactEmail,
	}
}

// leadEmailTemplate renders the HTML alternative of the notification.
const leadEmailTemplate = `<h3>Novo lead</h3>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>E-mail:</strong> {{.Email}}</p>
<p><strong>Telefone:</strong> {{.Phone}}</p>
<p><strong>Serviço:</strong> {{.Service}}</p>
<p><strong>Consentimento LGPD:</strong> {{.ConsentLabel}}</p>
<p><strong>IP:</strong> {{.RemoteIP}}</p>
<p><strong>User-Agent:</strong> {{.UserAgent}}</p>
<p><strong>Mensagem:</strong><br/>{{.Message}}</p>
`

type leadEmailData struct {
	Name         string
	Email        string
	Phone        string
	Service      string
	ConsentLabel string
	RemoteIP     string
	UserAgent    string
	// Already sanitized upstream; line breaks arrive converted to <br/>
	Message template.HTML
}

// Send delivers the lead to the configured recipient in a single attempt.
func (m *Mailer) Send(ctx context.Context, lead *domain.Lead) error {
	msg, err := m.message(lead)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if !m.secure {
		// smtp.SendMail upgrades to STARTTLS when the server offers it
		return smtp.SendMail(addr, auth, m.from, []string{m.to}, msg)
	}

	// Implicit TLS (port 465)
	client, err := m.dialTLS(ctx, addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(m.to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// message builds the multipart/alternative MIME message: the plain-text part
// carries the original newline-preserved message, the HTML part the sanitized
// rendering.
func (m *Mailer) message(lead *domain.Lead) ([]byte, error) {
	tmpl, err := template.New("lead").Parse(leadEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, leadEmailData{
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Service:      lead.Service,
		ConsentLabel: lead.ConsentLabel,
		RemoteIP:     lead.RemoteIP,
		UserAgent:    lead.UserAgent,
		Message:      template.HTML(lead.MessageHTML),
	}); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	textBody := fmt.Sprintf(
		"Nome: %s\nE-mail: %s\nTelefone: %s\nServiço: %s\nConsentimento: %s\nIP: %s\nUser-Agent: %s\n\nMensagem:\n%s",
		lead.Name, lead.Email, lead.Phone, lead.Service,
		lead.ConsentLabel, lead.RemoteIP, lead.UserAgent, lead.MessageText,
	)

	var body bytes.Buffer
	alt := multipart.NewWriter(&body)

	textPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(textBody)); err != nil {
		return nil, err
	}

	htmlPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write(htmlBody.Bytes()); err != nil {
		return nil, err
	}
	if err := alt.Close(); err != nil {
		return nil, err
	}

	subject := mime.QEncoding.Encode("utf-8", "Novo lead - "+lead.Name)
	headers := fmt.Sprintf(
		"From: \"Lead - Site\" <%s>\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: multipart/alternative; boundary=%q\r\n"+
			"\r\n",
		m.from, m.to, lead.Email, subject, alt.Boundary(),
	)

	return append([]byte(headers), body.Bytes()...), nil
}

// Verify performs the startup connectivity self-check: connect, greet, quit.
// Failures are reported to the caller for logging, never enforced.
func (m *Mailer) Verify(ctx context.Context) error {
	addr := net.JoinHostPort(m.host, m.port)

	var (
		client *smtp.Client
		err    error
	)
	if m.secure {
		client, err = m.dialTLS(ctx, addr)
	} else {
		var conn net.Conn
		d := net.Dialer{}
		if conn, err = d.DialContext(ctx, "tcp", addr); err == nil {
			client, err = smtp.NewClient(conn, m.host)
		}
	}
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Quit()
}

// IsConfigured checks if the transport has valid SMTP configuration
func (m *Mailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// Recipient exposes the configured notification address.
func (m *Mailer) Recipient() string {
	return m.to
}

func (m *Mailer) dialTLS(ctx context.Context, addr string) (*smtp.Client, error) {
	d := tls.Dialer{NetDialer: &net.Dialer{}}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return smtp.NewClient(conn, m.host)
}

// Mask hides the middle of a credential for startup diagnostics.
func Mask(s string) string {
	if len(s) < 4 {
		return "***"
	}
	return s[:2] + "***" + s[len(s)-2:]
}
