package email

import (
	"strings"
	"testing"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/config"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     "465",
		SMTPSecure:   true,
		SMTPUser:     "relay@example.com",
		SMTPPass:     "secret",
		ContactEmail: "leads@example.com",
	}
}

func testLead() *domain.Lead {
	return &domain.Lead{
		Name:         "Jon Doe",
		Email:        "jon@example.com",
		Phone:        "(11) 99999-9999",
		Service:      "Não especificado",
		ConsentLabel: "Sim",
		RemoteIP:     "203.0.113.7",
		UserAgent:    "Mozilla/5.0",
		MessageText:  "Linha um\nLinha dois",
		MessageHTML:  "Linha um<br/>Linha dois",
	}
}

func TestMessageComposition(t *testing.T) {
	m := NewMailer(testConfig())
	raw, err := m.message(testLead())
	require.NoError(t, err)
	msg := string(raw)

	t.Run("Headers address the configured recipient", func(t *testing.T) {
		assert.Contains(t, msg, "From: \"Lead - Site\" <relay@example.com>\r\n")
		assert.Contains(t, msg, "To: leads@example.com\r\n")
		assert.Contains(t, msg, "Reply-To: jon@example.com\r\n")
		assert.Contains(t, msg, "Content-Type: multipart/alternative; boundary=")
	})

	t.Run("Subject names the lead", func(t *testing.T) {
		assert.Contains(t, msg, "Subject: Novo lead - Jon Doe\r\n")
	})

	t.Run("Plain-text part keeps the original message", func(t *testing.T) {
		assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8")
		assert.Contains(t, msg, "Nome: Jon Doe\n")
		assert.Contains(t, msg, "Consentimento: Sim\n")
		assert.Contains(t, msg, "Mensagem:\nLinha um\nLinha dois")
	})

	t.Run("HTML part renders the converted line breaks", func(t *testing.T) {
		assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8")
		assert.Contains(t, msg, "<p><strong>Mensagem:</strong><br/>Linha um<br/>Linha dois</p>")
		assert.Contains(t, msg, "<p><strong>IP:</strong> 203.0.113.7</p>")
	})

	t.Run("Both alternatives share the boundary", func(t *testing.T) {
		start := strings.Index(msg, "boundary=\"")
		require.GreaterOrEqual(t, start, 0)
		rest := msg[start+len("boundary=\""):]
		boundary := rest[:strings.Index(rest, "\"")]
		assert.Equal(t, 2, strings.Count(msg, "\r\n--"+boundary+"\r\n"))
		assert.Contains(t, msg, "--"+boundary+"--")
	})
}

func TestRecipient(t *testing.T) {
	m := NewMailer(testConfig())
	assert.Equal(t, "leads@example.com", m.Recipient())
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewMailer(testConfig()).IsConfigured())

	cfg := testConfig()
	cfg.SMTPPass = ""
	assert.False(t, NewMailer(cfg).IsConfigured())
}

func TestMask(t *testing.T) {
	assert.Equal(t, "re***om", Mask("relay@example.com"))
	assert.Equal(t, "***", Mask("ab"))
	assert.Equal(t, "***", Mask(""))
}
