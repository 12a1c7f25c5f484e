package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the wire shape shared by every endpoint. The honeypot-discard case
// and a real acceptance produce byte-identical bodies on purpose.
type Body struct {
	OK     bool     `json:"ok"`
	Error  string   `json:"error,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Detail string   `json:"detail,omitempty"`
}

// OK sends the acceptance body.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Body{OK: true})
}

// ValidationFailed reports the rejected fields.
func ValidationFailed(c *gin.Context, fields []string) {
	c.JSON(http.StatusBadRequest, Body{
		OK:     false,
		Error:  "validation_failed",
		Fields: fields,
	})
}

// MailError reports a failed dispatch attempt. The raw transport error goes
// in detail for diagnostics; production hardening would redact it.
func MailError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, Body{
		OK:     false,
		Error:  "mail_error",
		Detail: detail,
	})
}

// Error sends a generic error body for unexpected failures.
func Error(c *gin.Context, code int, errCode string) {
	c.JSON(code, Body{
		OK:    false,
		Error: errCode,
	})
}
