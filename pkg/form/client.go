package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"
)

const genericSendError = "Não foi possível enviar a mensagem. Tente novamente."

// Client posts submissions to the contact endpoint.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ack mirrors the endpoint body loosely; a response that fails to decode is
// treated as an empty acknowledgment, like the form does.
type ack struct {
	OK     *bool  `json:"ok"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Submit posts the payload. A nil return means the server acknowledged the
// submission; any error carries the message to surface to the user.
func (c *Client) Submit(ctx context.Context, payload *domain.SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.New(genericSendError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return errors.New(genericSendError)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		// Request never reached the server
		return errors.New("Erro ao enviar mensagem. Por favor, tente novamente.")
	}
	defer res.Body.Close()

	var a ack
	_ = json.NewDecoder(res.Body).Decode(&a)

	if res.StatusCode >= 200 && res.StatusCode < 300 && (a.OK == nil || *a.OK) {
		return nil
	}

	msg := a.Error
	if msg == "" {
		msg = genericSendError
	}
	return errors.New(msg)
}
