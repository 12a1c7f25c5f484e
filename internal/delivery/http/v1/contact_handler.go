package v1

import (
	"errors"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/delivery/http/response"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relays a lead from the site contact form to the operator mailbox. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.SubmissionPayload  true  "Contact Form Data"
// @Success      200      {object}  response.Body
// @Failure      400      {object}  response.Body
// @Failure      500      {object}  response.Body
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Every field is optional at the transport level; an unparseable body is
	// treated as an empty payload and falls through to validation.
	var payload domain.SubmissionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Log.Debug("unparseable contact body, validating empty payload", "error", err)
		payload = domain.SubmissionPayload{}
	}

	meta := domain.RequestMeta{
		RemoteIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	if err := h.contactUC.Submit(c.Request.Context(), &payload, meta); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			response.ValidationFailed(c, verr.Fields)
			return
		}
		response.MailError(c, err.Error())
		return
	}

	response.OK(c)
}
