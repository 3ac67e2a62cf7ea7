package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody = "Invalid request body"
	msgSent        = "Email sent successfully"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the form, emails the site owner and sends a confirmation to the submitter.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	meta := domain.ContactMeta{
		RequestID: middleware.GetRequestID(c),
		RemoteIP:  c.ClientIP(),
	}
	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req, meta); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, msgSent, nil)
}
