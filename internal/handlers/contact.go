package handlers

import (
	"errors"
	"net/http"

	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errMsgMissingContact  = "Full name, email, and message are required"
	errMsgEmptyContact    = "All fields are required"
	errMsgInvalidEmail    = "Invalid email format"
	errMsgContactDatabase = "Database error. Please try again later."
)

type contactPayload struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Message  *string `json:"message"`
}

// ContactRequest is an exported model for Swagger docs of the contact payload.
type ContactRequest struct {
	FullName string `json:"full_name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Message  string `json:"message" example:"Hi, I'd like to get in touch."`
}

// @Summary      Submit contact message
// @Description  Public, append-only intake. Fields are trimmed before validation.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  ContactRequest  true  "Contact payload"
// @Success      200  {object}  map[string]interface{}  "success, message"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/contact [post]
func (h *Handler) submitContact(c *gin.Context) {
	var req contactPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	confirmation, err := h.services.Contact.Submit(c.Request.Context(), service.ContactInput{
		FullName: req.FullName,
		Email:    req.Email,
		Message:  req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingContactFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsgMissingContact})
		case errors.Is(err, service.ErrEmptyContactFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsgEmptyContact})
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsgInvalidEmail})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errMsgContactDatabase, "contact_submit_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": confirmation,
	})
}
