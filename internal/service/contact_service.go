package service

import (
	"context"
	"errors"
	"strings"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Domain errors for contact intake.
var (
	ErrMissingContactFields = errors.New("full name, email, and message are required")
	ErrEmptyContactFields   = errors.New("all fields are required")
	ErrInvalidEmail         = errors.New("invalid email format")
)

const contactConfirmation = "Your message has been sent successfully! Thank you for contacting me."

// ContactService validates and persists contact submissions. Intake is
// stricter than article creation: values are trimmed and must be non-empty.
type ContactService struct {
	contact  repository.ContactMessages
	validate *validator.Validate
}

func NewContactService(contact repository.ContactMessages) *ContactService {
	return &ContactService{
		contact:  contact,
		validate: validator.New(),
	}
}

// Submit checks presence, trims all fields, rejects empty values and bad
// email addresses, then appends one row. Returns the user-facing
// confirmation string.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (string, error) {
	if in.FullName == nil || in.Email == nil || in.Message == nil {
		return "", ErrMissingContactFields
	}

	fullName := strings.TrimSpace(*in.FullName)
	email := strings.TrimSpace(*in.Email)
	message := strings.TrimSpace(*in.Message)

	if fullName == "" || email == "" || message == "" {
		return "", ErrEmptyContactFields
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return "", ErrInvalidEmail
	}

	if _, err := s.contact.Insert(ctx, models.ContactMessage{
		FullName: fullName,
		Email:    email,
		Message:  message,
	}); err != nil {
		return "", err
	}
	return contactConfirmation, nil
}
