package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// contactValidate checks the submission input against its validate tags.
var contactValidate = validator.New()

// ContactInput carries a contact form submission. All four fields are
// required; Email must be syntactically valid.
type ContactInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

// FieldErrors maps a field name to a human readable validation message.
// It is returned by Submit before anything is persisted.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, message := range e {
		parts = append(parts, field+": "+message)
	}
	return "invalid contact submission: " + strings.Join(parts, "; ")
}

// ContactNotifier delivers a best-effort notification for a stored message.
type ContactNotifier interface {
	Notify(msg *db.ContactMessage) error
}

// ContactService validates and persists contact form submissions and
// owns the admin-side inbox operations.
type ContactService struct {
	db       *gorm.DB
	notifier ContactNotifier
}

// NewContactService constructs a ContactService. The notifier may be nil,
// in which case submissions are stored without any notification attempt.
func NewContactService(gdb *gorm.DB, notifier ContactNotifier) *ContactService {
	return &ContactService{db: gdb, notifier: notifier}
}

// Submit validates the input, persists the message unread with a
// server-assigned timestamp, then makes a single synchronous notification
// attempt. A notification failure is logged and swallowed: once the row is
// durable the caller always gets the stored record back.
func (s *ContactService) Submit(input ContactInput) (*db.ContactMessage, error) {
	if fieldErrs := validateContactInput(input); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	msg := db.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: input.Message,
		IsRead:  false,
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(&msg); err != nil {
			log.Printf("contact notification failed for message %d: %v", msg.ID, err)
		}
	}

	return &msg, nil
}

// ListMessages returns every stored message, newest first.
func (s *ContactService) ListMessages() ([]db.ContactMessage, error) {
	var messages []db.ContactMessage
	if err := s.db.Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// UnreadCount returns the number of unread messages.
func (s *ContactService) UnreadCount() (int64, error) {
	var count int64
	if err := s.db.Model(&db.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count unread contact messages: %w", err)
	}
	return count, nil
}

// MarkAllRead flips every unread message to read in one set-based update
// and reports how many rows changed. This is the only path from unread
// to read; the public API never mutates stored messages.
func (s *ContactService) MarkAllRead() (int64, error) {
	result := s.db.Model(&db.ContactMessage{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("mark contact messages read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func validateContactInput(input ContactInput) FieldErrors {
	trimmed := ContactInput{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}

	err := contactValidate.Struct(trimmed)
	if err == nil {
		return nil
	}

	fieldErrs := FieldErrors{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrs["non_field"] = "Invalid submission."
		return fieldErrs
	}

	for _, fieldErr := range validationErrs {
		name := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			fieldErrs[name] = "This field is required."
		case "email":
			fieldErrs[name] = "Enter a valid email address."
		default:
			fieldErrs[name] = "This field is invalid."
		}
	}
	return fieldErrs
}
