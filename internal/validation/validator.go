package validation

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"skillcycle/internal/domain"
	"skillcycle/internal/dto"
	"skillcycle/internal/util"
)

const (
	minNameLength    = 2
	maxNameLength    = 100
	minMessageLength = 10
	maxMessageLength = 2000
	maxChatLength    = 500
)

// Validator provides request validation functionality
type Validator struct {
	inquiryTypes map[string]bool
}

// NewValidator creates a validator accepting the given inquiry type values
func NewValidator(inquiryTypes ...string) *Validator {
	v := &Validator{inquiryTypes: make(map[string]bool, len(inquiryTypes))}
	for _, t := range inquiryTypes {
		v.inquiryTypes[t] = true
	}
	return v
}

// ValidateContactRequest validates a Get Involved submission and reports
// every failing field.
func (v *Validator) ValidateContactRequest(req *dto.ContactRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	name := strings.TrimSpace(req.Name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		errors = append(errors, domain.NewMissingFieldError("name"))
	case n < minNameLength || n > maxNameLength:
		errors = append(errors, domain.NewOutOfRangeError("name", n, minNameLength, maxNameLength))
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(email) {
		errors = append(errors, domain.NewInvalidFormatError("email", email))
	}

	if req.Type == "" {
		errors = append(errors, domain.NewMissingFieldError("type"))
	} else if !v.inquiryTypes[req.Type] {
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}

	message := strings.TrimSpace(req.Message)
	switch n := utf8.RuneCountInString(message); {
	case n == 0:
		errors = append(errors, domain.NewMissingFieldError("message"))
	case n < minMessageLength || n > maxMessageLength:
		errors = append(errors, domain.NewOutOfRangeError("message", n, minMessageLength, maxMessageLength))
	}

	return errors
}

// ValidateWidgetID validates a widget session id path parameter
func (v *Validator) ValidateWidgetID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ValidateActionRequest checks that an action carries the argument its type needs
func (v *Validator) ValidateActionRequest(req *dto.ActionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	switch domain.ActionType(req.Type) {
	case "":
		errors = append(errors, domain.NewMissingFieldError("type"))
	case domain.ActionSelect:
		if req.Index == nil {
			errors = append(errors, domain.NewMissingFieldError("index"))
		}
	case domain.ActionSubmit:
		if strings.TrimSpace(req.Text) == "" {
			errors = append(errors, domain.NewMissingFieldError("text"))
		} else if n := utf8.RuneCountInString(req.Text); n > maxChatLength {
			errors = append(errors, domain.NewOutOfRangeError("text", n, 1, maxChatLength))
		}
	case domain.ActionOpen:
		if req.ItemID == nil {
			errors = append(errors, domain.NewMissingFieldError("item_id"))
		}
	case domain.ActionStart, domain.ActionAdvance, domain.ActionReset, domain.ActionBack, domain.ActionTogglePlay:
	default:
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}

	return errors
}

// isValidEmail accepts a bare address with a dotted domain
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
