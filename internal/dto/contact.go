package dto

import "time"

// ContactRequest represents a Get Involved form submission
// @Description Request body for the contact form
type ContactRequest struct {
	Name         string `json:"name" example:"Thandi Mokoena"`
	Email        string `json:"email" example:"thandi@example.org"`
	Organization string `json:"organization,omitempty" example:"Soweto High"`
	Type         string `json:"type" example:"school"`
	Message      string `json:"message" example:"We would like to bring SkillCycle to our school."`
}

// ContactResponse acknowledges a contact form submission
type ContactResponse struct {
	Reference  string    `json:"reference"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// InquiryTypeResponse is one option of the contact form's inquiry selector
type InquiryTypeResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
