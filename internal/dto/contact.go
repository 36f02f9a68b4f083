package dto

// ContactRequest is the contact form relayed to the messaging API.
type ContactRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	PhoneNo    string `json:"phoneNo" validate:"required"`
	WhatsappNo string `json:"whatsappNo" validate:"required"`
	Message    string `json:"message" validate:"required,max=1000"`
}
