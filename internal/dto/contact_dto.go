package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type CreateContactMessageResponse struct {
	Message string    `json:"message"`
	Id      uuid.UUID `json:"id"`
}

type ContactMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessageListResponse struct {
	Messages []*ContactMessageResponse `json:"messages"`
	Total    int64                     `json:"total"`
	Limit    int                       `json:"limit"`
	Skip     int                       `json:"skip"`
}

type SiteContactResponse struct {
	Phone        string `json:"phone"`
	WhatsappLink string `json:"whatsappLink"`
}
