package dto

import (
	"time"

	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/google/uuid"
)

type CreateConversationInput struct {
	Title *string `json:"title"`
}

type CreateMessageInput struct {
	SenderRole string `json:"sender_role" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// ConversationResponse is the list/detail shape, carrying the message count
// instead of the messages themselves.
type ConversationResponse struct {
	ID           uuid.UUID `json:"id"`
	AccountID    uuid.UUID `json:"account_id"`
	Title        *string   `json:"title"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewConversationResponse(c *model.Conversation, messageCount int) *ConversationResponse {
	return &ConversationResponse{
		ID:           c.ID,
		AccountID:    c.AccountID,
		Title:        c.Title,
		MessageCount: messageCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
