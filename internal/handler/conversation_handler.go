package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/service"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/response"
	"github.com/dresslab/dresslab-api/pkg/validator"
)

type ConversationHandler struct {
	conversationService service.ConversationService
}

func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
	}
}

func conversationID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		return uuid.Nil, apperror.Wrap(apperror.ErrInvalidInput, "conversation_id must be a valid id")
	}
	return id, nil
}

func (h *ConversationHandler) List(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conversations, err := h.conversationService.List(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// Get returns the conversation with its messages, oldest first.
func (h *ConversationHandler) Get(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := conversationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conversation, err := h.conversationService.Get(c.Request.Context(), id, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": conversation})
}

func (h *ConversationHandler) Create(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateConversationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	conversation, err := h.conversationService.Create(c.Request.Context(), accountID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Conversation created successfully",
		"conversation": conversation,
	})
}

func (h *ConversationHandler) AddMessage(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := conversationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	message, err := h.conversationService.AddMessage(c.Request.Context(), id, accountID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chat_message": message})
}

func (h *ConversationHandler) Delete(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := conversationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.conversationService.Delete(c.Request.Context(), id, accountID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted successfully"})
}
