package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/dresslab/dresslab-api/internal/repository"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationService interface {
	List(ctx context.Context, accountID uuid.UUID) ([]*dto.ConversationResponse, error)
	// Get returns the conversation with its messages, oldest first.
	Get(ctx context.Context, id, accountID uuid.UUID) (*model.Conversation, error)
	Create(ctx context.Context, accountID uuid.UUID, input dto.CreateConversationInput) (*model.Conversation, error)
	AddMessage(ctx context.Context, conversationID, accountID uuid.UUID, input dto.CreateMessageInput) (*model.ChatMessage, error)
	Delete(ctx context.Context, id, accountID uuid.UUID) error
}

type conversationService struct {
	repo repository.ConversationRepository
}

func NewConversationService(repo repository.ConversationRepository) ConversationService {
	return &conversationService{repo: repo}
}

func (s *conversationService) List(ctx context.Context, accountID uuid.UUID) ([]*dto.ConversationResponse, error) {
	conversations, err := s.repo.FindAllByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountMessagesByConversation(ctx, accountID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		responses = append(responses, dto.NewConversationResponse(c, int(counts[c.ID])))
	}

	return responses, nil
}

func (s *conversationService) Get(ctx context.Context, id, accountID uuid.UUID) (*model.Conversation, error) {
	conversation, err := s.repo.FindByID(ctx, id, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "conversation not found")
		}
		return nil, err
	}
	return conversation, nil
}

func (s *conversationService) Create(ctx context.Context, accountID uuid.UUID, input dto.CreateConversationInput) (*model.Conversation, error) {
	conversation := &model.Conversation{
		AccountID: accountID,
		Title:     normalizeOptional(input.Title),
	}

	if err := s.repo.Create(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

func (s *conversationService) AddMessage(ctx context.Context, conversationID, accountID uuid.UUID, input dto.CreateMessageInput) (*model.ChatMessage, error) {
	role := model.ChatRole(input.SenderRole)
	if !role.IsValid() {
		return nil, apperror.Wrap(apperror.ErrInvalidInput,
			"invalid sender_role, must be one of: user, assistant")
	}

	conversation, err := s.Get(ctx, conversationID, accountID)
	if err != nil {
		return nil, err
	}

	message := &model.ChatMessage{
		SenderRole: role,
		Content:    input.Content,
	}

	if err := s.repo.AddMessage(ctx, conversation, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *conversationService) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	if _, err := s.Get(ctx, id, accountID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, accountID)
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
