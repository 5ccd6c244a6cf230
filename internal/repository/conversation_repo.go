package repository

import (
	"context"
	"time"

	"github.com/dresslab/dresslab-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *model.Conversation) error
	FindByID(ctx context.Context, id, accountID uuid.UUID) (*model.Conversation, error)
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]*model.Conversation, error)
	// CountMessagesByConversation returns message counts for all of the
	// account's conversations keyed by conversation id, in one query.
	CountMessagesByConversation(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int64, error)
	// AddMessage appends the message and refreshes the conversation's
	// updated_at in one transaction.
	AddMessage(ctx context.Context, conversation *model.Conversation, message *model.ChatMessage) error
	Delete(ctx context.Context, id, accountID uuid.UUID) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *model.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *conversationRepository) FindByID(ctx context.Context, id, accountID uuid.UUID) (*model.Conversation, error) {
	var conversation model.Conversation
	if err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]*model.Conversation, error) {
	var conversations []*model.Conversation
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *conversationRepository) CountMessagesByConversation(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		ConversationID uuid.UUID
		Count          int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.ChatMessage{}).
		Select("chat_messages.conversation_id, count(*) as count").
		Joins("JOIN conversations ON conversations.id = chat_messages.conversation_id").
		Where("conversations.account_id = ?", accountID).
		Group("chat_messages.conversation_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.ConversationID] = row.Count
	}
	return counts, nil
}

func (r *conversationRepository) AddMessage(ctx context.Context, conversation *model.Conversation, message *model.ChatMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		message.ConversationID = conversation.ID
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		// Refresh updated_at so conversations list by recent activity.
		return tx.Model(&model.Conversation{}).
			Where("id = ?", conversation.ID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *conversationRepository) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.Conversation{}, "id = ? AND account_id = ?", id, accountID).Error
}
