package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccountTypeIndividual = "individual"
	AccountTypeBusiness   = "business"
	AccountTypeStudent    = "student"
)

// ValidAccountType reports whether s is one of the recognized account categories.
func ValidAccountType(s string) bool {
	switch s {
	case AccountTypeIndividual, AccountTypeBusiness, AccountTypeStudent:
		return true
	}
	return false
}

type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FirstName    *string   `gorm:"size:120" json:"first_name"`
	LastName     *string   `gorm:"size:120" json:"last_name"`
	Phone        *string   `gorm:"size:20" json:"phone"`
	AccountType  string    `gorm:"size:50;not null;default:'individual'" json:"account_type"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	BodyProfile   *BodyProfile   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Designs       []Design       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Conversations []Conversation `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
