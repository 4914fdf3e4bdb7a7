package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

type Student struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IDNumber  string    `json:"id_number" gorm:"index"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"index"`
	College   string    `json:"college" gorm:"index"`
	YearLevel int       `json:"year_level" gorm:"index"`
	Section   string    `json:"section" gorm:"index"`
	Status    string    `json:"status" gorm:"default:'active';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
