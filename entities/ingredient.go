package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name       string     `gorm:"size:128;uniqueIndex;not null" json:"name"`
	CreateByID *uuid.UUID `gorm:"type:uuid" json:"create_by_id,omitempty"`

	CreateBy *User `gorm:"foreignKey:CreateByID;constraint:OnDelete:SET NULL"`
	Timestamp
}
