package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Doctor struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string         `json:"name" gorm:"not null"`
	Image       string         `json:"image"`
	Specialty   string         `json:"specialty"`
	History     string         `json:"history"`
	Schedule    datatypes.JSON `json:"schedule" gorm:"type:jsonb;default:'[]'"` // e.g. [{"day":"Senin","hours":"09:00-12:00"}]
	Price       int            `json:"price"`
	IsAvailable bool           `json:"isAvailable"`
	Rating      float64        `json:"rating"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
