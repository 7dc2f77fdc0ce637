package domain

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string       `json:"name" gorm:"not null"`
	BrandID       *uuid.UUID   `json:"brandId" gorm:"type:uuid"`
	CategoryID    *uuid.UUID   `json:"categoryId" gorm:"type:uuid"`
	Price         int          `json:"price"`
	SkinTypeID    *uuid.UUID   `json:"skinTypeId" gorm:"type:uuid"`
	SkinConcernID *uuid.UUID   `json:"skinConcernId" gorm:"type:uuid"`
	Description   string       `json:"description"`
	Composition   string       `json:"composition"`
	Usage         string       `json:"usage"`
	Rating        float64      `json:"rating"`
	ShopeeLink    string       `json:"shopeeLink"`
	TokopediaLink string       `json:"tokopediaLink"`
	Brand         *Brand       `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Category      *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	SkinType      *SkinType    `json:"skinType,omitempty" gorm:"foreignKey:SkinTypeID"`
	SkinConcern   *SkinConcern `json:"skinConcern,omitempty" gorm:"foreignKey:SkinConcernID"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type Brand struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"uniqueIndex;not null"`
}

type Category struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"uniqueIndex;not null"`
}

// SkinType and SkinConcern are lookup tables shared by accounts and
// products ("kulit kering", "jerawat", ...).
type SkinType struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"uniqueIndex;not null"`
}

type SkinConcern struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"uniqueIndex;not null"`
}
