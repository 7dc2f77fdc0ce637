package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender values mirror the database sentinels: "L" (laki-laki, male)
// and "P" (perempuan, female).
type Gender string

const (
	GenderMale   Gender = "L"
	GenderFemale Gender = "P"
)

// NormalizeGender coerces any input to a valid gender. Anything other
// than the male sentinel is stored as female.
func NormalizeGender(s string) Gender {
	if s == string(GenderMale) {
		return GenderMale
	}
	return GenderFemale
}

type Account struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string       `json:"name" gorm:"not null"`
	Email         string       `json:"email" gorm:"uniqueIndex;not null"`
	Phone         string       `json:"phone"`
	Gender        Gender       `json:"gender" gorm:"type:varchar(1)"`
	Birthdate     string       `json:"birthdate"`
	Coins         int          `json:"coins" gorm:"default:0"`
	SkinTypeID    *uuid.UUID   `json:"skinTypeId" gorm:"type:uuid"`
	SkinConcernID *uuid.UUID   `json:"skinConcernId" gorm:"type:uuid"`
	SkinType      *SkinType    `json:"skinType,omitempty" gorm:"foreignKey:SkinTypeID"`
	SkinConcern   *SkinConcern `json:"skinConcern,omitempty" gorm:"foreignKey:SkinConcernID"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Credential holds the secret material for one account. At most one
// credential exists per account; the raw secret is never stored.
type Credential struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID  uuid.UUID `json:"accountId" gorm:"type:uuid;uniqueIndex;not null"`
	SecretHash string    `json:"-" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
}
