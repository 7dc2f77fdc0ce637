package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccountBuilder creates test accounts with a builder pattern
type AccountBuilder struct {
	name      string
	email     string
	phone     string
	secret    string
	gender    string
	birthdate string
}

// NewAccountBuilder creates a new AccountBuilder with default values
func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		name:      "Test Account",
		email:     fmt.Sprintf("test_%s@example.com", uuid.New().String()[:8]),
		phone:     "0812345678",
		secret:    "testpassword123",
		gender:    "P",
		birthdate: "2000-01-01",
	}
}

// WithName sets the display name
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.email = email
	return b
}

// WithSecret sets the raw secret
func (b *AccountBuilder) WithSecret(secret string) *AccountBuilder {
	b.secret = secret
	return b
}

// WithGender sets the gender sentinel ("L" or "P")
func (b *AccountBuilder) WithGender(gender string) *AccountBuilder {
	b.gender = gender
	return b
}

// Build creates the account and credential in the database and returns
// the account with the raw secret
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Account, string) {
	t.Helper()

	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(b.secret), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash secret: %v", err)
	}

	account := &domain.Account{
		ID:        uuid.New(),
		Name:      b.name,
		Email:     b.email,
		Phone:     b.phone,
		Gender:    domain.NormalizeGender(b.gender),
		Birthdate: b.birthdate,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	credential := &domain.Credential{
		ID:         uuid.New(),
		AccountID:  account.ID,
		SecretHash: string(hashedSecret),
		CreatedAt:  time.Now(),
	}

	if err := db.Create(credential).Error; err != nil {
		t.Fatalf("failed to create credential: %v", err)
	}

	return account, b.secret
}

// DoctorBuilder creates test doctors
type DoctorBuilder struct {
	name      string
	specialty string
	price     int
}

// NewDoctorBuilder creates a new DoctorBuilder with default values
func NewDoctorBuilder() *DoctorBuilder {
	return &DoctorBuilder{
		name:      fmt.Sprintf("dr. Test %s", uuid.New().String()[:8]),
		specialty: "Dermatologist",
		price:     150000,
	}
}

// WithName sets the doctor name
func (b *DoctorBuilder) WithName(name string) *DoctorBuilder {
	b.name = name
	return b
}

// Build creates the doctor in the database
func (b *DoctorBuilder) Build(t *testing.T, db *gorm.DB) *domain.Doctor {
	t.Helper()

	doctor := &domain.Doctor{
		ID:          uuid.New(),
		Name:        b.name,
		Specialty:   b.specialty,
		Schedule:    datatypes.JSON("[]"),
		Price:       b.price,
		IsAvailable: true,
		Rating:      4.5,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to create doctor: %v", err)
	}

	return doctor
}
