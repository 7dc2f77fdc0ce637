package repository

import (
	"context"

	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/google/uuid"
)

type AccountRepository interface {
	// CreateWithCredential inserts the account and its credential in a
	// single transaction. Either both rows exist afterwards or neither.
	CreateWithCredential(ctx context.Context, account *domain.Account, credential *domain.Credential) error
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CredentialRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
	Update(ctx context.Context, doctor *domain.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	Account    AccountRepository
	Credential CredentialRepository
	Doctor     DoctorRepository
	Product    ProductRepository
}
