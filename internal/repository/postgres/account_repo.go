package postgres

import (
	"context"

	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateWithCredential(ctx context.Context, account *domain.Account, credential *domain.Credential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		credential.AccountID = account.ID
		return tx.Create(credential).Error
	})
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).
		Preload("SkinType").
		Preload("SkinConcern").
		First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	var accounts []*domain.Account
	err := r.db.WithContext(ctx).
		Preload("SkinType").
		Preload("SkinConcern").
		Order("created_at ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Update overwrites all mutable columns. An unknown id updates zero
// rows and is not an error, matching the CRUD contract.
func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	return r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", account.ID).
		Select("name", "email", "phone", "gender", "birthdate", "coins", "skin_type_id", "skin_concern_id", "updated_at").
		Updates(account).Error
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Credential{}, "account_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Account{}, "id = ?", id).Error
	})
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *credentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error) {
	var credential domain.Credential
	err := r.db.WithContext(ctx).First(&credential, "account_id = ?", accountID).Error
	if err != nil {
		return nil, err
	}
	return &credential, nil
}
