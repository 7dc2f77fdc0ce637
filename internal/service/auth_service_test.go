package service_test

import (
	"context"
	"testing"

	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/ayune/ayune-backend/internal/repository/postgres"
	"github.com/ayune/ayune-backend/internal/service"
	"github.com/ayune/ayune-backend/internal/testutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Account, repos.Credential, cfg)
	ctx := context.Background()

	tests := []struct {
		name       string
		input      service.SignupInput
		wantErr    error
		wantGender domain.Gender
	}{
		{
			name: "successful signup with male sentinel",
			input: service.SignupInput{
				Name:          "Ana",
				Email:         "a@x.com",
				Phone:         "08",
				Secret:        "p1",
				ConfirmSecret: "p1",
				Gender:        "L",
				Birthdate:     "2000-01-01",
			},
			wantGender: domain.GenderMale,
		},
		{
			name: "unexpected gender coerced to female",
			input: service.SignupInput{
				Name:          "Budi",
				Email:         "b@x.com",
				Phone:         "08",
				Secret:        "p1",
				ConfirmSecret: "p1",
				Gender:        "whatever",
				Birthdate:     "1999-12-31",
			},
			wantGender: domain.GenderFemale,
		},
		{
			name: "secret mismatch",
			input: service.SignupInput{
				Name:          "Cita",
				Email:         "c@x.com",
				Phone:         "08",
				Secret:        "p1",
				ConfirmSecret: "p2",
				Gender:        "P",
				Birthdate:     "2000-01-01",
			},
			wantErr: domain.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			id, err := authService.Signup(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				// No account row may exist after a failed signup.
				_, getErr := repos.Account.GetByEmail(ctx, tt.input.Email)
				assert.Error(t, getErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)

			account, err := repos.Account.GetByEmail(ctx, tt.input.Email)
			require.NoError(t, err)
			assert.Equal(t, id, account.ID)
			assert.Equal(t, tt.wantGender, account.Gender)

			// The credential stores a hash, never the raw secret.
			credential, err := repos.Credential.GetByAccountID(ctx, account.ID)
			require.NoError(t, err)
			assert.NotEqual(t, tt.input.Secret, credential.SecretHash)
			assert.NotEmpty(t, credential.SecretHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Account, repos.Credential, cfg)
	ctx := context.Background()

	account, rawSecret := testutil.NewAccountBuilder().
		WithEmail("login@x.com").
		WithSecret("correctsecret").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:  account.Email,
				Secret: rawSecret,
			},
		},
		{
			name: "wrong secret",
			input: service.LoginInput{
				Email:  account.Email,
				Secret: "wrongsecret",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			input: service.LoginInput{
				Email:  "nobody@x.com",
				Secret: "anysecret",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				// Unknown email and wrong secret must be indistinguishable.
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, account.ID, result.Account.ID)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_TokenEmbedsEmailAndAccountID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Account, repos.Credential, cfg)
	ctx := context.Background()

	account, rawSecret := testutil.NewAccountBuilder().
		WithEmail("claims@x.com").
		Build(t, testDB.DB)

	result, err := authService.Login(ctx, service.LoginInput{
		Email:  account.Email,
		Secret: rawSecret,
	})
	require.NoError(t, err)

	claims, err := authService.ValidateToken(result.Token)
	require.NoError(t, err)

	assert.Equal(t, account.Email, (*claims)["email"])
	assert.Equal(t, account.ID.String(), (*claims)["sub"])

	exp, err := (*claims).GetExpirationTime()
	require.NoError(t, err)
	iat, err := (*claims).GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, cfg.TokenTTL, exp.Time.Sub(iat.Time))
}

func TestAuthService_ValidateToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Account, repos.Credential, cfg)

	account, rawSecret := testutil.NewAccountBuilder().Build(t, testDB.DB)
	result, err := authService.Login(context.Background(), service.LoginInput{
		Email:  account.Email,
		Secret: rawSecret,
	})
	require.NoError(t, err)

	// A token signed with a different key must be rejected.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   account.ID.String(),
		"email": account.Email,
	})
	forgedString, err := forged.SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid token", token: result.Token},
		{name: "forged signature", token: forgedString, wantErr: true},
		{name: "malformed token", token: "notavalidjwt", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := authService.ValidateToken(tt.token)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}
