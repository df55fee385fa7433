package services

import (
	"testing"
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
	"github.com/abira1/Cafe-Colombia01/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*gorm.DB, *AuthService) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		Email:    "admin@cafecolombia.com",
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}).Error)

	return db, svc
}

func TestLoginIssuesToken(t *testing.T) {
	_, svc := newAuthFixture(t)

	token, user, err := svc.Login("admin@cafecolombia.com", "letmein")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	claims := &utils.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginNormalizesEmail(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, _, err := svc.Login("  Admin@CafeColombia.com ", "letmein")
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, _, err := svc.Login("admin@cafecolombia.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@cafecolombia.com", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, user, err := svc.Login("admin@cafecolombia.com", "letmein")
	require.NoError(t, err)

	// wrong current password is refused
	err = svc.ChangePassword(user.ID, "wrong", "newpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(user.ID, "letmein", "newpass123"))

	_, _, err = svc.Login("admin@cafecolombia.com", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("admin@cafecolombia.com", "newpass123")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, user, err := svc.Login("admin@cafecolombia.com", "letmein")
	require.NoError(t, err)

	got, err := svc.UpdateProfile(user.ID, " New Name ", " OWNER@CafeColombia.com ", "555-0303")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "owner@cafecolombia.com", got.Email)
	assert.Equal(t, "555-0303", got.PhoneNumber)
}
