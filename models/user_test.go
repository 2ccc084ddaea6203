package models_test

import (
	"testing"

	"github.com/greencity/wastetrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret12"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{HashedPassword: string(hash)}
	assert.NoError(t, user.VerifyPassword("secret12"))
	assert.Error(t, user.VerifyPassword("wrong"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, models.ValidatePassword("short"))
	assert.Error(t, models.ValidatePassword("way-too-long-password"))
	assert.NoError(t, models.ValidatePassword("secret12"))
}

func TestIsAdmin(t *testing.T) {
	admin := models.User{Role: models.Role{Name: models.RoleAdmin}}
	citizen := models.User{Role: models.Role{Name: models.RoleUser}}
	assert.True(t, admin.IsAdmin())
	assert.False(t, citizen.IsAdmin())
}

func TestValidateStruct_TrimsAndValidates(t *testing.T) {
	user := models.User{
		Fullname: "  Jane Citizen  ",
		Username: " jane ",
		Email:    " JANE@EXAMPLE.COM ",
	}
	errs := models.ValidateStruct(&user)
	assert.Empty(t, errs)
	assert.Equal(t, "Jane Citizen", user.Fullname)
	assert.Equal(t, "jane@example.com", user.Email)
}
