package services

import (
	"log"
	"net/http"

	"github.com/greencity/wastetrack/config"
	"github.com/greencity/wastetrack/db"
	apiError "github.com/greencity/wastetrack/errors"
	"github.com/greencity/wastetrack/models"
	"github.com/greencity/wastetrack/services/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account creation and credential login.
type AuthService interface {
	SignupUser(user *models.User) (*models.User, error)
	LoginUser(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (a *authService) SignupUser(user *models.User) (*models.User, error) {
	if err := models.ValidatePassword(user.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	if err := a.authRepo.IsEmailExist(user.Email); err != nil {
		return nil, apiError.New("email already in use", http.StatusConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser: hashing failed: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.HashedPassword = string(hashed)
	user.Password = ""

	role, err := a.authRepo.FindRoleByName(models.RoleUser)
	if err != nil {
		log.Printf("SignupUser: default role missing: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.RoleID = role.ID

	created, err := a.authRepo.CreateUser(user)
	if err != nil {
		return nil, apiError.GetUniqueContraintError(err)
	}
	return created, nil
}

func (a *authService) LoginUser(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := a.authRepo.FindUserByEmail(req.Email)
	if err != nil {
		return nil, apiError.ErrInvalidPassword
	}
	if err := user.VerifyPassword(req.Password); err != nil {
		return nil, apiError.ErrInvalidPassword
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(user.Email, a.Config.JWTSecret, user.IsAdmin(), user.ID, user.Role.Name)
	if err != nil {
		log.Printf("LoginUser: token generation failed: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: models.UserResponse{
			ID:       user.ID,
			Fullname: user.Fullname,
			Username: user.Username,
			Email:    user.Email,
			RoleName: user.Role.Name,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
