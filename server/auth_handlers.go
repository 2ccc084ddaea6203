package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apiError "github.com/greencity/wastetrack/errors"
	"github.com/greencity/wastetrack/models"
	"github.com/greencity/wastetrack/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := decode(c, &user); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		if validationErrs := models.ValidateStruct(&user); len(validationErrs) > 0 {
			msgs := make([]string, 0, len(validationErrs))
			for _, e := range validationErrs {
				msgs = append(msgs, e.Error())
			}
			response.JSON(c, "", http.StatusBadRequest, nil, apiError.New(strings.Join(msgs, "; "), http.StatusBadRequest))
			return
		}

		created, err := s.AuthService.SignupUser(&user)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "signup successful", http.StatusCreated, models.UserResponse{
			ID:       created.ID,
			Fullname: created.Fullname,
			Username: created.Username,
			Email:    created.Email,
			RoleName: models.RoleUser,
		}, nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.JSON(c, "", apiError.ErrBadRequest.Status, nil, err)
			return
		}
		userResponse, err := s.AuthService.LoginUser(&loginRequest)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "login successful", http.StatusOK, userResponse, nil)
	}
}
