package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiError "github.com/greencity/wastetrack/errors"
	"github.com/greencity/wastetrack/models"
	"github.com/greencity/wastetrack/server/response"
	"github.com/leebenson/conform"
)

func (s *Server) handleGetRewardBalance() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		balance, err := s.UserDataService.GetRewardBalance(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, models.RewardBalanceResponse{RewardPoints: balance}, nil)
	}
}

func (s *Server) handleGetAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		address, err := s.UserDataService.GetAddress(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, models.AddressResponse{Address: address}, nil)
	}
}

func (s *Server) handleUpdateAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		var req models.UpdateAddressRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		if err := conform.Strings(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		if req.Address == "" {
			response.JSON(c, "", http.StatusBadRequest, nil, apiError.New("address is required", http.StatusBadRequest))
			return
		}
		if err := s.UserDataService.UpdateAddress(userID, req.Address); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "address updated", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleMissedPickup() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		if err := s.UserDataService.RequestMissedPickup(userID); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "pickup requested", http.StatusOK, nil, nil)
	}
}
