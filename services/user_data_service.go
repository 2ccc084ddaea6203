package services

import (
	"log"
	"net/http"

	"github.com/greencity/wastetrack/db"
	apiError "github.com/greencity/wastetrack/errors"
)

// UserDataService covers the per-user side table: reward balance, saved
// pickup address and the missed-pickup request that depends on it.
type UserDataService interface {
	GetRewardBalance(userID uint) (int, error)
	GetAddress(userID uint) (*string, error)
	UpdateAddress(userID uint, address string) error
	RequestMissedPickup(userID uint) error
}

type userDataService struct {
	userDataRepo db.UserDataRepository
}

func NewUserDataService(userDataRepo db.UserDataRepository) UserDataService {
	return &userDataService{userDataRepo: userDataRepo}
}

func (s *userDataService) GetRewardBalance(userID uint) (int, error) {
	balance, err := s.userDataRepo.GetRewardBalance(userID)
	if err != nil {
		log.Printf("GetRewardBalance: %v", err)
		return 0, apiError.ErrInternalServerError
	}
	return balance, nil
}

func (s *userDataService) GetAddress(userID uint) (*string, error) {
	address, err := s.userDataRepo.GetAddress(userID)
	if err != nil {
		log.Printf("GetAddress: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return address, nil
}

func (s *userDataService) UpdateAddress(userID uint, address string) error {
	if err := s.userDataRepo.UpsertAddress(userID, address); err != nil {
		log.Printf("UpdateAddress: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

// RequestMissedPickup schedules a pickup at the user's saved address. Without
// a saved address there is nowhere to send a truck.
func (s *userDataService) RequestMissedPickup(userID uint) error {
	address, err := s.userDataRepo.GetAddress(userID)
	if err != nil {
		log.Printf("RequestMissedPickup: %v", err)
		return apiError.ErrInternalServerError
	}
	if address == nil || *address == "" {
		return apiError.New("address not found", http.StatusBadRequest)
	}
	log.Printf("missed pickup requested by user %d at %q", userID, *address)
	return nil
}
