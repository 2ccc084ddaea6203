package db

import (
	"github.com/greencity/wastetrack/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserDataRepository interface {
	GetRewardBalance(userID uint) (int, error)
	GetAddress(userID uint) (*string, error)
	UpsertAddress(userID uint, address string) error
}

type userDataRepo struct {
	DB *gorm.DB
}

func NewUserDataRepo(db *GormDB) UserDataRepository {
	return &userDataRepo{db.DB}
}

// GetRewardBalance reports 0 for users that have never earned points; the
// user_data row is only created on first credit or address save.
func (r *userDataRepo) GetRewardBalance(userID uint) (int, error) {
	var data models.UserData
	err := r.DB.Where("user_id = ?", userID).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "fetching reward balance")
	}
	return data.RewardPoints, nil
}

func (r *userDataRepo) GetAddress(userID uint) (*string, error) {
	var data models.UserData
	err := r.DB.Where("user_id = ?", userID).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching address")
	}
	return data.Address, nil
}

// UpsertAddress writes the address without touching reward_points, creating
// the user_data row with a zero balance when it doesn't exist yet.
func (r *userDataRepo) UpsertAddress(userID uint, address string) error {
	data := models.UserData{UserID: userID, Address: &address}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"address"}),
	}).Create(&data).Error
	if err != nil {
		return errors.Wrap(err, "saving address")
	}
	return nil
}
