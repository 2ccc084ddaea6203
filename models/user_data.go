package models

// UserData is the per-user side table holding the reward-points balance and
// the pickup address. The row is created lazily on first write; absence of a
// row reads as zero points and no address.
type UserData struct {
	UserID       uint    `json:"user_id" gorm:"primaryKey"`
	RewardPoints int     `json:"reward_points" gorm:"not null;default:0"`
	Address      *string `json:"address"`
}

// TableName keeps the original table name rather than gorm's pluralization.
func (UserData) TableName() string {
	return "user_data"
}

type UpdateAddressRequest struct {
	Address string `json:"address" binding:"required" conform:"trim"`
}

type AddressResponse struct {
	Address *string `json:"address"`
}

type RewardBalanceResponse struct {
	RewardPoints int `json:"reward_points"`
}
