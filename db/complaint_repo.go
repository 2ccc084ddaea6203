package db

import (
	"log"

	"github.com/google/uuid"
	"github.com/greencity/wastetrack/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResolvedRewardPoints is credited to the complaint owner every time a
// complaint is moved to resolved. Re-resolving credits again; there is no
// idempotence guard on purpose until product says otherwise.
const ResolvedRewardPoints = 10

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrImageNotAttached  = errors.New("image not attached")
)

type ComplaintRepository interface {
	SaveComplaint(complaint *models.Complaint) (*models.Complaint, error)
	GetComplaintByID(id uuid.UUID) (*models.Complaint, error)
	GetComplaintsForAdmin() ([]models.ComplaintView, error)
	GetComplaintsByOwner(userID uint) ([]models.ComplaintView, error)
	UpdateStatus(id uuid.UUID, status models.ComplaintStatus, adminID uint) error
	DeleteByID(id uuid.UUID) error
	GetImageKey(id uuid.UUID) (string, error)
}

type complaintRepo struct {
	DB *gorm.DB
}

func NewComplaintRepo(db *GormDB) ComplaintRepository {
	return &complaintRepo{db.DB}
}

func (r *complaintRepo) SaveComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	if err := r.DB.Create(complaint).Error; err != nil {
		log.Printf("SaveComplaint error: %v", err)
		return nil, err
	}
	return complaint, nil
}

// GetComplaintByID returns nil without error when no row exists, so callers
// that treat a missing complaint as a no-op don't have to unwrap gorm errors.
func (r *complaintRepo) GetComplaintByID(id uuid.UUID) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.DB.Where("id = ?", id).First(&complaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching complaint")
	}
	return &complaint, nil
}

const ownerProjection = "complaints.*, users.fullname AS owner_name, users.username AS owner_username"

func (r *complaintRepo) GetComplaintsForAdmin() ([]models.ComplaintView, error) {
	var views []models.ComplaintView
	err := r.DB.Model(&models.Complaint{}).
		Select(ownerProjection).
		Joins("LEFT JOIN users ON users.id = complaints.user_id").
		Order("complaints.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing complaints")
	}
	return views, nil
}

func (r *complaintRepo) GetComplaintsByOwner(userID uint) ([]models.ComplaintView, error) {
	var views []models.ComplaintView
	err := r.DB.Model(&models.Complaint{}).
		Select(ownerProjection).
		Joins("LEFT JOIN users ON users.id = complaints.user_id").
		Where("complaints.user_id = ?", userID).
		Order("complaints.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing complaints by owner")
	}
	return views, nil
}

// UpdateStatus is the status transition engine. Within a single transaction
// it looks up the complaint owner, credits the reward ledger when the new
// status is resolved, and updates the complaint row. Either everything
// commits or everything rolls back. Any current status may move to any
// target status; the transition function is deliberately permissive.
func (r *complaintRepo) UpdateStatus(id uuid.UUID, status models.ComplaintStatus, adminID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var complaint models.Complaint
		err := tx.Select("id", "user_id").Where("id = ?", id).First(&complaint).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// unknown complaint: commit nothing, raise nothing
				return nil
			}
			return errors.Wrap(err, "looking up complaint owner")
		}

		updates := map[string]interface{}{"status": status}
		if status == models.StatusResolved {
			// insert-or-increment in one statement so two concurrent first
			// resolutions for the same owner cannot race the existence check
			credit := models.UserData{UserID: complaint.UserID, RewardPoints: ResolvedRewardPoints}
			err = tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"reward_points": gorm.Expr("user_data.reward_points + ?", ResolvedRewardPoints),
				}),
			}).Create(&credit).Error
			if err != nil {
				return errors.Wrap(err, "crediting reward points")
			}

			updates["resolved_at"] = tx.NowFunc()
			updates["resolved_by"] = adminID
		}

		if err := tx.Model(&models.Complaint{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return errors.Wrap(err, "updating complaint status")
		}
		return nil
	})
}

// DeleteByID removes the complaint row. A missing id is a silent no-op.
func (r *complaintRepo) DeleteByID(id uuid.UUID) error {
	result := r.DB.Where("id = ?", id).Delete(&models.Complaint{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "deleting complaint")
	}
	if result.RowsAffected == 0 {
		log.Printf("DeleteByID: complaint %s not found, nothing deleted", id)
	}
	return nil
}

func (r *complaintRepo) GetImageKey(id uuid.UUID) (string, error) {
	var complaint models.Complaint
	err := r.DB.Select("image_s3_key").Where("id = ?", id).First(&complaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrComplaintNotFound
		}
		return "", errors.Wrap(err, "fetching image key")
	}
	if complaint.ImageS3Key == "" {
		return "", ErrImageNotAttached
	}
	return complaint.ImageS3Key, nil
}
