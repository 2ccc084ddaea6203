package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusOpen       ComplaintStatus = "open"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusClosed     ComplaintStatus = "closed"
)

// ParseComplaintStatus validates a raw status string against the known set.
func ParseComplaintStatus(raw string) (ComplaintStatus, error) {
	switch ComplaintStatus(raw) {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return ComplaintStatus(raw), nil
	default:
		return "", fmt.Errorf("invalid status: %q", raw)
	}
}

// ComplaintCategory classifies the reported waste.
type ComplaintCategory string

const (
	CategoryBiodegradable    ComplaintCategory = "biodegradable"
	CategoryNonBiodegradable ComplaintCategory = "non-biodegradable"
	CategoryOther            ComplaintCategory = "other"
)

func ParseComplaintCategory(raw string) (ComplaintCategory, error) {
	switch ComplaintCategory(raw) {
	case CategoryBiodegradable, CategoryNonBiodegradable, CategoryOther:
		return ComplaintCategory(raw), nil
	default:
		return "", fmt.Errorf("invalid category: %q", raw)
	}
}

// Complaint represents a citizen-submitted waste report
type Complaint struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uint              `json:"user_id" gorm:"index"`
	User        User              `json:"-" gorm:"foreignKey:UserID"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description" gorm:"type:varchar(1000)"`
	Category    ComplaintCategory `json:"category" gorm:"type:varchar(30);not null"`
	Status      ComplaintStatus   `json:"status" gorm:"type:varchar(20);not null;default:open"`
	Longitude   float64           `json:"longitude"`
	Latitude    float64           `json:"latitude"`
	ImageS3Key  string            `json:"image_s3_key,omitempty"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
	ResolvedBy  *uint             `json:"resolved_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// BeforeCreate assigns the complaint id when the caller has not set one.
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ComplaintView is a complaint row joined with a minimal projection of
// the owning user's display identity, as returned by the list endpoint.
type ComplaintView struct {
	Complaint
	OwnerName     string `json:"owner_name"`
	OwnerUsername string `json:"owner_username"`
}

// SubmitComplaintInput carries the multipart form fields of a new complaint.
// The photo travels separately as a file part. Coordinates are pointers so a
// form that omits them is distinguishable from a legitimate 0.
type SubmitComplaintInput struct {
	Title       string   `form:"title" conform:"trim"`
	Description string   `form:"description" conform:"trim"`
	Category    string   `form:"category" conform:"trim"`
	Longitude   *float64 `form:"longitude" binding:"required"`
	Latitude    *float64 `form:"latitude" binding:"required"`
}

// UpdateStatusRequest is the payload for the admin status-update endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ComplaintImageRequest is the payload for the admin image-retrieval endpoint.
type ComplaintImageRequest struct {
	ComplaintID string `json:"complaint_id" binding:"required"`
}

// ComplaintIDResponse is returned on successful submission.
type ComplaintIDResponse struct {
	ID string `json:"id"`
}
