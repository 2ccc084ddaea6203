package services

import (
	"context"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/greencity/wastetrack/db"
	apiError "github.com/greencity/wastetrack/errors"
	"github.com/greencity/wastetrack/models"
	"github.com/leebenson/conform"
	"github.com/pkg/errors"
)

// ComplaintService carries the complaint lifecycle: citizen submission with
// an optional photo, listing scoped by role, admin triage and deletion.
type ComplaintService interface {
	SubmitComplaint(ctx context.Context, userID uint, input *models.SubmitComplaintInput, image io.Reader) (*models.Complaint, error)
	ListComplaints(viewer *models.User) ([]models.ComplaintView, error)
	UpdateStatus(id uuid.UUID, rawStatus string, adminID uint) error
	DeleteComplaint(ctx context.Context, id uuid.UUID) error
	ComplaintImageURL(ctx context.Context, id uuid.UUID) (string, error)
}

type complaintService struct {
	complaintRepo db.ComplaintRepository
	assets        AssetService
}

func NewComplaintService(complaintRepo db.ComplaintRepository, assets AssetService) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		assets:        assets,
	}
}

// SubmitComplaint validates input, uploads the photo when one is present and
// only then inserts the row. An upload failure means no row at all.
func (s *complaintService) SubmitComplaint(ctx context.Context, userID uint, input *models.SubmitComplaintInput, image io.Reader) (*models.Complaint, error) {
	if err := conform.Strings(input); err != nil {
		return nil, apiError.New("unable to process input", http.StatusBadRequest)
	}
	if input.Title == "" {
		return nil, apiError.New("title is required", http.StatusBadRequest)
	}
	if input.Description == "" {
		return nil, apiError.New("description is required", http.StatusBadRequest)
	}
	category, err := models.ParseComplaintCategory(input.Category)
	if err != nil {
		return nil, apiError.New("invalid category", http.StatusBadRequest)
	}
	if input.Longitude == nil || input.Latitude == nil {
		return nil, apiError.New("invalid coordinates", http.StatusBadRequest)
	}
	if !isFinite(*input.Longitude) || !isFinite(*input.Latitude) {
		return nil, apiError.New("invalid coordinates", http.StatusBadRequest)
	}

	var imageKey string
	if image != nil {
		compressed, err := CompressImage(image)
		if err != nil {
			log.Printf("SubmitComplaint: image processing failed: %v", err)
			return nil, apiError.New("failed to process image", http.StatusInternalServerError)
		}
		imageKey = BuildImageKey(userID)
		if err := s.assets.Store(ctx, imageKey, compressed, imageContentType); err != nil {
			log.Printf("SubmitComplaint: upload failed: %v", err)
			return nil, apiError.ErrInternalServerError
		}
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Status:      models.StatusOpen,
		Longitude:   *input.Longitude,
		Latitude:    *input.Latitude,
		ImageS3Key:  imageKey,
	}
	saved, err := s.complaintRepo.SaveComplaint(complaint)
	if err != nil {
		if imageKey != "" {
			// the row never landed, don't strand the object
			if delErr := s.assets.Delete(ctx, imageKey); delErr != nil {
				log.Printf("SubmitComplaint: orphan cleanup failed for %s: %v", imageKey, delErr)
			}
		}
		return nil, apiError.ErrInternalServerError
	}
	return saved, nil
}

// ListComplaints returns every complaint for admins and only the viewer's
// own rows for everyone else, newest first.
func (s *complaintService) ListComplaints(viewer *models.User) ([]models.ComplaintView, error) {
	if viewer.IsAdmin() {
		return s.complaintRepo.GetComplaintsForAdmin()
	}
	return s.complaintRepo.GetComplaintsByOwner(viewer.ID)
}

func (s *complaintService) UpdateStatus(id uuid.UUID, rawStatus string, adminID uint) error {
	status, err := models.ParseComplaintStatus(rawStatus)
	if err != nil {
		return apiError.New("invalid status", http.StatusBadRequest)
	}
	if err := s.complaintRepo.UpdateStatus(id, status, adminID); err != nil {
		log.Printf("UpdateStatus: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

// DeleteComplaint releases the stored photo before removing the row. Asset
// release is best effort: a failed delete in S3 never blocks the row delete.
func (s *complaintService) DeleteComplaint(ctx context.Context, id uuid.UUID) error {
	complaint, err := s.complaintRepo.GetComplaintByID(id)
	if err != nil {
		log.Printf("DeleteComplaint: %v", err)
		return apiError.ErrInternalServerError
	}
	if complaint == nil {
		// already gone, nothing to do
		return nil
	}
	if complaint.ImageS3Key != "" {
		if err := s.assets.Delete(ctx, complaint.ImageS3Key); err != nil {
			log.Printf("DeleteComplaint: releasing %s failed: %v", complaint.ImageS3Key, err)
		}
	}
	if err := s.complaintRepo.DeleteByID(id); err != nil {
		log.Printf("DeleteComplaint: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (s *complaintService) ComplaintImageURL(ctx context.Context, id uuid.UUID) (string, error) {
	key, err := s.complaintRepo.GetImageKey(id)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrComplaintNotFound):
			return "", apiError.New("complaint not found", http.StatusNotFound)
		case errors.Is(err, db.ErrImageNotAttached):
			return "", apiError.New("image not attached", http.StatusNotFound)
		default:
			log.Printf("ComplaintImageURL: %v", err)
			return "", apiError.ErrInternalServerError
		}
	}
	url, err := s.assets.SignedURL(ctx, key)
	if err != nil {
		log.Printf("ComplaintImageURL: presign failed: %v", err)
		return "", apiError.New("failed to load image", http.StatusInternalServerError)
	}
	return url, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
