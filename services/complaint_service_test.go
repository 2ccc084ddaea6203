package services_test

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"io"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/greencity/wastetrack/db"
	apiError "github.com/greencity/wastetrack/errors"
	"github.com/greencity/wastetrack/models"
	"github.com/greencity/wastetrack/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func coord(v float64) *float64 {
	return &v
}

func validInput() *models.SubmitComplaintInput {
	return &models.SubmitComplaintInput{
		Title:       "Overflowing bin",
		Description: "Bin on the corner has not been emptied in a week",
		Category:    "non-biodegradable",
		Longitude:   coord(30.52),
		Latitude:    coord(50.45),
	}
}

func testJPEG(t *testing.T) io.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return &buf
}

func apiStatus(t *testing.T, err error) int {
	t.Helper()
	apiErr, ok := err.(*apiError.Error)
	require.True(t, ok, "expected *apiError.Error, got %T", err)
	return apiErr.Status
}

func TestSubmitComplaint_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.SubmitComplaintInput)
	}{
		{"empty title", func(in *models.SubmitComplaintInput) { in.Title = "   " }},
		{"empty description", func(in *models.SubmitComplaintInput) { in.Description = "" }},
		{"unknown category", func(in *models.SubmitComplaintInput) { in.Category = "plastic" }},
		{"missing longitude", func(in *models.SubmitComplaintInput) { in.Longitude = nil }},
		{"missing latitude", func(in *models.SubmitComplaintInput) { in.Latitude = nil }},
		{"nan longitude", func(in *models.SubmitComplaintInput) { in.Longitude = coord(math.NaN()) }},
		{"infinite latitude", func(in *models.SubmitComplaintInput) { in.Latitude = coord(math.Inf(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockComplaintRepository)
			assets := new(MockAssetService)
			svc := services.NewComplaintService(repo, assets)

			input := validInput()
			tt.mutate(input)

			_, err := svc.SubmitComplaint(context.Background(), 1, input, nil)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apiStatus(t, err))
			repo.AssertNotCalled(t, "SaveComplaint", mock.Anything)
			assets.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitComplaint_WithoutImage(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	repo.On("SaveComplaint", mock.MatchedBy(func(c *models.Complaint) bool {
		return c.UserID == 7 &&
			c.Status == models.StatusOpen &&
			c.Category == models.CategoryNonBiodegradable &&
			c.ImageS3Key == ""
	})).Return(&models.Complaint{ID: uuid.New()}, nil)

	saved, err := svc.SubmitComplaint(context.Background(), 7, validInput(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	repo.AssertExpectations(t)
	assets.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitComplaint_WithImage(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	keyMatcher := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "complaints/7-") && strings.HasSuffix(key, ".jpg")
	})
	assets.On("Store", mock.Anything, keyMatcher, mock.Anything, "image/jpeg").Return(nil)
	repo.On("SaveComplaint", mock.MatchedBy(func(c *models.Complaint) bool {
		return c.ImageS3Key != ""
	})).Return(&models.Complaint{ID: uuid.New()}, nil)

	_, err := svc.SubmitComplaint(context.Background(), 7, validInput(), testJPEG(t))
	require.NoError(t, err)
	repo.AssertExpectations(t)
	assets.AssertExpectations(t)
}

func TestSubmitComplaint_UndecodableImage(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	_, err := svc.SubmitComplaint(context.Background(), 7, validInput(), strings.NewReader("not an image"))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apiStatus(t, err))
	repo.AssertNotCalled(t, "SaveComplaint", mock.Anything)
	assets.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitComplaint_UploadFailureMeansNoRow(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	assets.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.SubmitComplaint(context.Background(), 7, validInput(), testJPEG(t))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apiStatus(t, err))
	repo.AssertNotCalled(t, "SaveComplaint", mock.Anything)
}

func TestSubmitComplaint_InsertFailureReleasesUpload(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	assets.On("Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	assets.On("Delete", mock.Anything, mock.Anything).Return(nil)
	repo.On("SaveComplaint", mock.Anything).Return(nil, assert.AnError)

	_, err := svc.SubmitComplaint(context.Background(), 7, validInput(), testJPEG(t))
	require.Error(t, err)
	assets.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListComplaints_ScopedByRole(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := services.NewComplaintService(repo, new(MockAssetService))

	admin := &models.User{Role: models.Role{Name: models.RoleAdmin}}
	admin.ID = 1
	citizen := &models.User{Role: models.Role{Name: models.RoleUser}}
	citizen.ID = 2

	repo.On("GetComplaintsForAdmin").Return([]models.ComplaintView{{}, {}}, nil)
	repo.On("GetComplaintsByOwner", uint(2)).Return([]models.ComplaintView{{}}, nil)

	all, err := svc.ListComplaints(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListComplaints(citizen)
	require.NoError(t, err)
	assert.Len(t, own, 1)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := services.NewComplaintService(repo, new(MockAssetService))

	err := svc.UpdateStatus(uuid.New(), "done", 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apiStatus(t, err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_ParsesAndDelegates(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := services.NewComplaintService(repo, new(MockAssetService))

	id := uuid.New()
	repo.On("UpdateStatus", id, models.StatusResolved, uint(3)).Return(nil)

	require.NoError(t, svc.UpdateStatus(id, "resolved", 3))
	repo.AssertExpectations(t)
}

func TestDeleteComplaint_MissingIsNoOp(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	id := uuid.New()
	repo.On("GetComplaintByID", id).Return(nil, nil)

	require.NoError(t, svc.DeleteComplaint(context.Background(), id))
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything)
	assets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteComplaint_ReleasesAssetFirst(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	id := uuid.New()
	repo.On("GetComplaintByID", id).Return(&models.Complaint{ID: id, ImageS3Key: "complaints/7-abc.jpg"}, nil)
	assets.On("Delete", mock.Anything, "complaints/7-abc.jpg").Return(nil)
	repo.On("DeleteByID", id).Return(nil)

	require.NoError(t, svc.DeleteComplaint(context.Background(), id))
	repo.AssertExpectations(t)
	assets.AssertExpectations(t)
}

func TestDeleteComplaint_AssetFailureDoesNotBlockRowDelete(t *testing.T) {
	repo := new(MockComplaintRepository)
	assets := new(MockAssetService)
	svc := services.NewComplaintService(repo, assets)

	id := uuid.New()
	repo.On("GetComplaintByID", id).Return(&models.Complaint{ID: id, ImageS3Key: "complaints/7-abc.jpg"}, nil)
	assets.On("Delete", mock.Anything, mock.Anything).Return(assert.AnError)
	repo.On("DeleteByID", id).Return(nil)

	require.NoError(t, svc.DeleteComplaint(context.Background(), id))
	repo.AssertExpectations(t)
}

func TestComplaintImageURL(t *testing.T) {
	t.Run("complaint not found", func(t *testing.T) {
		repo := new(MockComplaintRepository)
		svc := services.NewComplaintService(repo, new(MockAssetService))

		id := uuid.New()
		repo.On("GetImageKey", id).Return("", db.ErrComplaintNotFound)

		_, err := svc.ComplaintImageURL(context.Background(), id)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apiStatus(t, err))
	})

	t.Run("image not attached", func(t *testing.T) {
		repo := new(MockComplaintRepository)
		svc := services.NewComplaintService(repo, new(MockAssetService))

		id := uuid.New()
		repo.On("GetImageKey", id).Return("", db.ErrImageNotAttached)

		_, err := svc.ComplaintImageURL(context.Background(), id)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apiStatus(t, err))
	})

	t.Run("signs the stored key", func(t *testing.T) {
		repo := new(MockComplaintRepository)
		assets := new(MockAssetService)
		svc := services.NewComplaintService(repo, assets)

		id := uuid.New()
		repo.On("GetImageKey", id).Return("complaints/7-abc.jpg", nil)
		assets.On("SignedURL", mock.Anything, "complaints/7-abc.jpg").Return("https://bucket.s3.amazonaws.com/signed", nil)

		url, err := svc.ComplaintImageURL(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/signed", url)
	})
}
