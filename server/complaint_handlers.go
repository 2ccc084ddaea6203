package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apiError "github.com/greencity/wastetrack/errors"
	"github.com/greencity/wastetrack/models"
	"github.com/greencity/wastetrack/server/response"
)

func (s *Server) handleSubmitComplaint() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}

		var input models.SubmitComplaintInput
		if err := c.ShouldBind(&input); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		var image io.Reader
		file, _, err := c.Request.FormFile("image")
		if err == nil {
			defer file.Close()
			image = file
		} else if err != http.ErrMissingFile {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		complaint, err := s.ComplaintService.SubmitComplaint(c.Request.Context(), userID, &input, image)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "complaint submitted", http.StatusOK, models.ComplaintIDResponse{ID: complaint.ID.String()}, nil)
	}
}

func (s *Server) handleGetComplaints() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		complaints, err := s.ComplaintService.ListComplaints(user)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "complaints retrieved", http.StatusOK, complaints, nil)
	}
}

func (s *Server) handleComplaintImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ComplaintImageRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, apiError.New("invalid complaint id", http.StatusBadRequest))
			return
		}
		id, err := uuid.Parse(req.ComplaintID)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, apiError.New("invalid complaint id", http.StatusBadRequest))
			return
		}
		url, err := s.ComplaintService.ComplaintImageURL(c.Request.Context(), id)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, gin.H{"url": url}, nil)
	}
}

func (s *Server) handleUpdateComplaintStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, apiError.New("invalid complaint id", http.StatusBadRequest))
			return
		}
		var req models.UpdateStatusRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		adminID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		if err := s.ComplaintService.UpdateStatus(id, req.Status, adminID); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "status updated", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleDeleteComplaint() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, apiError.New("invalid complaint id", http.StatusBadRequest))
			return
		}
		if err := s.ComplaintService.DeleteComplaint(c.Request.Context(), id); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "complaint deleted", http.StatusOK, nil, nil)
	}
}
