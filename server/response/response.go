package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiError "github.com/greencity/wastetrack/errors"
)

// JSON writes the standard response envelope.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	errMessage := ""
	if err != nil {
		errMessage = err.Error()
	}
	responsedata := gin.H{
		"message": message,
		"data":    data,
		"errors":  errMessage,
		"status":  http.StatusText(status),
	}

	c.JSON(status, responsedata)
}

// HandleErrors maps known error types to their status, everything else to a
// generic 500 so internals never leak to the client.
func HandleErrors(c *gin.Context, err error) {
	if e, ok := err.(*apiError.Error); ok {
		JSON(c, "", e.Status, nil, e)
		return
	}
	JSON(c, "", http.StatusInternalServerError, nil, apiError.ErrInternalServerError)
}
