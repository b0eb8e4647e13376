package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/http/response"
	"github.com/yungbote/edusphere-backend/internal/platform/apierr"
)

var errInternal = errors.New("Internal server error")

// respondServiceError writes expected service outcomes with their own status
// and message; anything else is a 500 whose detail stays in the logs.
func respondServiceError(c *gin.Context, err error) {
	if ae, ok := apierr.As(err); ok {
		response.RespondError(c, apierr.StatusOf(ae), ae)
		return
	}
	_ = c.Error(err)
	response.RespondError(c, http.StatusInternalServerError, errInternal)
}
