package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure envelope every route uses: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody carries informational outcomes, including some 4xx results.
type MessageBody struct {
	Message string `json:"message"`
}

func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorBody{Error: msg})
}

func RespondErrorMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

func RespondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondStatus(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
