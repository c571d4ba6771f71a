package request

import (
	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/shared/errors"
)

const paramRequestID = "request_id"

func bindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}
