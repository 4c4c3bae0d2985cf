package handlers

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

var idPattern = regexp.MustCompile(`^\d+$`)

// CreatedResponse is the body of every successful create.
type CreatedResponse struct {
	ID uint `json:"id"`
}

func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	if !idPattern.MatchString(raw) {
		return 0, httperr.ErrInvalidFields(map[string]string{"id": "must be a non-negative integer"})
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, httperr.ErrInvalidFields(map[string]string{"id": "is out of range"})
	}
	return uint(n), nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validators.Translate(err)
	}
	return nil
}

func bindQuery(c *gin.Context, dst any) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return validators.Translate(err)
	}
	return nil
}
