package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/daily-missions-api/internal/errors"
)

// parseIDParam parses a path parameter as a positive numeric ID. On failure
// it writes a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// parseIDQuery parses a query parameter as a positive numeric ID. On failure
// it writes a 400 response and returns false.
func parseIDQuery(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
