package inventory

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RespondError writes the error body and attaches err to the context so the
// request logger reports it.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(ToHTTPStatus(err), ErrorFromErr(err))
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorBody(CodeInvalidArgument, "invalid "+name))
		return 0, false
	}
	return id, true
}

// DeleteResult mirrors the body the lab frontend expects after a delete.
type DeleteResult struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}
