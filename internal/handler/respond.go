package handler

import (
	"github.com/gin-gonic/gin"

	"medicare-backend/pkg/errs"
)

func writeError(c *gin.Context, err error) {
	c.JSON(errs.GetErrorStatusCode(err), gin.H{"error": err.Error()})
}
