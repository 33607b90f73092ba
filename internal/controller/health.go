package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (i *implementation) Health(c *gin.Context) {
	if err := i.pinger.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
