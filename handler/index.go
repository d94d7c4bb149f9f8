package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var probe = newProbe()

func newProbe() *gin.Engine {
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "La Familia Chambers API",
			"path":    c.Request.URL.Path,
		})
	})
	return r
}

// Handler answers liveness checks without touching configuration or stores.
func Handler(w http.ResponseWriter, r *http.Request) {
	probe.ServeHTTP(w, r)
}
