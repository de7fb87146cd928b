// Package docs serves the OpenAPI description of the HTTP API.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPI []byte

// Register mounts /openapi.json and the swagger UI under /swagger/.
func Register(r *gin.Engine) {
	r.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPI)
	})
	ui := httpSwagger.Handler(httpSwagger.URL("/openapi.json"))
	r.GET("/swagger/*any", gin.WrapH(ui))
}
