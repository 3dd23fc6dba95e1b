package api

import "github.com/gin-gonic/gin"

// NewRouter wires the music routes onto a fresh gin engine.
func NewRouter(c *MusicController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors())

	r.GET("/health", Health)
	r.POST("/generate-music", c.GenerateMusic)
	r.GET("/music/:filename", c.ServeMusic)
	return r
}

func cors() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type")
		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}
		ctx.Next()
	}
}
