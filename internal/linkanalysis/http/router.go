package http

import "github.com/gin-gonic/gin"

// Register attaches the algorithm routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	algorithms := rg.Group("/algorithms")
	algorithms.POST("/pagerank", h.RunPageRank)
	algorithms.POST("/hits", h.RunHITS)
	algorithms.POST("/compare", h.Compare)

	rg.GET("/networks/:type/visualization", h.Visualization)
}
