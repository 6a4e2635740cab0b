package http

import "github.com/gin-gonic/gin"

// Register attaches the catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	networks := rg.Group("/networks")
	networks.GET("", h.List)
	networks.GET("/:type", h.Info)
	networks.GET("/:type/degrees", h.Degrees)
	networks.GET("/:type/dataset", h.Dataset)
}
