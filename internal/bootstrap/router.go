package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/netrank-labs/netrank-backend/internal/api/http"
	"github.com/netrank-labs/netrank-backend/internal/api/http/middleware"
	"github.com/netrank-labs/netrank-backend/internal/api/http/routes"
	rankhttp "github.com/netrank-labs/netrank-backend/internal/linkanalysis/http"
	rankrepo "github.com/netrank-labs/netrank-backend/internal/linkanalysis/repository"
	netrepo "github.com/netrank-labs/netrank-backend/internal/networks/repository"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	Store          *netrepo.Store
	Redis          *redis.Client
	CacheTTL       time.Duration
	Defaults       rankhttp.Defaults
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestIDMiddleware())
	if dep.RateLimitRPS > 0 {
		r.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	var cache *rankrepo.ResultCache
	if dep.Redis != nil {
		cache = rankrepo.NewResultCache(dep.Redis, dep.CacheTTL)
	}

	routes.RegisterV1(r, routes.V1Deps{
		Store:    dep.Store,
		Cache:    cache,
		Defaults: dep.Defaults,
	})

	return r
}
