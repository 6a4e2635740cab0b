package routes

import (
	"github.com/gin-gonic/gin"

	rankhttp "github.com/netrank-labs/netrank-backend/internal/linkanalysis/http"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/repository"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/service"
	nethttp "github.com/netrank-labs/netrank-backend/internal/networks/http"
	netrepo "github.com/netrank-labs/netrank-backend/internal/networks/repository"
)

type V1Deps struct {
	Store    *netrepo.Store
	Cache    *repository.ResultCache
	Defaults rankhttp.Defaults
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	analysisService := service.NewAnalysisService(dep.Cache)

	networkHandler := nethttp.NewHandler(dep.Store)
	networkHandler.Register(api)

	algorithmHandler := rankhttp.NewHandler(analysisService, dep.Store, dep.Defaults)
	algorithmHandler.Register(api)
}
