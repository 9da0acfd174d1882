package router

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"opencsg.com/github-team-membership/api/handler"
	"opencsg.com/github-team-membership/api/middleware"
	"opencsg.com/github-team-membership/builder/instrumentation"
	bldprometheus "opencsg.com/github-team-membership/builder/prometheus"
	"opencsg.com/github-team-membership/common/config"
)

func NewRouter(config *config.Config) (*gin.Engine, error) {
	membershipHandler, err := handler.NewMembershipHandler(config)
	if err != nil {
		return nil, fmt.Errorf("error creating membership handler:%w", err)
	}
	return newRouter(config, membershipHandler), nil
}

func newRouter(config *config.Config, membershipHandler *handler.MembershipHandler) *gin.Engine {
	r := gin.New()
	instrumentation.SetupOtelMiddleware(r, config)
	r.Use(middleware.Request())
	r.Use(middleware.Recovery())
	r.Use(middleware.Log())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if config.APIServer.EnablePprof {
		debugGroup := r.Group("/debug")
		pprof.RouteRegister(debugGroup, "pprof")
	}
	if config.Metrics.Enable {
		bldprometheus.InitMetrics()
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	apiGroup := r.Group("/api/v1")
	{
		apiGroup.POST("/membership/:action", membershipHandler.Invoke)
	}
	return r
}
