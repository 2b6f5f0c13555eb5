package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/jrandrade/datastore-gateway/http/controller"
)

type Middlewares struct {
	CORSMiddleware      gin.HandlerFunc
	RequestIDMiddleware gin.HandlerFunc
	MetricsMiddleware   gin.HandlerFunc
	UploadLimit         gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	return &Middlewares{
		CORSMiddleware:      CORSMiddleware(),
		RequestIDMiddleware: RequestIDMiddleware(),
		MetricsMiddleware:   MetricsMiddleware(),
		UploadLimit:         UploadLimitMiddleware(ctrl.Config.EnvConfig.Upload.MaxBytes),
	}, nil
}
