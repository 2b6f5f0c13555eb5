package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jrandrade/datastore-gateway/http/controller"
	middlewares "github.com/jrandrade/datastore-gateway/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.New()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(gin.Recovery())
	r.Use(middles.CORSMiddleware)
	r.Use(middles.RequestIDMiddleware)
	r.Use(middles.MetricsMiddleware)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/mongodb/testar-conexao", ctrl.TestMongoConnection)
	userRoutes := r.Group("/usuarios")
	{
		userRoutes.POST("", ctrl.CreateUser)
		userRoutes.GET("", ctrl.ListUsers)
		userRoutes.GET("/:id", ctrl.GetUserByID)
		userRoutes.PUT("/:id", ctrl.UpdateUserByID)
		userRoutes.DELETE("/:id", ctrl.DeleteUserByID)
	}

	r.GET("/mysql/testar-conexao", ctrl.TestMySQLConnection)
	productRoutes := r.Group("/produtos")
	{
		productRoutes.POST("", ctrl.CreateProduct)
		productRoutes.GET("", ctrl.ListProducts)
		productRoutes.GET("/:id", ctrl.GetProductByID)
		productRoutes.PUT("/:id", ctrl.UpdateProductByID)
		productRoutes.DELETE("/:id", ctrl.DeleteProductByID)
	}

	bucketRoutes := r.Group("/buckets")
	{
		bucketRoutes.GET("", ctrl.ListBuckets)
		bucketRoutes.GET("/:bucketName", ctrl.ListBucketObjects)
		bucketRoutes.POST("/:bucketName/upload", middles.UploadLimit, ctrl.UploadObject)
		bucketRoutes.DELETE("/:bucketName/file/:fileName", ctrl.DeleteObject)
	}

	return r
}
