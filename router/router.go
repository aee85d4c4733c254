package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"

	"VitaMe/serve/daily"
	"VitaMe/serve/monitoring"
	"VitaMe/serve/reading"
)

// CORS 允许的来源取 server.cors.allowedOrigins，为空时放行全部
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	})
}

// InitRoutes 初始化路由
func InitRoutes(r *gin.Engine) {
	r.Use(CORS(viper.GetStringSlice("server.cors.allowedOrigins")))

	readingHandler := reading.NewHandler()
	dailyHandler := daily.NewHandler()
	monitoringHandler := monitoring.NewHandler()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 路由组 /api
	api := r.Group("/api")
	{
		api.GET("/health", monitoringHandler.HandleHealth) // 健康检查

		limited := api.Group("/")
		limited.Use(reading.RateLimit())
		{
			limited.POST("/reading", readingHandler.HandleReading) // 命盘、模板内容、AI 解读、财运
			limited.POST("/daily", dailyHandler.HandleDaily)       // 每日运势
		}

		if monitoring.Enabled() {
			api.POST("/monitoring", monitoringHandler.HandleUpload)        // 上报监控数据
			api.GET("/monitoring/list", monitoringHandler.HandleList)      // 快照列表
			api.GET("/monitoring/:id", monitoringHandler.HandleGet)        // 单个快照
			api.DELETE("/monitoring/clear", monitoringHandler.HandleClear) // 清空快照
		}
	}
}
