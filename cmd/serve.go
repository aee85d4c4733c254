package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/llm"
	"VitaMe/router"
	"VitaMe/serve/daily"
	"VitaMe/serve/monitoring"
	"VitaMe/serve/reading"
)

// shutdownTimeout 收到退出信号后等待在途请求的上限
const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start all services",
	Long:  `The serve command starts the reading, daily and monitoring HTTP services.`,
	Run: func(cmd *cobra.Command, args []string) {
		if debug {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// 初始化地基模块（顺序不能改变）
		cmn.InitLogger(debug)
		defer cmn.SyncLogger()
		cmn.InitConfig()
		if viper.GetBool("monitoring.enable") {
			cmn.InitDB()
		}
		logger := cmn.GetLogger()

		// 初始化公共模块
		llm.Init()

		// 初始化服务模块
		reading.Init()
		daily.Init()
		monitoring.Init(ctx)

		cmn.MiniLogger.Info("[ YES ] all modules initialed", zap.String("version", cmn.Version))

		// 全局唯一的 Gin 实例
		r := gin.New()
		r.Use(gin.Logger())
		r.Use(gin.Recovery())

		// 引入模块化路由
		router.InitRoutes(r)

		host := viper.GetString("server.host")
		port := viper.GetString("server.port")

		srv := &http.Server{Addr: host + ":" + port, Handler: r}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server failed", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
