package monitoring

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"VitaMe/cmn"
)

const serviceName = "vita-me-monitoring"

var (
	z       = zap.NewNop()
	enable  bool
	service *Service
)

// Init 需在 cmn.InitDB 之后调用；未启用时只提供健康检查。ctx 结束时清理任务退出
func Init(ctx context.Context) {
	z = cmn.GetLogger()

	enable = viper.GetBool("monitoring.enable")
	if !enable {
		cmn.MiniLogger.Info("[ -- ] monitoring module disabled")
		return
	}
	if cmn.GormDB == nil {
		z.Fatal("[ FAIL ] monitoring enabled but db not initialed")
	}

	service = NewService(NewGormStore(cmn.GormDB), viper.GetInt("monitoring.maxBytes"), z)

	retentionDays := viper.GetInt("monitoring.retentionDays")
	if retentionDays > 0 {
		loc, err := time.LoadLocation(viper.GetString("dbms.timeZone"))
		if err != nil {
			z.Warn("invalid dbms.timeZone, pruning on local time", zap.Error(err))
			loc = time.Local
		}
		go pruneMaintainer(ctx, service, time.Duration(retentionDays)*24*time.Hour, loc)
	}

	cmn.MiniLogger.Info("[ OK ] monitoring module initialed", zap.Int("retentionDays", retentionDays))
}

// Enabled 是否注册监控存储路由
func Enabled() bool {
	return enable
}
