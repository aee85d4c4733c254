package monitoring

import (
	"context"
	"time"

	"go.uber.org/zap"

	"VitaMe/cmn"
)

// pruneHour 每天清理过期快照的时刻
const pruneHour = 3

// pruneMaintainer 每天 03:00 清理超过保留期的快照，ctx 取消后退出
func pruneMaintainer(ctx context.Context, svc *Service, retention time.Duration, loc *time.Location) {
	for {
		duration := cmn.UntilNext(time.Now().In(loc), pruneHour, 0)
		z.Info("pruneMaintainer sleep until next target time", zap.Duration("duration", duration))

		timer := time.NewTimer(duration)
		select {
		case <-ctx.Done():
			z.Info("pruneMaintainer stopped")
			timer.Stop()
			return
		case <-timer.C:
			if _, err := svc.Prune(ctx, time.Now(), retention); err != nil {
				z.Error("failed to prune monitoring snapshots", zap.Error(err))
			}
		}
	}
}
