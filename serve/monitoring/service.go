package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"VitaMe/cmn"
	"VitaMe/cmn/apperr"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// upload 前端上报数据中用于汇总的字段，其余字段原样保存
type upload struct {
	Sessions   []json.RawMessage `json:"sessions"`
	Statistics struct {
		TotalPageViews int `json:"totalPageViews"`
	} `json:"statistics"`
	Metadata struct {
		UploadSource string `json:"uploadSource"`
	} `json:"metadata"`
}

type Service struct {
	store    Store
	maxBytes int
	logger   *zap.Logger
}

func NewService(store Store, maxBytes int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, maxBytes: maxBytes, logger: logger}
}

// Ingest 校验并保存一次上报
func (s *Service) Ingest(ctx context.Context, raw []byte) (*cmn.TMonitoringSnapshot, error) {
	if s.maxBytes > 0 && len(raw) > s.maxBytes {
		return nil, apperr.New(apperr.CodeInvalidParam, "监控数据过大").
			WithDetail(fmt.Sprintf("%d > %d bytes", len(raw), s.maxBytes))
	}

	var u upload
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil, apperr.New(apperr.CodeInvalidParam, "监控数据不是合法的 JSON 对象")
	}
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInvalidParam, "监控数据不是合法的 JSON 对象")
	}

	snap := &cmn.TMonitoringSnapshot{
		Id:           uuid.New(),
		Sessions:     len(u.Sessions),
		PageViews:    u.Statistics.TotalPageViews,
		UploadSource: u.Metadata.UploadSource,
		Size:         len(raw),
		Payload:      datatypes.JSON(raw),
	}
	if snap.UploadSource == "" {
		snap.UploadSource = "unknown"
	}

	if err := s.store.Save(ctx, snap); err != nil {
		s.logger.Error("failed to save monitoring snapshot", zap.Error(err))
		return nil, apperr.Wrap(err, apperr.CodeStorage, "保存监控数据失败")
	}

	s.logger.Info("monitoring snapshot received",
		zap.String("id", snap.Id.String()),
		zap.Int("sessions", snap.Sessions),
		zap.Int("pageViews", snap.PageViews),
		zap.String("uploadSource", snap.UploadSource))
	return snap, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]cmn.TMonitoringSnapshot, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = cmn.Clamp(limit, 1, maxListLimit)

	rows, total, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, 0, apperr.Wrap(err, apperr.CodeStorage, "查询监控数据失败")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*cmn.TMonitoringSnapshot, error) {
	row, err := s.store.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, apperr.Wrap(err, apperr.CodeStorage, "读取监控数据失败")
	}
	return row, err
}

func (s *Service) Clear(ctx context.Context) (int64, error) {
	n, err := s.store.Clear(ctx)
	if err != nil {
		return 0, apperr.Wrap(err, apperr.CodeStorage, "清空监控数据失败")
	}
	s.logger.Info("monitoring snapshots cleared", zap.Int64("count", n))
	return n, nil
}

// Prune 删除 now 之前超过保留期的快照
func (s *Service) Prune(ctx context.Context, now time.Time, retention time.Duration) (int64, error) {
	n, err := s.store.DeleteBefore(ctx, now.Add(-retention).UnixMilli())
	if err != nil {
		return 0, apperr.Wrap(err, apperr.CodeStorage, "清理过期监控数据失败")
	}
	if n > 0 {
		s.logger.Info("expired monitoring snapshots pruned", zap.Int64("count", n), zap.Duration("retention", retention))
	}
	return n, nil
}
