package monitoring

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"VitaMe/cmn"
)

var ErrNotFound = errors.New("snapshot not found")

// Store 监控快照存储
type Store interface {
	Save(ctx context.Context, s *cmn.TMonitoringSnapshot) error
	// List 按创建时间倒序，不含原始数据
	List(ctx context.Context, limit int) ([]cmn.TMonitoringSnapshot, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*cmn.TMonitoringSnapshot, error)
	Clear(ctx context.Context) (int64, error)
	// DeleteBefore 删除 created_at 早于 ms 的快照
	DeleteBefore(ctx context.Context, ms int64) (int64, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (g *gormStore) Save(ctx context.Context, s *cmn.TMonitoringSnapshot) error {
	return g.db.WithContext(ctx).Create(s).Error
}

func (g *gormStore) List(ctx context.Context, limit int) ([]cmn.TMonitoringSnapshot, int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&cmn.TMonitoringSnapshot{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []cmn.TMonitoringSnapshot
	err = g.db.WithContext(ctx).
		Omit("payload").
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (g *gormStore) Get(ctx context.Context, id uuid.UUID) (*cmn.TMonitoringSnapshot, error) {
	var row cmn.TMonitoringSnapshot
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (g *gormStore) Clear(ctx context.Context) (int64, error) {
	res := g.db.WithContext(ctx).Where("1 = 1").Delete(&cmn.TMonitoringSnapshot{})
	return res.RowsAffected, res.Error
}

func (g *gormStore) DeleteBefore(ctx context.Context, ms int64) (int64, error) {
	res := g.db.WithContext(ctx).Where("created_at < ?", ms).Delete(&cmn.TMonitoringSnapshot{})
	return res.RowsAffected, res.Error
}
