package cmn

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TMonitoringSnapshotName = "t_monitoring_snapshot" // 前端监控快照表
)

// TMonitoringSnapshot 前端上报的监控快照，只保存遥测数据，不保存命盘
type TMonitoringSnapshot struct {
	Id           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;not null;unique;index" json:"id"`            // 快照ID
	Sessions     int            `gorm:"column:sessions;type:int;not null;default:0" json:"sessions"`               // 会话数
	PageViews    int            `gorm:"column:page_views;type:int;not null;default:0" json:"pageViews"`            // 总页面浏览
	UploadSource string         `gorm:"column:upload_source;type:varchar(50)" json:"uploadSource"`                 // 上传来源
	Size         int            `gorm:"column:size;type:int;not null;default:0" json:"size"`                       // 原始数据字节数
	Payload      datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload,omitempty"`                        // 原始数据
	CreatedAt    int64          `gorm:"column:created_at;type:bigint;autoCreateTime:milli;index" json:"createdAt"` // 创建时间
}

func (TMonitoringSnapshot) TableName() string {
	return TMonitoringSnapshotName
}
