package monitoring

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/apperr"
)

type Handler interface {
	HandleHealth(c *gin.Context)
	HandleUpload(c *gin.Context)
	HandleList(c *gin.Context)
	HandleGet(c *gin.Context)
	HandleClear(c *gin.Context)
}

type handler struct {
	svc *Service
	now func() time.Time
}

func NewHandler() Handler {
	return NewHandlerWithService(service)
}

func NewHandlerWithService(svc *Service) Handler {
	return &handler{svc: svc, now: time.Now}
}

type health struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Service    string `json:"service"`
	Version    string `json:"version"`
	Monitoring bool   `json:"monitoring"`
}

// HandleHealth 健康检查，不依赖数据库
func (h *handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, cmn.NewReply(cmn.StatusOK, "success", health{
		Status:     "ok",
		Timestamp:  h.now().UTC().Format(time.RFC3339),
		Service:    serviceName,
		Version:    cmn.Version,
		Monitoring: h.svc != nil,
	}))
}

// HandleUpload 接收前端上报的监控数据
func (h *handler) HandleUpload(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		z.Error("failed to read request body", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "读取请求体失败",
		})
		return
	}

	snap, err := h.svc.Ingest(c.Request.Context(), raw)
	if err != nil {
		c.JSON(http.StatusOK, replyForError(err))
		return
	}

	snap.Payload = nil
	c.JSON(http.StatusOK, cmn.NewReply(cmn.StatusOK, "监控数据接收成功", snap))
}

// HandleList 快照列表，?limit= 默认 50
func (h *handler) HandleList(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			z.Error("invalid limit", zap.String("limit", s), zap.Error(err))
			c.JSON(http.StatusOK, cmn.ReplyProto{
				Status: cmn.StatusBadRequest,
				Msg:    "limit 参数无效，无法转换为整数",
			})
			return
		}
		limit = v
	}

	rows, total, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusOK, replyForError(err))
		return
	}

	reply := cmn.NewReply(cmn.StatusOK, "success", rows)
	reply.RowCount = total
	c.JSON(http.StatusOK, reply)
}

// HandleGet 单个快照，含原始数据
func (h *handler) HandleGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		z.Error("invalid snapshot id", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "id 参数无效",
		})
		return
	}

	snap, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "监控数据不存在",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusOK, replyForError(err))
		return
	}

	c.JSON(http.StatusOK, cmn.NewReply(cmn.StatusOK, "success", snap))
}

// HandleClear 清空全部快照
func (h *handler) HandleClear(c *gin.Context) {
	n, err := h.svc.Clear(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, replyForError(err))
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status:   cmn.StatusOK,
		Msg:      "已清空监控数据",
		RowCount: n,
	})
}

func replyForError(err error) cmn.ReplyProto {
	appErr := apperr.As(err)
	if appErr.Code == apperr.CodeInvalidParam {
		z.Warn("invalid monitoring data", zap.Error(err))
		return cmn.ReplyProto{Status: cmn.StatusBadRequest, Msg: appErr.Message}
	}
	z.Error("monitoring request failed", zap.Error(err))
	return cmn.ReplyProto{Status: cmn.StatusFailure, Msg: appErr.Message}
}
