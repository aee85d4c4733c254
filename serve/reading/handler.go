package reading

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/apperr"
)

const (
	ActionChart     = "chart"
	ActionCompose   = "compose"
	ActionInterpret = "interpret"
	ActionWealth    = "wealth"
)

type Handler interface {
	HandleReading(c *gin.Context)
}

type handler struct {
	svc      *Service
	validate *validator.Validate
}

// NewHandler 使用 Init 构造的服务
func NewHandler() Handler {
	return NewHandlerWithService(service)
}

func NewHandlerWithService(svc *Service) Handler {
	return &handler{svc: svc, validate: validator.New()}
}

// HandleReading 按 action 分发：chart, compose, interpret, wealth
func (h *handler) HandleReading(c *gin.Context) {
	var req cmn.ReqProto
	err := c.ShouldBindJSON(&req)
	if err != nil {
		z.Error("failed to bind request JSON", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "请求体结构错误",
		})
		return
	}

	var in BirthInput
	if len(req.Data) > 0 {
		err = json.Unmarshal(req.Data, &in)
	}
	if err == nil {
		err = h.validate.Struct(in)
	}
	if err != nil {
		z.Error("invalid request data", zap.String("action", req.Action), zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "请求体数据错误",
		})
		return
	}

	switch req.Action {
	case ActionChart:
		c.JSON(http.StatusOK, cmn.NewReply(cmn.StatusOK, "success", h.svc.Chart(in)))

	case ActionCompose:
		c.JSON(http.StatusOK, cmn.NewReply(cmn.StatusOK, "success", h.svc.Compose(in)))

	case ActionWealth:
		c.JSON(http.StatusOK, cmn.NewReply(cmn.StatusOK, "success", h.svc.Wealth(in)))

	case ActionInterpret:
		reading, key, err := h.svc.Interpret(c.Request.Context(), req.ClientId, in)
		if err != nil {
			reply := replyForError(err)
			reply.RequestKey = key
			c.JSON(http.StatusOK, reply)
			return
		}
		reply := cmn.NewReply(cmn.StatusOK, "success", reading)
		reply.RequestKey = key
		c.JSON(http.StatusOK, reply)

	default:
		z.Warn("unsupported action", zap.String("action", req.Action))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "不支持的操作: " + req.Action,
		})
	}
}

func replyForError(err error) cmn.ReplyProto {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) && appErr.Code == apperr.CodeSuperseded {
		return cmn.ReplyProto{Status: cmn.StatusSuperseded, Msg: appErr.Message}
	}
	z.Error("reading failed", zap.Error(err))
	return cmn.ReplyProto{Status: cmn.StatusFailure, Msg: "解读失败"}
}
