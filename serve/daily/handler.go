package daily

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/bazi"
)

const ActionToday = "today"

type Handler interface {
	HandleDaily(c *gin.Context)
}

type handler struct {
	teller *Teller
	now    func() time.Time
}

func NewHandler() Handler {
	return NewHandlerWithTeller(teller)
}

func NewHandlerWithTeller(t *Teller) Handler {
	return &handler{teller: t, now: time.Now}
}

type todayReq struct {
	Date string `json:"date"`
	Time string `json:"time"`

	// Day 指定查询日期 YYYY-MM-DD，为空时取服务器当天
	Day string `json:"day"`
}

// HandleDaily 每日运势
func (h *handler) HandleDaily(c *gin.Context) {
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

	if req.Action != ActionToday {
		z.Warn("unsupported action", zap.String("action", req.Action))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "不支持的操作: " + req.Action,
		})
		return
	}

	var data todayReq
	if len(req.Data) > 0 {
		err = json.Unmarshal(req.Data, &data)
	}
	if err != nil || data.Date == "" {
		z.Error("invalid request data", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: cmn.StatusBadRequest,
			Msg:    "请求体数据错误",
		})
		return
	}

	day := h.now()
	if data.Day != "" {
		day, err = time.ParseInLocation(dateLayout, data.Day, time.Local)
		if err != nil {
			z.Error("invalid day", zap.String("day", data.Day), zap.Error(err))
			c.JSON(http.StatusOK, cmn.ReplyProto{
				Status: cmn.StatusBadRequest,
				Msg:    "日期格式应为 YYYY-MM-DD",
			})
			return
		}
	}

	fortune := h.teller.Today(bazi.FormFromInput(data.Date, data.Time), day)
	c.JSON(http.StatusOK, cmn.NewReply(cmn.StatusOK, "success", fortune))
}
