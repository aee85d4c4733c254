package cmn

import (
	"encoding/json"

	"github.com/jmoiron/sqlx/types"
)

// 响应状态码
const (
	StatusOK         = 0
	StatusBadRequest = 1
	StatusSuperseded = 2
	StatusLimited    = 429
	StatusFailure    = -1
)

type ReqProto struct {
	Action string `json:"action,omitempty"`

	// ClientId 同一客户端的新请求会使旧请求的结果失效
	ClientId string `json:"clientId,omitempty"`

	Data json.RawMessage `json:"data,omitempty"`
}

type ReplyProto struct {
	//Status, 0: success, others: fault
	Status int `json:"status"`

	//Msg, Action result describe by literal
	Msg string `json:"msg,omitempty"`

	//Data, operand
	Data types.JSONText `json:"data,omitempty"`

	// RowCount, just row count
	RowCount int64 `json:"rowCount,omitempty"`

	// RequestKey, key issued for this request
	RequestKey string `json:"requestKey,omitempty"`
}

// NewReply 序列化 data 并构造响应，序列化失败时返回失败响应
func NewReply(status int, msg string, data any) ReplyProto {
	if data == nil {
		return ReplyProto{Status: status, Msg: msg}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to marshal reply data")
		return ReplyProto{Status: StatusFailure, Msg: "响应数据序列化失败"}
	}

	return ReplyProto{Status: status, Msg: msg, Data: raw}
}
