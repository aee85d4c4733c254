package reading

import (
	"VitaMe/cmn/bazi"
	"VitaMe/cmn/content"
	"VitaMe/cmn/wealth"
)

// BirthInput 请求中的出生时间，格式非法时退回默认命盘而不是报错
type BirthInput struct {
	Date string `json:"date" validate:"required,max=32"`
	Time string `json:"time" validate:"max=16"`
}

// ChartResult 命盘及五行计数
type ChartResult struct {
	Chart    bazi.Chart        `json:"chart"`
	Form     content.BirthForm `json:"form"`
	Elements bazi.ElementCount `json:"elements"`
	Seed     int               `json:"seed"`

	// Degraded 输入无法解析，使用了默认命盘
	Degraded bool `json:"degraded,omitempty"`
}

// Reading 一次完整解读
type Reading struct {
	ChartResult
	Content *content.GeneratedContent `json:"content,omitempty"`
	Wealth  *wealth.Report            `json:"wealth,omitempty"`

	// 以下仅 AI 解读返回
	State   State   `json:"state,omitempty"`
	Retries int     `json:"retries,omitempty"`
	History []State `json:"history,omitempty"`
}
