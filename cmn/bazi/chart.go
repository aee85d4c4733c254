// Package bazi 定义八字命盘及其推导
package bazi

import (
	"strings"
)

// Chart 八字命盘，由外部历法库推导，推导后不再修改
type Chart struct {
	Year      string   `json:"year"`
	Month     string   `json:"month"`
	Day       string   `json:"day"`
	Hour      string   `json:"hour"`
	WuXing    []string `json:"wuxing"`    // 每柱两个字的五行，共四组
	DayMaster string   `json:"dayMaster"` // 日柱天干
}

// BirthForm 出生时间的整数表示，仅用于计算种子
type BirthForm struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	Hour  int `json:"hour"`
}

// ElementCount 五行计数
type ElementCount struct {
	Wood  int `json:"wood"`
	Fire  int `json:"fire"`
	Earth int `json:"earth"`
	Metal int `json:"metal"`
	Water int `json:"water"`
}

// DefaultChart 推导失败时的兜底命盘
func DefaultChart() Chart {
	return Chart{
		Year:      "甲子",
		Month:     "甲子",
		Day:       "甲子",
		Hour:      "甲子",
		WuXing:    []string{"木水", "木水", "木水", "木水"},
		DayMaster: "甲",
	}
}

// Pillars 年月日时四柱
func (c Chart) Pillars() []string {
	return []string{c.Year, c.Month, c.Day, c.Hour}
}

// Stems 四柱天干，不足两个字的柱返回空串
func (c Chart) Stems() []string {
	out := make([]string, 0, 4)
	for _, p := range c.Pillars() {
		out = append(out, runeAt(p, 0))
	}
	return out
}

// Branches 四柱地支
func (c Chart) Branches() []string {
	out := make([]string, 0, 4)
	for _, p := range c.Pillars() {
		out = append(out, runeAt(p, 1))
	}
	return out
}

// Composition 逐字展开的五行序列，完整命盘为 8 个字
func (c Chart) Composition() []string {
	out := make([]string, 0, 8)
	for _, pair := range c.WuXing {
		for _, r := range pair {
			out = append(out, string(r))
		}
	}
	return out
}

// Key 命盘的稳定标识，用于缓存
func (c Chart) Key() string {
	return strings.Join(c.Pillars(), "-")
}

// CountElements 统计命盘五行，非五行字符忽略
func CountElements(c Chart) ElementCount {
	var ec ElementCount
	for _, ch := range c.Composition() {
		ec.add(Element(ch))
	}
	return ec
}

// Of 取某五行的计数
func (ec ElementCount) Of(e Element) int {
	switch e {
	case Wood:
		return ec.Wood
	case Fire:
		return ec.Fire
	case Earth:
		return ec.Earth
	case Metal:
		return ec.Metal
	case Water:
		return ec.Water
	}
	return 0
}

// Total 计数总和
func (ec ElementCount) Total() int {
	return ec.Wood + ec.Fire + ec.Earth + ec.Metal + ec.Water
}

func (ec *ElementCount) add(e Element) {
	switch e {
	case Wood:
		ec.Wood++
	case Fire:
		ec.Fire++
	case Earth:
		ec.Earth++
	case Metal:
		ec.Metal++
	case Water:
		ec.Water++
	}
}

func runeAt(s string, i int) string {
	rs := []rune(s)
	if i >= len(rs) {
		return ""
	}
	return string(rs[i])
}
