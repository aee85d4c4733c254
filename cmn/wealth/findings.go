// Package wealth 由命盘规则计算财运报告
package wealth

import (
	"VitaMe/cmn/bazi"
)

// Strength 日主强弱
type Strength string

const (
	StrengthStrong  Strength = "strong"
	StrengthWeak    Strength = "weak"
	StrengthUnknown Strength = ""
)

// Label 中文描述
func (s Strength) Label() string {
	switch s {
	case StrengthStrong:
		return "身强"
	case StrengthWeak:
		return "身弱"
	}
	return "未知"
}

// 特殊格局
const (
	PatternNone         = ""
	PatternFollowStrong = "从旺"
	PatternFollowOutput = "从儿"
)

const (
	strongSupport       = 4
	followStrongSupport = 7
	followOutputCount   = 4
)

// Findings 从命盘中提取的财运相关要素
type Findings struct {
	DayMaster     string       `json:"day_master"`
	DayElement    bazi.Element `json:"day_element"`
	WealthElement bazi.Element `json:"wealth_element"`

	// 年月时三柱的透干财星，正财与日主阴阳相异，偏财相同
	DirectWealthStems   int `json:"direct_wealth_stems"`
	IndirectWealthStems int `json:"indirect_wealth_stems"`

	// 地支藏干中的财星，本气与中余气分开计数
	PrimaryHiddenWealth   int `json:"primary_hidden_wealth"`
	SecondaryHiddenWealth int `json:"secondary_hidden_wealth"`

	HasOutput    bool `json:"has_output"`
	HasAuthority bool `json:"has_authority"`
	HasResource  bool `json:"has_resource"`
	HasCompanion bool `json:"has_companion"`

	// WealthFlow 财星与食伤或官杀同见
	WealthFlow bool   `json:"wealth_flow"`
	Pattern    string `json:"pattern,omitempty"`

	Strength Strength          `json:"strength"`
	Branches []string          `json:"branches"`
	Counts   bazi.ElementCount `json:"counts"`
}

// Abundant 财星充足：透干财星与本气藏财合计不少于两个
func (f Findings) Abundant() bool {
	return f.DirectWealthStems+f.IndirectWealthStems+f.PrimaryHiddenWealth >= 2
}

// roleCount 某十神大类在八字中的五行计数
func (f Findings) roleCount(r Role) int {
	if !f.DayElement.Valid() {
		return 0
	}
	return f.Counts.Of(elementOf(f.DayElement, r))
}

// Role 复用 bazi 的十神大类
type Role = bazi.Role

func elementOf(day bazi.Element, r Role) bazi.Element {
	switch r {
	case bazi.RoleCompanion:
		return day
	case bazi.RoleOutput:
		return day.Generates()
	case bazi.RoleWealth:
		return day.Controls()
	case bazi.RoleAuthority:
		return day.ControlledBy()
	case bazi.RoleResource:
		return day.GeneratedBy()
	}
	return ""
}

// Analyze 从命盘提取要素，日主不是合法天干时返回空要素
func Analyze(chart bazi.Chart) Findings {
	f := Findings{
		DayMaster: chart.DayMaster,
		Branches:  chart.Branches(),
		Counts:    bazi.CountElements(chart),
	}

	day, ok := bazi.StemElement(chart.DayMaster)
	if !ok {
		return f
	}
	f.DayElement = day
	f.WealthElement = day.Controls()
	dayYang := bazi.StemYang(chart.DayMaster)

	stems := chart.Stems()
	for i, stem := range stems {
		// 日干即日主本身
		if i == 2 {
			continue
		}
		el, ok := bazi.StemElement(stem)
		if !ok || el != f.WealthElement {
			continue
		}
		if bazi.StemYang(stem) == dayYang {
			f.IndirectWealthStems++
		} else {
			f.DirectWealthStems++
		}
	}

	for _, branch := range f.Branches {
		for i, hidden := range bazi.HiddenStems(branch) {
			el, _ := bazi.StemElement(hidden)
			if el != f.WealthElement {
				continue
			}
			if i == 0 {
				f.PrimaryHiddenWealth++
			} else {
				f.SecondaryHiddenWealth++
			}
		}
	}

	output := f.roleCount(bazi.RoleOutput)
	resource := f.roleCount(bazi.RoleResource)
	companion := f.roleCount(bazi.RoleCompanion)

	f.HasOutput = output > 0
	f.HasAuthority = f.roleCount(bazi.RoleAuthority) > 0
	f.HasResource = resource > 0
	// 日主自身占一个
	f.HasCompanion = companion > 1
	f.WealthFlow = f.roleCount(bazi.RoleWealth) > 0 && (f.HasOutput || f.HasAuthority)

	support := companion + resource
	if support >= strongSupport {
		f.Strength = StrengthStrong
	} else {
		f.Strength = StrengthWeak
	}

	switch {
	case support >= followStrongSupport:
		f.Pattern = PatternFollowStrong
	case output >= followOutputCount && resource == 0 && companion <= 1:
		f.Pattern = PatternFollowOutput
	}

	return f
}
