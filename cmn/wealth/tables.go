package wealth

import (
	"VitaMe/cmn/bazi"
)

// Tier 财富等级，Min 为进入该等级的最低总分
type Tier struct {
	Code    string `json:"code" mapstructure:"code"`
	Min     int    `json:"min" mapstructure:"min"`
	Tag     string `json:"tag" mapstructure:"tag"`
	Bracket string `json:"bracket" mapstructure:"bracket"`
	Comment string `json:"comment" mapstructure:"comment"`
}

// DefaultTiers 按 Min 升序
var DefaultTiers = []Tier{
	{Code: "C1", Min: 40, Tag: "蓄势待发", Bracket: "10万以下", Comment: "财富能量正在积蓄，稳扎稳打比急于求成更重要。"},
	{Code: "C2", Min: 50, Tag: "稳步积累", Bracket: "10万-50万", Comment: "收入来源逐渐清晰，坚持储蓄习惯会带来可观的复利。"},
	{Code: "B3", Min: 60, Tag: "小有积蓄", Bracket: "50万-100万", Comment: "财务基础已经成形，适合开始系统地规划资产配置。"},
	{Code: "B4", Min: 70, Tag: "财源稳健", Bracket: "100万-500万", Comment: "财运稳健向上，专业能力是妳最可靠的财富引擎。"},
	{Code: "A5", Min: 80, Tag: "富足丰盈", Bracket: "500万-1000万", Comment: "财星有力，机遇与能力兼备，注意守成与分散风险。"},
	{Code: "A6", Min: 88, Tag: "财运亨通", Bracket: "1000万-1亿", Comment: "财路宽广，善用资源整合能让财富加速增长。"},
	{Code: "A7", Min: 95, Tag: "富甲一方", Bracket: "1亿以上", Comment: "命局财气充盈，格局开阔，宜以长期视角经营财富。"},
}

// multipliers 强弱与财星多寡对应的平衡系数
var multipliers = map[Strength]map[bool]float64{
	StrengthStrong: {true: 1.2, false: 0.8},
	StrengthWeak:   {true: 0.6, false: 1.0},
}

type luckRange struct {
	low, high int
}

// yearlyRanges 流年天干相对日主的十神对应的流年分区间
var yearlyRanges = map[bazi.Role]luckRange{
	bazi.RoleWealth:    {30, 40},
	bazi.RoleOutput:    {20, 30},
	bazi.RoleResource:  {20, 30},
	bazi.RoleCompanion: {15, 25},
	bazi.RoleAuthority: {10, 20},
}

// favorable 身强喜克泄耗，身弱喜生扶
var favorable = map[Strength]map[bazi.Role]bool{
	StrengthStrong: {bazi.RoleWealth: true, bazi.RoleOutput: true, bazi.RoleAuthority: true},
	StrengthWeak:   {bazi.RoleResource: true, bazi.RoleCompanion: true},
}

const (
	clashPenalty  = 10
	harmonyReward = 5
)

type component int

const (
	compDirectWealth component = iota
	compIndirectWealth
	compOutput
	compAuthority
	compResource
	compCompanion
)

type radarDimension struct {
	subject   string
	primary   component
	secondary component
	// inverted 主要素越少分越高
	inverted bool
	present  string
	absent   string
}

var radarTable = []radarDimension{
	{
		subject:   "正财收入",
		primary:   compDirectWealth,
		secondary: compAuthority,
		present:   "正财有根，工资与主业收入稳定，踏实深耕就能稳步增长。",
		absent:    "正财不显，主业收入需要靠专业积累慢慢打开局面。",
	},
	{
		subject:   "偏财机遇",
		primary:   compIndirectWealth,
		secondary: compOutput,
		present:   "偏财活跃，副业、奖金与意外之财的机会较多，把握时机即可。",
		absent:    "偏财较弱，不宜追逐短期投机，稳健布局更适合妳。",
	},
	{
		subject:   "守财能力",
		primary:   compCompanion,
		secondary: compAuthority,
		inverted:  true,
		present:   "比劫较多，人情与冲动消费容易分走财气，记账与预算是关键。",
		absent:    "比劫不扰，守财意识强，积累下来的财富不易流失。",
	},
	{
		subject:   "投资眼光",
		primary:   compOutput,
		secondary: compIndirectWealth,
		present:   "食伤生财，眼光敏锐，善于发现被低估的机会。",
		absent:    "食伤不显，投资前多做功课、借助专业意见更稳妥。",
	},
	{
		subject:   "贵人助力",
		primary:   compResource,
		secondary: compAuthority,
		present:   "印星护身，关键时刻常有长辈或前辈提携。",
		absent:    "印星偏弱，主动经营人脉、寻找导师能带来意外助力。",
	},
}

const (
	radarMin = 60
	radarMax = 98

	factorAbsent   = 62
	factorBase     = 80
	factorStep     = 6
	invertedAbsent = 90
	invertedStep   = 8
)

// CompassEntry 财位与开运建议
type CompassEntry struct {
	Direction string `json:"direction"`
	LuckyItem string `json:"lucky_item"`
	ActionSOP string `json:"action_sop"`
}

var compassTable = map[bazi.Element]CompassEntry{
	bazi.Wood: {
		Direction: "东方",
		LuckyItem: "绿植或木质摆件",
		ActionSOP: "在办公桌东侧摆放一盆常绿植物，每周为它换一次水，同时安排一次学习充电。",
	},
	bazi.Fire: {
		Direction: "南方",
		LuckyItem: "红色或暖光饰品",
		ActionSOP: "在南侧点一盏暖光小灯，主动参与一次公开表达或社交活动，让更多人看到妳的能力。",
	},
	bazi.Earth: {
		Direction: "中宫",
		LuckyItem: "陶瓷或黄水晶",
		ActionSOP: "整理居所中央区域保持通透，每月固定一天复盘账目，守住已有的积累。",
	},
	bazi.Metal: {
		Direction: "西方",
		LuckyItem: "金属饰品或白水晶",
		ActionSOP: "在西侧放置金属质感的小物，梳理一次投资组合，果断处理不再需要的支出。",
	},
	bazi.Water: {
		Direction: "北方",
		LuckyItem: "流水摆件或黑曜石",
		ActionSOP: "在北侧放置一小盆清水或流水摆件，多与不同领域的人交流，让信息带来财路。",
	},
}
