package wealth

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/bazi"
)

const (
	nativeBase      = 10
	nativeMax       = 60
	nativePattern   = 50
	perDirectStem   = 10
	perIndirect     = 15
	perPrimary      = 20
	perSecondary    = 8
	wealthFlowBonus = 15

	yearlyMax = 40
	totalMin  = 40
	totalMax  = 99
)

// Report 财运报告
type Report struct {
	UserProfile Profile `json:"user_profile"`
	Modules     Modules `json:"modules"`
}

type Profile struct {
	DayMaster     string `json:"day_master"`
	Strength      string `json:"strength"`
	WealthElement string `json:"wealth_element"`
}

type Modules struct {
	Overview Overview    `json:"overview"`
	Radar    []RadarItem `json:"radar"`
	Compass  Compass     `json:"compass"`
}

type Overview struct {
	NativeScore       int     `json:"native_score"`
	BalanceMultiplier float64 `json:"balance_multiplier"`
	YearlyLuckScore   int     `json:"yearly_luck_score"`
	TotalScore        int     `json:"total_score"`
	Tier              string  `json:"tier"`
	TierTag           string  `json:"tier_tag"`
	Bracket           string  `json:"bracket"`
	Comment           string  `json:"comment"`
}

type RadarItem struct {
	Subject  string `json:"subject"`
	Score    int    `json:"score"`
	Analysis string `json:"analysis"`
}

type Compass struct {
	Direction string `json:"direction"`
	Element   string `json:"element"`
	LuckyItem string `json:"lucky_item"`
	ActionSOP string `json:"action_sop"`
}

// Engine 财运评分，配置在构造后只读，可并发使用
type Engine struct {
	referenceYear string
	tiers         []Tier
	logger        *zap.Logger
}

// NewEngine referenceYear 为流年干支，如 "丙午"；tiers 为空时使用默认等级表
func NewEngine(referenceYear string, tiers []Tier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(tiers) == 0 {
		tiers = DefaultTiers
	}
	sorted := append([]Tier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	return &Engine{referenceYear: referenceYear, tiers: sorted, logger: logger}
}

// Evaluate 分析命盘并评分
func (e *Engine) Evaluate(chart bazi.Chart) Report {
	f := Analyze(chart)
	return e.Score(chart.DayMaster, f.Strength, f)
}

// Score 不返回错误：日主无法识别时各项取中性值，强弱未知时系数取 1.0
func (e *Engine) Score(dayMaster string, strength Strength, f Findings) Report {
	day, ok := bazi.StemElement(dayMaster)
	if !ok {
		e.logger.Warn("unknown day master, scoring degraded", zap.String("dayMaster", dayMaster))
		f = Findings{DayMaster: dayMaster}
	}

	native := nativeBase
	multiplier := 1.0
	yearly := 0
	if ok {
		native = nativeScore(f)
		multiplier = balanceMultiplier(strength, f)
		yearly = e.yearlyLuck(day, strength, f.Branches)
	}

	total := cmn.Clamp(int(math.Round(float64(native)*multiplier+float64(yearly))), totalMin, totalMax)
	tier := e.tierOf(total)

	wealthElement := ""
	if ok {
		wealthElement = string(day.Controls())
	}

	return Report{
		UserProfile: Profile{
			DayMaster:     dayMaster,
			Strength:      strength.Label(),
			WealthElement: wealthElement,
		},
		Modules: Modules{
			Overview: Overview{
				NativeScore:       native,
				BalanceMultiplier: multiplier,
				YearlyLuckScore:   yearly,
				TotalScore:        total,
				Tier:              tier.Code,
				TierTag:           tier.Tag,
				Bracket:           tier.Bracket,
				Comment:           tier.Comment,
			},
			Radar:   radar(f),
			Compass: compass(f, strength),
		},
	}
}

func nativeScore(f Findings) int {
	if f.Pattern == PatternFollowStrong || f.Pattern == PatternFollowOutput {
		return nativePattern
	}

	score := nativeBase +
		perDirectStem*f.DirectWealthStems +
		perIndirect*f.IndirectWealthStems +
		perPrimary*f.PrimaryHiddenWealth +
		perSecondary*f.SecondaryHiddenWealth
	if f.WealthFlow {
		score += wealthFlowBonus
	}
	return cmn.Clamp(score, nativeBase, nativeMax)
}

func balanceMultiplier(strength Strength, f Findings) float64 {
	row, ok := multipliers[strength]
	if !ok {
		return 1.0
	}
	return row[f.Abundant()]
}

func (e *Engine) yearlyLuck(day bazi.Element, strength Strength, branches []string) int {
	ref := []rune(e.referenceYear)
	if len(ref) != 2 {
		e.logger.Warn("invalid reference year", zap.String("referenceYear", e.referenceYear))
		return 0
	}
	stemElement, ok := bazi.StemElement(string(ref[0]))
	if !ok {
		e.logger.Warn("invalid reference year stem", zap.String("referenceYear", e.referenceYear))
		return 0
	}
	refBranch := string(ref[1])

	r := yearlyRanges[bazi.RoleOf(day, stemElement)]
	score := r.low
	if favorable[strength][bazi.RoleOf(day, stemElement)] {
		score = r.high
	}

	clash := bazi.ClashOf(refBranch)
	harmony := bazi.HarmonyOf(refBranch)
	for _, b := range branches {
		if b != "" && b == clash {
			score -= clashPenalty
			break
		}
	}
	for _, b := range branches {
		if b != "" && b == harmony {
			score += harmonyReward
			break
		}
	}

	return cmn.Clamp(score, 0, yearlyMax)
}

func (e *Engine) tierOf(total int) Tier {
	tier := e.tiers[0]
	for _, t := range e.tiers {
		if total >= t.Min {
			tier = t
		}
	}
	return tier
}

func componentCount(f Findings, c component) int {
	switch c {
	case compDirectWealth:
		return f.DirectWealthStems + f.PrimaryHiddenWealth
	case compIndirectWealth:
		return f.IndirectWealthStems + f.SecondaryHiddenWealth
	case compOutput:
		return f.roleCount(bazi.RoleOutput)
	case compAuthority:
		return f.roleCount(bazi.RoleAuthority)
	case compResource:
		return f.roleCount(bazi.RoleResource)
	case compCompanion:
		// 不计日主本身
		n := f.roleCount(bazi.RoleCompanion) - 1
		if n < 0 {
			return 0
		}
		return n
	}
	return 0
}

func factor(count int, inverted bool) float64 {
	if inverted {
		return math.Max(factorAbsent, float64(invertedAbsent-invertedStep*count))
	}
	if count == 0 {
		return factorAbsent
	}
	return math.Min(radarMax, float64(factorBase+factorStep*count))
}

func radar(f Findings) []RadarItem {
	out := make([]RadarItem, 0, len(radarTable))
	for _, d := range radarTable {
		pc := componentCount(f, d.primary)
		score := factor(pc, d.inverted)*0.7 + factor(componentCount(f, d.secondary), false)*0.3

		analysis := d.absent
		if pc > 0 {
			analysis = d.present
		}
		out = append(out, RadarItem{
			Subject:  d.subject,
			Score:    cmn.Clamp(int(math.Round(score)), radarMin, radarMax),
			Analysis: analysis,
		})
	}
	return out
}

// compass 命中无财星时取喜用：身强取食伤，身弱取印星；均无法确定时取中宫
func compass(f Findings, strength Strength) Compass {
	el := bazi.Element("")
	if f.DayElement.Valid() {
		el = f.WealthElement
		if f.Counts.Of(el) == 0 {
			switch strength {
			case StrengthStrong:
				el = f.DayElement.Generates()
			case StrengthWeak:
				el = f.DayElement.GeneratedBy()
			default:
				el = ""
			}
		}
	}

	entry, ok := compassTable[el]
	if !ok {
		el = bazi.Earth
		entry = compassTable[el]
	}
	return Compass{
		Direction: entry.Direction,
		Element:   string(el),
		LuckyItem: entry.LuckyItem,
		ActionSOP: entry.ActionSOP,
	}
}
