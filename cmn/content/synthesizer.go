package content

import (
	"fmt"

	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/bazi"
	"VitaMe/cmn/metrics"
)

// Synthesizer 由种子组装完整的模板内容，不访问网络，总是成功
type Synthesizer struct {
	selector *Selector
	filter   *Filter
	logger   *zap.Logger
}

func NewSynthesizer(logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{
		selector: NewSelector(),
		filter:   NewFilter(DefaultFilterRules),
		logger:   logger,
	}
}

// Filter 返回合成器使用的过滤器，供 AI 内容复用
func (s *Synthesizer) Filter() *Filter {
	return s.filter
}

// Synthesize 命盘本身不参与选择，只有出生表单的种子决定结果
func (s *Synthesizer) Synthesize(chart bazi.Chart, form BirthForm) GeneratedContent {
	seed := SeedOf(form)
	filtered := false

	gen := func(c Category) string {
		text := s.selector.Generate(seed+Offset(c), c)
		r := s.filter.Apply(text)
		if r.WasModified {
			filtered = true
			metrics.FilterHits.Inc()
		}
		return r.Content
	}

	money := Pick(moneyAdvicePool, seed)
	money.Advice = gen(CategoryWealth)

	healthSeed := seed + Offset(CategoryHealth)
	out := GeneratedContent{
		Personality: gen(CategoryPersonality),
		Career:      gen(CategoryCareer),
		Love:        gen(CategoryLove),
		Wealth:      money,
		Health: Health{
			Summary: gen(CategoryHealth),
			Morning: Pick(morningPool, healthSeed),
			Flow:    Pick(flowPool, healthSeed),
		},
		Advice:         gen(CategoryAdvice),
		Vitamin:        VitaminOf(seed),
		LuckyColor:     Pick(colorPool, seed),
		ElementBalance: ElementBalance(seed),
		Source:         SourceTemplate,
	}
	out.HasFiltered = filtered

	s.logger.Debug("content synthesized",
		zap.String("chart", chart.Key()),
		zap.Int("seed", seed),
		zap.Bool("filtered", filtered))
	return out
}

// VitaminOf 按种子选取今日维生素
func VitaminOf(seed int) string {
	return Pick(vitaminPool, seed)
}

// ElementBalance 形如 "木气充盈，火气待补"
func ElementBalance(seed int) string {
	n := len(balanceElements)
	return fmt.Sprintf("%s气%s，%s气%s",
		balanceElements[cmn.Mod(seed, n)], balanceStates[cmn.Mod(seed, len(balanceStates))],
		balanceElements[cmn.Mod(seed+1, n)], balanceStates[cmn.Mod(seed+2, len(balanceStates))])
}

// FilterContent 对内容的全部文本字段过滤，返回是否有改写
func (f *Filter) FilterContent(c *GeneratedContent) bool {
	modified := false
	apply := func(p *string) {
		if *p == "" {
			return
		}
		r := f.Apply(*p)
		if r.WasModified {
			modified = true
			metrics.FilterHits.Inc()
		}
		*p = r.Content
	}

	for _, p := range []*string{
		&c.Personality, &c.Career, &c.Love, &c.Advice,
		&c.Vitamin, &c.LuckyColor, &c.ElementBalance,
		&c.Wealth.Title, &c.Wealth.Advice, &c.Wealth.LuckyDirection,
		&c.Wealth.LuckyTime, &c.Wealth.Suggestion,
		&c.Health.Summary,
		&c.Health.Morning.Action, &c.Health.Morning.Benefit,
		&c.Health.Flow.Action, &c.Health.Flow.Benefit,
	} {
		apply(p)
	}
	if modified {
		c.HasFiltered = true
	}
	return modified
}
