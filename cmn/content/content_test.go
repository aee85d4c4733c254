package content

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VitaMe/cmn/bazi"
)

func TestDeriveSeedRangeAndDeterminism(t *testing.T) {
	inputs := [][4]int{
		{1990, 5, 15, 12},
		{0, 0, 0, 0},
		{2024, 12, 31, 23},
		{-7, -3, -2, -1},
		{99999, 99, 99, 99},
		{1, 13, 40, 30},
	}
	for _, in := range inputs {
		a := DeriveSeed(in[0], in[1], in[2], in[3])
		b := DeriveSeed(in[0], in[1], in[2], in[3])
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a, 0)
		assert.LessOrEqual(t, a, 999)
	}

	// 1990*1000 + 5*100 + 15*10 + 12 = 1990662
	assert.Equal(t, 662, DeriveSeed(1990, 5, 15, 12))
	assert.Equal(t, 0, DeriveSeed(0, 0, 0, 0))
}

func TestSelectTemplateAlwaysFromPool(t *testing.T) {
	s := NewSelector()
	for _, c := range []Category{
		CategoryPersonality, CategoryCareer, CategoryWealth,
		CategoryLove, CategoryHealth, CategoryAdvice,
	} {
		pool := s.Templates(c)
		require.NotEmpty(t, pool)
		for seed := -50; seed < 1600; seed++ {
			assert.Contains(t, pool, s.SelectTemplate(seed, c))
		}
	}
	assert.Equal(t, "", s.SelectTemplate(3, Category("unknown")))
}

func TestSelectVariable(t *testing.T) {
	s := NewSelector()
	assert.Equal(t, "初春", s.SelectVariable(0, "season", 0))
	assert.Equal(t, "溪流石畔", s.SelectVariable(0, "nature", 1))
	assert.Equal(t, FallbackValue, s.SelectVariable(5, "no_such_variable", 2))
}

func TestFillReplacesEveryPlaceholder(t *testing.T) {
	s := NewSelector()
	for _, c := range []Category{
		CategoryPersonality, CategoryCareer, CategoryWealth,
		CategoryLove, CategoryHealth, CategoryAdvice,
	} {
		for _, tpl := range s.Templates(c) {
			out := s.Fill(tpl, 123)
			assert.NotContains(t, out, "{", tpl)
			assert.NotContains(t, out, FallbackValue, tpl)
		}
	}
	assert.Equal(t, "a默认b", s.Fill("a{missing}b", 1))
}

func TestEveryPlaceholderHasPool(t *testing.T) {
	for category, templates := range templatePools {
		for _, tpl := range templates {
			for _, m := range placeholderRe.FindAllStringSubmatch(tpl, -1) {
				assert.NotEmpty(t, variablePools[m[1]], "%s: {%s}", category, m[1])
			}
		}
	}
}

func TestSeedZeroScenario(t *testing.T) {
	s := NewSelector()
	expected := "妳的生命底色如同初春的溪流石畔，带有坚韧的气质与创造的内在力量。" +
		"妳擅长在机遇中寻找平衡，内心深处有着感性的感知力。"
	assert.Equal(t, expected, s.Generate(0, CategoryPersonality))

	syn := NewSynthesizer(nil)
	c := syn.Synthesize(bazi.DefaultChart(), BirthForm{})
	assert.Equal(t, expected, c.Personality)
	assert.Equal(t, vitaminPool[0], c.Vitamin)
	assert.Equal(t, colorPool[0], c.LuckyColor)
	assert.Equal(t, "木气充盈，火气待补", c.ElementBalance)
	assert.Equal(t, "今日财运指南", c.Wealth.Title)
	assert.Equal(t, morningPool[0], c.Health.Morning)
	assert.Equal(t, flowPool[0], c.Health.Flow)
	assert.Equal(t, SourceTemplate, c.Source)
}

func TestFilterRemovesEveryPhrase(t *testing.T) {
	f := NewFilter(DefaultFilterRules)
	for _, r := range DefaultFilterRules {
		in := "前文" + r.Pattern + "中间" + r.Pattern + "后文"
		res := f.Apply(in)
		assert.True(t, res.WasModified, r.Pattern)
		assert.NotContains(t, res.Content, r.Pattern)
		assert.Contains(t, res.Content, r.Replacement)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	f := NewFilter(DefaultFilterRules)
	texts := []string{
		"她命硬又克夫，性格刚烈，恐怕孤独终老。",
		"没有任何敏感词的普通文本。",
		"",
		"诸事不顺诸事不顺，贫穷潦倒。",
	}
	for _, x := range texts {
		once := f.Apply(x).Content
		twice := f.Apply(once)
		assert.Equal(t, once, twice.Content)
		assert.False(t, twice.WasModified)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	f := NewFilter([]FilterRule{{Pattern: "Bad Luck", Replacement: "challenge"}})
	res := f.Apply("so much BAD LUCK and bad luck")
	assert.Equal(t, "so much challenge and challenge", res.Content)
	assert.True(t, res.WasModified)
}

func TestFilterReachesFixpoint(t *testing.T) {
	// 第一条规则的替换结果会构成第二条规则的短语
	f := NewFilter([]FilterRule{
		{Pattern: "b", Replacement: "x"},
		{Pattern: "ax", Replacement: "b"},
	})
	res := f.Apply("ab")
	assert.NotContains(t, strings.ToLower(res.Content), "b")
	assert.Equal(t, res.Content, f.Apply(res.Content).Content)
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	syn := NewSynthesizer(nil)
	chart := bazi.DefaultChart()
	form := BirthForm{Year: 1990, Month: 5, Day: 15, Hour: 12}

	a, err := json.Marshal(syn.Synthesize(chart, form))
	require.NoError(t, err)
	b, err := json.Marshal(syn.Synthesize(chart, form))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSynthesizeFillsEveryField(t *testing.T) {
	syn := NewSynthesizer(nil)
	for seed := 0; seed < 60; seed++ {
		c := syn.Synthesize(bazi.DefaultChart(), BirthForm{Year: seed})
		assert.NotEmpty(t, c.Personality)
		assert.NotEmpty(t, c.Career)
		assert.NotEmpty(t, c.Love)
		assert.NotEmpty(t, c.Advice)
		assert.NotEmpty(t, c.Wealth.Advice)
		assert.NotEmpty(t, c.Health.Summary)
		assert.NotEmpty(t, c.Health.Morning.Action)
		assert.NotEmpty(t, c.Health.Flow.Action)
		assert.Contains(t, c.ElementBalance, "气")
	}
}

func TestFilterContent(t *testing.T) {
	f := NewFilter(DefaultFilterRules)
	c := DefaultContent()
	c.Personality = "命硬之人"
	c.Health.Flow.Benefit = "避免一生劳碌"

	assert.True(t, f.FilterContent(&c))
	assert.True(t, c.HasFiltered)
	assert.Equal(t, "性格坚强独立之人", c.Personality)
	assert.Equal(t, "避免勤劳努力，收获满满", c.Health.Flow.Benefit)

	clean := DefaultContent()
	assert.False(t, f.FilterContent(&clean))
	assert.False(t, clean.HasFiltered)
}
