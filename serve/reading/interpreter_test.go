package reading

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VitaMe/cmn/bazi"
	"VitaMe/cmn/content"
	"VitaMe/cmn/llm"
)

const validResponse = `{
  "personality": "妳性格温和，命硬而坚定",
  "career": "适合创意行业",
  "love": "真诚相待",
  "advice": "今日宜整理",
  "luckyColor": "薄雾蓝",
  "vitamin": "多巴胺森林漫步",
  "elementBalance": "木气充盈",
  "wealth": {"title": "财运指南", "advice": "稳健理财", "luckyDirection": "东南方", "luckyTime": "14:00-16:00", "suggestion": "定投"},
  "health": {"morning": {"action": "喝茶", "benefit": "醒脾"}, "flow": {"action": "冥想", "benefit": "专注"}}
}`

// fakeLLM 按顺序返回预设内容，并像真实服务一样执行 accept
type fakeLLM struct {
	responses []string
	err       error
	calls     int32
}

func (f *fakeLLM) Chat(_ context.Context, _ string, accept llm.AcceptFunc) (string, error) {
	n := int(atomic.AddInt32(&f.calls, 1)) - 1
	if f.err != nil {
		return "", f.err
	}
	out := f.responses[n%len(f.responses)]
	if accept != nil {
		if err := accept(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (f *fakeLLM) Model() string { return "fake-model" }

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```JSON\n{\"a\":1}```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`好的，结果如下：{"a":{"b":2}} 希望对妳有帮助 {"c":3}`, `{"a":{"b":2}}`},
		{`{"a":"含有}括号{的字符串"}`, `{"a":"含有}括号{的字符串"}`},
		{`{"a":"转义\"}"}`, `{"a":"转义\"}"}`},
	}
	for _, tc := range cases {
		got, err := ExtractJSON(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "no json here", `{"a":1`} {
		_, err := ExtractJSON(in)
		assert.ErrorIs(t, err, ErrNoJSON, in)
	}
}

func TestInterpretValidResponse(t *testing.T) {
	fake := &fakeLLM{responses: []string{"```json\n" + validResponse + "\n```"}}
	in := NewInterpreter(fake, nil, nil)

	c, err := in.Interpret(context.Background(), bazi.DefaultChart(), content.BirthForm{Year: 1990})
	require.NoError(t, err)
	assert.Equal(t, content.SourceAI, c.Source)
	assert.Equal(t, "fake-model", c.Model)
	assert.Equal(t, "适合创意行业", c.Career)
	assert.Equal(t, "财运指南", c.Wealth.Title)
	assert.Equal(t, "冥想", c.Health.Flow.Action)

	// 模型输出同样经过偏见过滤
	assert.NotContains(t, c.Personality, "命硬")
	assert.Contains(t, c.Personality, "性格坚强独立")
	assert.True(t, c.HasFiltered)
}

func TestInterpretMissingFieldsIsPermanent(t *testing.T) {
	missing := []string{
		`{"career":"x","wealth":{"title":"t","advice":"a"},"health":{"morning":{"action":"m"},"flow":{"action":"f"}}}`,
		`{"personality":"p","wealth":{"title":"t","advice":"a"},"health":{"morning":{"action":"m"},"flow":{"action":"f"}}}`,
		`{"personality":"p","career":"c","wealth":{"advice":"a"},"health":{"morning":{"action":"m"},"flow":{"action":"f"}}}`,
		`{"personality":"p","career":"c","wealth":{"title":"t"},"health":{"morning":{"action":"m"},"flow":{"action":"f"}}}`,
		`{"personality":"p","career":"c","wealth":{"title":"t","advice":"a"},"health":{"flow":{"action":"f"}}}`,
		`{"personality":"p","career":"c","wealth":{"title":"t","advice":"a"},"health":{"morning":{"action":"m"}}}`,
		`{"personality":"p","career":"c","health":{"morning":{"action":"m"},"flow":{"action":"f"}}}`,
	}
	for _, raw := range missing {
		in := NewInterpreter(&fakeLLM{}, nil, nil)
		_, err := in.parse(raw)
		assert.ErrorIs(t, err, ErrSchema, raw)
		assert.True(t, llm.IsPermanent(err), raw)
	}
}

func TestInterpretHealthItemsOnlyNeedPresence(t *testing.T) {
	in := NewInterpreter(&fakeLLM{}, nil, nil)
	env, err := in.parse(`{"personality":"p","career":"c","wealth":{"title":"t","advice":"a"},"health":{"morning":{"benefit":"x"},"flow":{}}}`)
	require.NoError(t, err)
	assert.Empty(t, env.Health.Morning.Action)
	assert.Equal(t, "x", env.Health.Morning.Benefit)
}

func TestInterpretMalformedIsRetryable(t *testing.T) {
	in := NewInterpreter(&fakeLLM{}, nil, nil)
	_, err := in.parse(`{"personality": "unterminated`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchema)

	_, err = in.parse(`{"personality": 1}`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchema)
}

func TestInterpretPropagatesLLMErrors(t *testing.T) {
	in := NewInterpreter(&fakeLLM{err: llm.ErrNotConfigured}, nil, nil)
	_, err := in.Interpret(context.Background(), bazi.DefaultChart(), content.BirthForm{})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestBuildPromptEmbedsChart(t *testing.T) {
	p, err := BuildPrompt(bazi.DefaultChart(), content.BirthForm{Year: 1990, Month: 5, Day: 15, Hour: 12})
	require.NoError(t, err)
	assert.Contains(t, p, "1990年5月15日12时")
	assert.Contains(t, p, `"dayMaster": "甲"`)
	assert.Contains(t, p, `"luckyDirection"`)
}
