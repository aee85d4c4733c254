package reading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"VitaMe/cmn/bazi"
	"VitaMe/cmn/content"
	"VitaMe/cmn/llm"
)

var (
	// ErrSchema JSON 可解析但缺少必要字段，不重试
	ErrSchema = errors.New("ai response missing required fields")

	// ErrNoJSON 响应中找不到 JSON 对象
	ErrNoJSON = errors.New("no json object in ai response")
)

var (
	fenceOpenRe  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```$")
)

type aiItem struct {
	Action  string `json:"action"`
	Benefit string `json:"benefit"`
}

type aiWealth struct {
	Title          string `json:"title" validate:"required"`
	Advice         string `json:"advice" validate:"required"`
	LuckyDirection string `json:"luckyDirection"`
	LuckyTime      string `json:"luckyTime"`
	Suggestion     string `json:"suggestion"`
}

type aiHealth struct {
	Morning *aiItem `json:"morning" validate:"required"`
	Flow    *aiItem `json:"flow" validate:"required"`
}

// aiEnvelope 模型输出的结构，只校验必要字段
type aiEnvelope struct {
	Personality    string    `json:"personality" validate:"required"`
	Career         string    `json:"career" validate:"required"`
	Love           string    `json:"love"`
	Advice         string    `json:"advice"`
	LuckyColor     string    `json:"luckyColor"`
	Vitamin        string    `json:"vitamin"`
	ElementBalance string    `json:"elementBalance"`
	Wealth         *aiWealth `json:"wealth" validate:"required"`
	Health         *aiHealth `json:"health" validate:"required"`
}

func (e aiEnvelope) toContent(model string) content.GeneratedContent {
	return content.GeneratedContent{
		Personality: e.Personality,
		Career:      e.Career,
		Love:        e.Love,
		Wealth: content.Wealth{
			Title:          e.Wealth.Title,
			Advice:         e.Wealth.Advice,
			LuckyDirection: e.Wealth.LuckyDirection,
			LuckyTime:      e.Wealth.LuckyTime,
			Suggestion:     e.Wealth.Suggestion,
		},
		Health: content.Health{
			Morning: content.HealthItem{Action: e.Health.Morning.Action, Benefit: e.Health.Morning.Benefit},
			Flow:    content.HealthItem{Action: e.Health.Flow.Action, Benefit: e.Health.Flow.Benefit},
		},
		Advice:         e.Advice,
		Vitamin:        e.Vitamin,
		LuckyColor:     e.LuckyColor,
		ElementBalance: e.ElementBalance,
		Source:         content.SourceAI,
		Model:          model,
	}
}

// Interpreter 调用大模型生成解读
type Interpreter struct {
	llm      llm.Service
	filter   *content.Filter
	validate *validator.Validate
	logger   *zap.Logger
}

func NewInterpreter(svc llm.Service, filter *content.Filter, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if filter == nil {
		filter = content.NewFilter(content.DefaultFilterRules)
	}
	return &Interpreter{
		llm:      svc,
		filter:   filter,
		validate: validator.New(),
		logger:   logger,
	}
}

// Interpret 解析失败由 llm 层重试，字段校验失败直接返回 ErrSchema
func (in *Interpreter) Interpret(ctx context.Context, chart bazi.Chart, form content.BirthForm) (*content.GeneratedContent, error) {
	prompt, err := BuildPrompt(chart, form)
	if err != nil {
		return nil, err
	}

	var env aiEnvelope
	_, err = in.llm.Chat(ctx, prompt, func(raw string) error {
		parsed, err := in.parse(raw)
		if err != nil {
			return err
		}
		env = *parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := env.toContent(in.llm.Model())
	in.filter.FilterContent(&out)
	return &out, nil
}

// parse 解析失败为可重试错误，校验失败用 llm.Permanent 包装
func (in *Interpreter) parse(raw string) (*aiEnvelope, error) {
	obj, err := ExtractJSON(raw)
	if err != nil {
		in.logger.Warn("ai response has no json object", zap.Int("length", len(raw)))
		return nil, err
	}

	var env aiEnvelope
	if err := json.Unmarshal([]byte(obj), &env); err != nil {
		in.logger.Warn("failed to decode ai response", zap.Error(err))
		return nil, fmt.Errorf("decode ai response: %w", err)
	}

	if err := in.validate.Struct(env); err != nil {
		in.logger.Warn("ai response failed validation", zap.Error(err))
		return nil, llm.Permanent(fmt.Errorf("%w: %v", ErrSchema, err))
	}
	return &env, nil
}

// ExtractJSON 去掉 markdown 代码块后按括号配对取第一个顶层对象，字符串内的括号不计
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(s, "")

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSON
}
