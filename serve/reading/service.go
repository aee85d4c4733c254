package reading

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"VitaMe/cmn/apperr"
	"VitaMe/cmn/bazi"
	"VitaMe/cmn/cache"
	"VitaMe/cmn/content"
	"VitaMe/cmn/llm"
	"VitaMe/cmn/metrics"
	"VitaMe/cmn/wealth"
)

// Options 解读服务的依赖，Cache 可为空
type Options struct {
	Deriver      bazi.Deriver
	Synthesizer  *content.Synthesizer
	Engine       *wealth.Engine
	Interpreter  *Interpreter
	Cache        *cache.Cache
	Tracker      *Tracker
	ConnectDelay time.Duration
	MaxRetries   int
	CacheTTL     time.Duration
	Logger       *zap.Logger
}

type Service struct {
	deriver      bazi.Deriver
	synthesizer  *content.Synthesizer
	engine       *wealth.Engine
	interpreter  *Interpreter
	cache        *cache.Cache
	tracker      *Tracker
	connectDelay time.Duration
	maxRetries   int
	cacheTTL     time.Duration
	logger       *zap.Logger
}

func NewService(o Options) *Service {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Deriver == nil {
		o.Deriver = bazi.NewLunarDeriver(o.Logger)
	}
	if o.Synthesizer == nil {
		o.Synthesizer = content.NewSynthesizer(o.Logger)
	}
	if o.Engine == nil {
		o.Engine = wealth.NewEngine("丙午", nil, o.Logger)
	}
	if o.Tracker == nil {
		o.Tracker = NewTracker()
	}
	return &Service{
		deriver:      o.Deriver,
		synthesizer:  o.Synthesizer,
		engine:       o.Engine,
		interpreter:  o.Interpreter,
		cache:        o.Cache,
		tracker:      o.Tracker,
		connectDelay: o.ConnectDelay,
		maxRetries:   o.MaxRetries,
		cacheTTL:     o.CacheTTL,
		logger:       o.Logger,
	}
}

// Chart 推导失败时使用默认命盘，不返回错误
func (s *Service) Chart(in BirthInput) ChartResult {
	chart, err := s.deriver.Derive(in.Date, in.Time)
	degraded := false
	if err != nil {
		s.logger.Warn("chart derivation degraded",
			zap.String("date", in.Date),
			zap.String("time", in.Time),
			zap.Error(err))
		degraded = true
	}

	form := bazi.FormFromInput(in.Date, in.Time)
	return ChartResult{
		Chart:    chart,
		Form:     form,
		Elements: bazi.CountElements(chart),
		Seed:     content.SeedOf(form),
		Degraded: degraded,
	}
}

// Wealth 仅财运报告
func (s *Service) Wealth(in BirthInput) wealth.Report {
	return s.engine.Evaluate(s.Chart(in).Chart)
}

// Compose 模板内容加财运报告，不访问网络
func (s *Service) Compose(in BirthInput) *Reading {
	cr := s.Chart(in)
	c := s.synthesizer.Synthesize(cr.Chart, cr.Form)
	report := s.engine.Evaluate(cr.Chart)

	metrics.ReadingTotal.WithLabelValues(string(c.Source)).Inc()
	return &Reading{ChartResult: cr, Content: &c, Wealth: &report}
}

// Interpret AI 解读。未配置时返回模板内容，重试耗尽时返回默认内容；
// 同一客户端有更新的请求时返回 CodeSuperseded。
func (s *Service) Interpret(ctx context.Context, clientId string, in BirthInput) (*Reading, string, error) {
	key := s.tracker.Issue(clientId)
	defer s.tracker.Release(clientId, key)

	cr := s.Chart(in)
	flow := NewFlow(s.runner(cr), s.connectDelay, s.maxRetries)

	_ = flow.Start(ctx)
	for flow.CanRetry() && ctx.Err() == nil {
		_ = flow.Retry(ctx)
	}

	var c *content.GeneratedContent
	switch flow.State() {
	case StateSuccess:
		c = flow.Result()
	case StateUnconfigured:
		s.logger.Info("ai not configured, serving template content", zap.Error(flow.Err()))
		synthesized := s.synthesizer.Synthesize(cr.Chart, cr.Form)
		c = &synthesized
	default:
		s.logger.Warn("ai interpretation failed, serving default content",
			zap.Int("retries", flow.Retries()),
			zap.Error(flow.Err()))
		_ = flow.UseDefault()
		c = flow.Result()
	}

	if !s.tracker.IsLatest(clientId, key) {
		s.logger.Info("interpretation superseded, dropping result", zap.String("clientId", clientId))
		return nil, key, apperr.New(apperr.CodeSuperseded, "请求已被新的请求取代")
	}

	report := s.engine.Evaluate(cr.Chart)
	metrics.ReadingTotal.WithLabelValues(string(c.Source)).Inc()

	return &Reading{
		ChartResult: cr,
		Content:     c,
		Wealth:      &report,
		State:       flow.State(),
		Retries:     flow.Retries(),
		History:     flow.History(),
	}, key, nil
}

func (s *Service) runner(cr ChartResult) RunFunc {
	return func(ctx context.Context) (*content.GeneratedContent, error) {
		if s.interpreter == nil {
			return nil, llm.ErrDisabled
		}
		if s.cache == nil {
			return s.interpreter.Interpret(ctx, cr.Chart, cr.Form)
		}

		cacheKey := fmt.Sprintf("reading:%s:%d", cr.Chart.Key(), cr.Seed)
		raw, hit, err := s.cache.GetOrLoad(ctx, cacheKey, s.cacheTTL, func(ctx context.Context) ([]byte, error) {
			c, err := s.interpreter.Interpret(ctx, cr.Chart, cr.Form)
			if err != nil {
				return nil, err
			}
			return json.Marshal(c)
		})
		if err != nil {
			return nil, err
		}

		var c content.GeneratedContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeCache, "缓存数据损坏")
		}
		s.logger.Debug("interpretation loaded", zap.String("key", cacheKey), zap.Bool("cacheHit", hit))
		return &c, nil
	}
}
