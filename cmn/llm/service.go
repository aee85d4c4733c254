package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"VitaMe/cmn/metrics"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultMaxTokens = 2500
	defaultDelay     = time.Second
)

var (
	// ErrNotConfigured 未配置密钥，不发起任何请求
	ErrNotConfigured = errors.New("llm api key not configured")

	// ErrUnauthorized 401/403，不重试
	ErrUnauthorized = errors.New("llm authentication failed")

	// ErrRetriesExhausted 重试次数耗尽，包装最后一次失败原因
	ErrRetriesExhausted = errors.New("llm retries exhausted")

	ErrDisabled = errors.New("llm module disabled")
)

// Config 单个平台的调用参数
type Config struct {
	ApiKey      string
	Model       string
	BaseUrl     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	Retries     int
	RetryDelay  time.Duration
}

// AcceptFunc 校验模型返回的文本。返回普通错误会触发重试，返回 Permanent 包装的错误立即终止。
type AcceptFunc func(content string) error

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent 标记不可重试的错误
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent 是否为 Permanent 包装的错误
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

type Service interface {
	Chat(ctx context.Context, prompt string, accept AcceptFunc) (string, error)
	Model() string
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type chatImpl struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger

	// sleep 可在测试中替换以记录退避
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService 使用 Init 读取的配置；模块未启用时返回的服务总是报 ErrDisabled
func NewService() Service {
	if !enable {
		return disabledImpl{}
	}
	return NewServiceWithConfig(chatConfig, logger)
}

// NewServiceWithConfig 显式指定配置，未设置的超时、重试间隔与 max_tokens 取默认值
func NewServiceWithConfig(cfg Config, l *zap.Logger) Service {
	if l == nil {
		l = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultDelay
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	cfg.BaseUrl = strings.TrimRight(cfg.BaseUrl, "/")

	return &chatImpl{
		cfg:    cfg,
		client: &http.Client{},
		logger: l,
		sleep:  sleepCtx,
	}
}

func (s *chatImpl) Model() string {
	return s.cfg.Model
}

// Chat 第 n 次重试前等待 RetryDelay*n，每次请求单独超时
func (s *chatImpl) Chat(ctx context.Context, prompt string, accept AcceptFunc) (string, error) {
	if strings.TrimSpace(s.cfg.ApiKey) == "" {
		return "", ErrNotConfigured
	}

	start := time.Now()
	defer func() {
		metrics.LLMRequestDuration.Observe(time.Since(start).Seconds())
	}()

	var lastErr error
	for attempt := 0; attempt <= s.cfg.Retries; attempt++ {
		if attempt > 0 {
			s.logger.Warn("llm call failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("retries", s.cfg.Retries),
				zap.Error(lastErr))
			if err := s.sleep(ctx, s.cfg.RetryDelay*time.Duration(attempt)); err != nil {
				return "", err
			}
		}

		content, err := s.once(ctx, prompt)
		if err == nil && accept != nil {
			if err = accept(content); err != nil && !IsPermanent(err) {
				metrics.LLMAttempts.WithLabelValues("bad_content").Inc()
			}
		}
		if err == nil {
			metrics.LLMAttempts.WithLabelValues("ok").Inc()
			return content, nil
		}

		if errors.Is(err, ErrUnauthorized) {
			return "", err
		}
		if IsPermanent(err) {
			metrics.LLMAttempts.WithLabelValues("schema").Inc()
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		lastErr = err
	}

	s.logger.Error("llm retries exhausted", zap.Int("attempts", s.cfg.Retries+1), zap.Error(lastErr))
	return "", fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
}

// once 单次 HTTP 请求，返回 choices[0].message.content
func (s *chatImpl) once(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(chatRequest{
		Model:       s.cfg.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		s.logger.Error("json marshal fail", zap.Error(err))
		return "", Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseUrl+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		s.logger.Error("new request fail", zap.Error(err))
		return "", Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ApiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.LLMAttempts.WithLabelValues("transport").Inc()
		return "", err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			s.logger.Error("close response body fail", zap.Error(err))
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.LLMAttempts.WithLabelValues("transport").Inc()
		return "", err
	}

	var parsed chatResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		metrics.LLMAttempts.WithLabelValues("auth").Inc()
		return "", fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.LLMAttempts.WithLabelValues("http_error").Inc()
		if decodeErr == nil && parsed.Error != nil {
			return "", fmt.Errorf("llm api error: status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("llm api error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if decodeErr != nil {
		metrics.LLMAttempts.WithLabelValues("bad_content").Inc()
		return "", fmt.Errorf("decode llm response: %w", decodeErr)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		metrics.LLMAttempts.WithLabelValues("bad_content").Inc()
		return "", errors.New("llm response missing choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type disabledImpl struct{}

func (disabledImpl) Chat(context.Context, string, AcceptFunc) (string, error) {
	return "", ErrDisabled
}

func (disabledImpl) Model() string { return "" }
