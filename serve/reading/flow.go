package reading

import (
	"context"
	"errors"
	"sync"
	"time"

	"VitaMe/cmn/content"
	"VitaMe/cmn/llm"
)

// State AI 解读的调用状态
type State string

const (
	StateIdle         State = "idle"
	StateConnecting   State = "connecting"
	StateGenerating   State = "generating"
	StateSuccess      State = "success"
	StateError        State = "error"
	StateUnconfigured State = "unconfigured"
)

var ErrInvalidTransition = errors.New("invalid state transition")

// RunFunc 一次完整的生成调用
type RunFunc func(ctx context.Context) (*content.GeneratedContent, error)

// Flow 状态机：idle → connecting → generating → success | error；
// error 可在重试次数内回到 connecting，耗尽后只能 UseDefault。缺少配置进入终态 unconfigured；
// 认证失败停在 error 且不可重试。
type Flow struct {
	mu sync.Mutex

	run          RunFunc
	connectDelay time.Duration
	maxRetries   int
	sleep        func(ctx context.Context, d time.Duration) error

	state   State
	retries int
	result  *content.GeneratedContent
	err     error
	history []State
	// fatal 本轮错误不可重试
	fatal bool
}

func NewFlow(run RunFunc, connectDelay time.Duration, maxRetries int) *Flow {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Flow{
		run:          run,
		connectDelay: connectDelay,
		maxRetries:   maxRetries,
		sleep:        sleepCtx,
		state:        StateIdle,
		history:      []State{StateIdle},
	}
}

// Start 仅在 idle 状态可用。返回的错误只表示状态转换非法，调用结果通过 State 与 Err 查看
func (f *Flow) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return ErrInvalidTransition
	}
	f.connect()
	f.mu.Unlock()
	f.attempt(ctx)
	return nil
}

// Retry 仅在 error 状态且未超过最大重试次数时可用
func (f *Flow) Retry(ctx context.Context) error {
	f.mu.Lock()
	if !f.retryable() {
		f.mu.Unlock()
		return ErrInvalidTransition
	}
	f.retries++
	f.connect()
	f.mu.Unlock()
	f.attempt(ctx)
	return nil
}

// UseDefault error 状态下放弃重试，以默认内容结束
func (f *Flow) UseDefault() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateError {
		return ErrInvalidTransition
	}
	c := content.DefaultContent()
	f.result = &c
	f.setState(StateSuccess)
	return nil
}

// connect 调用方需持有锁
func (f *Flow) connect() {
	f.err = nil
	f.setState(StateConnecting)
}

// attempt 从 connecting 开始执行一次调用
func (f *Flow) attempt(ctx context.Context) {
	if f.connectDelay > 0 {
		if err := f.sleep(ctx, f.connectDelay); err != nil {
			f.fail(err)
			return
		}
	}

	f.mu.Lock()
	f.setState(StateGenerating)
	f.mu.Unlock()

	result, err := f.run(ctx)
	if err != nil {
		f.fail(err)
		return
	}

	f.mu.Lock()
	f.result = result
	f.setState(StateSuccess)
	f.mu.Unlock()
}

func (f *Flow) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
	f.fatal = errors.Is(err, llm.ErrUnauthorized)
	if errors.Is(err, llm.ErrNotConfigured) || errors.Is(err, llm.ErrDisabled) {
		f.setState(StateUnconfigured)
		return
	}
	f.setState(StateError)
}

func (f *Flow) setState(s State) {
	f.state = s
	f.history = append(f.history, s)
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanRetry error 状态、错误可重试且仍有重试次数
func (f *Flow) CanRetry() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retryable()
}

// retryable 调用方需持有锁
func (f *Flow) retryable() bool {
	return f.state == StateError && !f.fatal && f.retries < f.maxRetries
}

func (f *Flow) Retries() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retries
}

func (f *Flow) Result() *content.GeneratedContent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// History 经历过的全部状态
func (f *Flow) History() []State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]State(nil), f.history...)
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
