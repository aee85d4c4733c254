package reading

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/bazi"
	"VitaMe/cmn/cache"
	"VitaMe/cmn/content"
	"VitaMe/cmn/llm"
	"VitaMe/cmn/wealth"
)

var z = zap.NewNop()

var (
	service *Service

	rateLimitPerMinute int
	rateLimitBurst     int
)

// Init 依赖 llm 模块先行初始化
func Init() {
	z = cmn.GetLogger()

	connectDelay := viper.GetDuration("reading.connectDelay")
	maxRetries := viper.GetInt("reading.maxRetries")
	if maxRetries < 0 {
		z.Fatal("[ FAIL ] reading.maxRetries must not be negative")
	}

	rateLimitPerMinute = viper.GetInt("reading.rateLimit.perMinute")
	rateLimitBurst = viper.GetInt("reading.rateLimit.burst")

	synthesizer := content.NewSynthesizer(z)
	service = NewService(Options{
		Deriver:      bazi.NewLunarDeriver(z),
		Synthesizer:  synthesizer,
		Engine:       wealth.FromConfig(),
		Interpreter:  NewInterpreter(llm.NewService(), synthesizer.Filter(), z),
		Cache:        cache.FromConfig(context.Background()),
		Tracker:      NewTracker(),
		ConnectDelay: connectDelay,
		MaxRetries:   maxRetries,
		CacheTTL:     viper.GetDuration("reading.cacheTTL"),
		Logger:       z,
	})

	cmn.MiniLogger.Info("[ OK ] reading module initialed",
		zap.Duration("connectDelay", connectDelay),
		zap.Int("maxRetries", maxRetries))
}

// DefaultService Init 构造的服务，供命令行复用
func DefaultService() *Service {
	return service
}
