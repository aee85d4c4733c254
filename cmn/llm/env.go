package llm

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"VitaMe/cmn"
)

var (
	logger   = zap.NewNop()
	enable   bool
	platform string

	chatConfig Config
)

// 各平台的默认接入点，llm.data.baseUrl 优先
var platformBaseUrls = map[string]string{
	"zhipu":    "https://open.bigmodel.cn/api/paas/v4",
	"deepseek": "https://api.deepseek.com",
	"groq":     "https://api.groq.com/openai/v1",
}

func Init() {
	logger = cmn.GetLogger()

	enable = viper.GetBool("llm.enable")
	if !enable {
		cmn.MiniLogger.Info("[ -- ] llm module disabled")
		return
	}

	platform = viper.GetString("llm.platform")
	if platform == "" {
		logger.Fatal("[ FAIL ] llm platform not set")
	}

	chatConfig = loadConfig()
	if chatConfig.BaseUrl == "" {
		logger.Fatal("[ FAIL ] llm base url not set", zap.String("platform", platform))
	}

	// 缺少密钥不阻止启动，调用时返回 ErrNotConfigured，由上层回退到模板内容
	if chatConfig.ApiKey == "" {
		logger.Warn("llm api key not set, ai interpretation unavailable")
	}

	cmn.MiniLogger.Info("[ OK ] llm module initialed",
		zap.String("platform", platform),
		zap.String("model", chatConfig.Model))
}

func loadConfig() Config {
	cfg := Config{
		ApiKey:      viper.GetString("llm.data.apiKey"),
		Model:       viper.GetString("llm.data.model"),
		BaseUrl:     viper.GetString("llm.data.baseUrl"),
		Temperature: viper.GetFloat64("llm.data.temperature"),
		MaxTokens:   viper.GetInt("llm.data.maxTokens"),
		Timeout:     viper.GetDuration("llm.data.timeout"),
		Retries:     viper.GetInt("llm.data.retries"),
		RetryDelay:  viper.GetDuration("llm.data.retryDelay"),
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = platformBaseUrls[platform]
	}
	return cfg
}

// Enabled llm 模块是否启用
func Enabled() bool {
	return enable
}
