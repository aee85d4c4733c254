package cmn

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	Version   = "0.3.0"
	envPrefix = "VITAME"
)

func InitConfig() {
	err := initViper()
	if err != nil {
		logger.Fatal("[ FAIL ] failed to init viper", zap.Error(err))
	}

	MiniLogger.Info("[ OK ] config module initialed", zap.String("path", viper.ConfigFileUsed()))
}

func initViper() error {
	// .env 只用于本地开发注入密钥，不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("load .env failed", zap.Error(err))
	}

	viper.SetConfigName(".config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.AddConfigPath("../../..")
	viper.SetConfigType("json")

	// VITAME_LLM_DATA_APIKEY 覆盖 llm.data.apiKey
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Warn("config file not found, running on defaults and env")
			return nil
		}
		logger.Error("init config failed", zap.Error(err))
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("llm.enable", true)
	viper.SetDefault("llm.platform", "zhipu")
	viper.SetDefault("llm.data.model", "glm-4-plus")
	viper.SetDefault("llm.data.baseUrl", "https://open.bigmodel.cn/api/paas/v4")
	viper.SetDefault("llm.data.temperature", 0.8)
	viper.SetDefault("llm.data.maxTokens", 2500)
	viper.SetDefault("llm.data.timeout", "30s")
	viper.SetDefault("llm.data.retries", 2)
	viper.SetDefault("llm.data.retryDelay", "1s")

	viper.SetDefault("reading.connectDelay", "800ms")
	viper.SetDefault("reading.maxRetries", 2)
	viper.SetDefault("reading.cacheTTL", "30m")
	viper.SetDefault("reading.rateLimit.perMinute", 30)
	viper.SetDefault("reading.rateLimit.burst", 5)

	viper.SetDefault("cache.driver", "memory")

	viper.SetDefault("wealth.referenceYear", "丙午")

	viper.SetDefault("monitoring.enable", false)
	viper.SetDefault("monitoring.maxBytes", 1<<20)
	viper.SetDefault("monitoring.retentionDays", 30)
	viper.SetDefault("dbms.timeZone", "Asia/Shanghai")
}
