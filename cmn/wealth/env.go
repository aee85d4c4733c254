package wealth

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"VitaMe/cmn"
)

// FromConfig 读取 wealth.referenceYear 与 wealth.tiers 构造引擎，等级表缺失或非法时使用默认表
func FromConfig() *Engine {
	z := cmn.GetLogger()

	var tiers []Tier
	if viper.IsSet("wealth.tiers") {
		if err := viper.UnmarshalKey("wealth.tiers", &tiers); err != nil {
			z.Error("failed to unmarshal wealth.tiers, using defaults", zap.Error(err))
			tiers = nil
		}
	}
	if !validTiers(tiers) {
		tiers = nil
	}

	e := NewEngine(viper.GetString("wealth.referenceYear"), tiers, z)
	cmn.MiniLogger.Info("[ OK ] wealth module initialed",
		zap.String("referenceYear", e.referenceYear),
		zap.Int("tiers", len(e.tiers)))
	return e
}

func validTiers(tiers []Tier) bool {
	if len(tiers) == 0 {
		return false
	}
	for _, t := range tiers {
		if t.Code == "" {
			return false
		}
	}
	return true
}
