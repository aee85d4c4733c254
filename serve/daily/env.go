package daily

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"VitaMe/cmn"
)

var (
	teller *Teller
	z      = zap.NewNop()
)

func Init() {
	z = cmn.GetLogger()

	var bands []Band
	if viper.IsSet("daily.bands") {
		if err := viper.UnmarshalKey("daily.bands", &bands); err != nil {
			z.Fatal("[ FAIL ] failed to read daily.bands", zap.Error(err))
		}
	}

	var err error
	teller, err = NewTeller(bands, z)
	if err != nil {
		z.Fatal("[ FAIL ] failed to create daily teller", zap.Error(err))
	}

	cmn.MiniLogger.Info("[ OK ] daily module initialed", zap.Int("bands", len(bands)))
}
