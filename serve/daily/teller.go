package daily

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/mroth/weightedrand/v2"
	"go.uber.org/zap"

	"VitaMe/cmn/content"
)

const dateLayout = "2006-01-02"

// Band 运势分段，Weight 为该段被选中的相对权重
type Band struct {
	Label  string `mapstructure:"label" json:"label"`
	Min    int    `mapstructure:"min" json:"min"`
	Max    int    `mapstructure:"max" json:"max"`
	Weight uint   `mapstructure:"weight" json:"weight"`
}

var DefaultBands = []Band{
	{Label: "平稳", Min: 60, Max: 69, Weight: 2},
	{Label: "顺遂", Min: 70, Max: 79, Weight: 4},
	{Label: "亨通", Min: 80, Max: 89, Weight: 3},
	{Label: "鸿运", Min: 90, Max: 99, Weight: 1},
}

// Fortune 每日运势
type Fortune struct {
	Date    string `json:"date"`
	Score   int    `json:"score"`
	Band    string `json:"band"`
	Vitamin string `json:"vitamin"`
	Advice  string `json:"advice"`
}

// Teller 同一出生时间在同一天总是得到相同的运势
type Teller struct {
	chooser  *weightedrand.Chooser[Band, uint]
	selector *content.Selector
	filter   *content.Filter
	logger   *zap.Logger
}

func NewTeller(bands []Band, logger *zap.Logger) (*Teller, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(bands) == 0 {
		bands = DefaultBands
	}

	choices := make([]weightedrand.Choice[Band, uint], 0, len(bands))
	for _, b := range bands {
		if b.Min > b.Max {
			return nil, fmt.Errorf("band %s: min %d > max %d", b.Label, b.Min, b.Max)
		}
		if b.Weight == 0 {
			logger.Warn("band weight is zero, skipped", zap.String("band", b.Label))
			continue
		}
		choices = append(choices, weightedrand.NewChoice(b, b.Weight))
	}
	// 选择结果只取决于随机源，与配置书写顺序无关
	sort.SliceStable(choices, func(i, j int) bool {
		return choices[i].Item.Min < choices[j].Item.Min
	})

	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("failed to create chooser: %w", err)
	}

	return &Teller{
		chooser:  chooser,
		selector: content.NewSelector(),
		filter:   content.NewFilter(content.DefaultFilterRules),
		logger:   logger,
	}, nil
}

// DaySeed seed*10000 + 当年第几天
func DaySeed(form content.BirthForm, day time.Time) int {
	return content.SeedOf(form)*10000 + day.YearDay()
}

// Today 生成 day 当天的运势
func (t *Teller) Today(form content.BirthForm, day time.Time) Fortune {
	seed := DaySeed(form, day)
	rng := rand.New(rand.NewSource(int64(seed)*10000 + int64(day.Year())))

	band := t.chooser.PickSource(rng)
	score := band.Min + rng.Intn(band.Max-band.Min+1)

	advice := t.filter.Apply(t.selector.Generate(seed, content.CategoryAdvice)).Content

	t.logger.Debug("daily fortune",
		zap.Int("seed", seed),
		zap.String("band", band.Label),
		zap.Int("score", score))

	return Fortune{
		Date:    day.Format(dateLayout),
		Score:   score,
		Band:    band.Label,
		Vitamin: content.VitaminOf(seed),
		Advice:  advice,
	}
}
