package bazi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/6tail/lunar-go/calendar"
	"go.uber.org/zap"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Deriver 由出生日期时间推导命盘
type Deriver interface {
	Derive(date, clock string) (Chart, error)
}

// LunarDeriver 基于 lunar-go 的八字推导
type LunarDeriver struct {
	logger *zap.Logger
}

func NewLunarDeriver(logger *zap.Logger) *LunarDeriver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LunarDeriver{logger: logger}
}

// Derive 解析 YYYY-MM-DD 与 HH:MM 并排盘，时间缺省为 00:00；返回的错误只用于记录，命盘始终可用
func (d *LunarDeriver) Derive(date, clock string) (chart Chart, err error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, strings.TrimSpace(date)+" "+clock, time.Local)
	if err != nil {
		d.logger.Warn("invalid birth input, using default chart", zap.String("date", date), zap.String("time", clock), zap.Error(err))
		return DefaultChart(), fmt.Errorf("parse birth %q %q: %w", date, clock, err)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("lunar calculation panicked, using default chart", zap.Any("panic", r), zap.Time("birth", t))
			chart = DefaultChart()
			err = fmt.Errorf("lunar calculation failed: %v", r)
		}
	}()

	solar := calendar.NewSolar(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), 0)
	ec := solar.GetLunar().GetEightChar()

	chart = Chart{
		Year:  ec.GetYear(),
		Month: ec.GetMonth(),
		Day:   ec.GetDay(),
		Hour:  ec.GetTime(),
		WuXing: []string{
			ec.GetYearWuXing(),
			ec.GetMonthWuXing(),
			ec.GetDayWuXing(),
			ec.GetTimeWuXing(),
		},
	}
	chart.DayMaster = runeAt(chart.Day, 0)

	return chart, nil
}

// FormFromInput 只做整数解析，不校验日期合法性；解析失败的字段记为 0
func FormFromInput(date, clock string) BirthForm {
	parts := strings.Split(strings.TrimSpace(date), "-")
	get := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0
		}
		return v
	}

	hour := 0
	hh, _, _ := strings.Cut(strings.TrimSpace(clock), ":")
	if v, err := strconv.Atoi(hh); err == nil {
		hour = v
	}

	return BirthForm{Year: get(0), Month: get(1), Day: get(2), Hour: hour}
}
