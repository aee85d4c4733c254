package cmn

import (
	"fmt"
	"os"
	"time"
)

// InitDir 初始化传入的目录路径（如不存在则创建）
func InitDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("target directory path cannot be empty")
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(dir, os.ModePerm); mkErr != nil {
			return fmt.Errorf("failed to create directory: %w", mkErr)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check target directory exist: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("target %s exist but not a directory", dir)
	}

	return nil
}

// Clamp 将整数限制在 [lo, hi] 区间
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mod 返回非负余数，m 必须大于 0
func Mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// UntilNext 距离 now 所在时区下一个 hour:minute 的间隔，恰好处于该时刻时返回一整天
func UntilNext(now time.Time, hour, minute int) time.Duration {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now)
}
