package content

import (
	"VitaMe/cmn"
	"VitaMe/cmn/bazi"
)

const seedSpace = 1000

// BirthForm 出生表单
type BirthForm = bazi.BirthForm

// DeriveSeed (year*1000 + month*100 + day*10 + hour) mod 1000，结果恒在 [0, 999]。
// 越界的日期时间不做校验，直接参与取模。
func DeriveSeed(year, month, day, hour int) int {
	return cmn.Mod(year*1000+month*100+day*10+hour, seedSpace)
}

// SeedOf 由出生表单计算种子
func SeedOf(form BirthForm) int {
	return DeriveSeed(form.Year, form.Month, form.Day, form.Hour)
}
