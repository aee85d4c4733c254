package bazi

// Element 五行
type Element string

const (
	Wood  Element = "木"
	Fire  Element = "火"
	Earth Element = "土"
	Metal Element = "金"
	Water Element = "水"
)

// Elements 五行的固定顺序（木火土金水），计数与轮转都按此顺序
var Elements = []Element{Wood, Fire, Earth, Metal, Water}

// Role 某五行相对日主的十神大类
type Role string

const (
	RoleCompanion Role = "companion" // 比劫：同我
	RoleOutput    Role = "output"    // 食伤：我生
	RoleWealth    Role = "wealth"    // 财星：我克
	RoleAuthority Role = "authority" // 官杀：克我
	RoleResource  Role = "resource"  // 印星：生我
)

type stemInfo struct {
	element Element
	yang    bool
}

var stems = map[string]stemInfo{
	"甲": {Wood, true}, "乙": {Wood, false},
	"丙": {Fire, true}, "丁": {Fire, false},
	"戊": {Earth, true}, "己": {Earth, false},
	"庚": {Metal, true}, "辛": {Metal, false},
	"壬": {Water, true}, "癸": {Water, false},
}

type branchInfo struct {
	element Element
	// hidden 藏干，第一个为本气，第二个为中气
	hidden []string
}

var branches = map[string]branchInfo{
	"子": {Water, []string{"癸"}},
	"丑": {Earth, []string{"己", "癸", "辛"}},
	"寅": {Wood, []string{"甲", "丙", "戊"}},
	"卯": {Wood, []string{"乙"}},
	"辰": {Earth, []string{"戊", "乙", "癸"}},
	"巳": {Fire, []string{"丙", "庚", "戊"}},
	"午": {Fire, []string{"丁", "己"}},
	"未": {Earth, []string{"己", "丁", "乙"}},
	"申": {Metal, []string{"庚", "壬", "戊"}},
	"酉": {Metal, []string{"辛"}},
	"戌": {Earth, []string{"戊", "辛", "丁"}},
	"亥": {Water, []string{"壬", "甲"}},
}

// 六冲
var clashes = map[string]string{
	"子": "午", "午": "子",
	"丑": "未", "未": "丑",
	"寅": "申", "申": "寅",
	"卯": "酉", "酉": "卯",
	"辰": "戌", "戌": "辰",
	"巳": "亥", "亥": "巳",
}

// 六合
var harmonies = map[string]string{
	"子": "丑", "丑": "子",
	"寅": "亥", "亥": "寅",
	"卯": "戌", "戌": "卯",
	"辰": "酉", "酉": "辰",
	"巳": "申", "申": "巳",
	"午": "未", "未": "午",
}

// StemElement 天干五行
func StemElement(stem string) (Element, bool) {
	info, ok := stems[stem]
	return info.element, ok
}

// StemYang 天干阴阳，未知天干返回 false
func StemYang(stem string) bool {
	return stems[stem].yang
}

// IsStem 是否为合法天干
func IsStem(stem string) bool {
	_, ok := stems[stem]
	return ok
}

// BranchElement 地支五行
func BranchElement(branch string) (Element, bool) {
	info, ok := branches[branch]
	return info.element, ok
}

// HiddenStems 地支藏干，按本气、中气、余气排列
func HiddenStems(branch string) []string {
	return branches[branch].hidden
}

// ClashOf 与 branch 相冲的地支
func ClashOf(branch string) string {
	return clashes[branch]
}

// HarmonyOf 与 branch 六合的地支
func HarmonyOf(branch string) string {
	return harmonies[branch]
}

// Generates 我生的五行
func (e Element) Generates() Element {
	return rotate(e, 1)
}

// Controls 我克的五行
func (e Element) Controls() Element {
	return rotate(e, 2)
}

// GeneratedBy 生我的五行
func (e Element) GeneratedBy() Element {
	return rotate(e, 4)
}

// ControlledBy 克我的五行
func (e Element) ControlledBy() Element {
	return rotate(e, 3)
}

// Valid 是否为五行之一
func (e Element) Valid() bool {
	return indexOf(e) >= 0
}

// RoleOf 以 dayMaster 五行为我，other 对应的十神大类
func RoleOf(dayMaster, other Element) Role {
	switch other {
	case dayMaster:
		return RoleCompanion
	case dayMaster.Generates():
		return RoleOutput
	case dayMaster.Controls():
		return RoleWealth
	case dayMaster.ControlledBy():
		return RoleAuthority
	default:
		return RoleResource
	}
}

func rotate(e Element, step int) Element {
	i := indexOf(e)
	if i < 0 {
		return ""
	}
	return Elements[(i+step)%len(Elements)]
}

func indexOf(e Element) int {
	for i, el := range Elements {
		if el == e {
			return i
		}
	}
	return -1
}
