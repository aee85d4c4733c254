package content

import (
	"regexp"
)

// FilterRule 一条替换规则，Pattern 为字面短语
type FilterRule struct {
	Pattern     string
	Replacement string
}

// DefaultFilterRules 按主题分组：婚姻、性格、事业、生育、消极词汇。顺序即应用顺序。
var DefaultFilterRules = []FilterRule{
	// 婚姻
	{"克夫", "婚姻中需要更多沟通理解"},
	{"旺夫", "能为伴侣带来正面影响"},
	{"命硬", "性格坚强独立"},
	{"不利婚姻", "在感情中需要更多耐心"},
	{"婚姻不顺", "感情路上可能遇到挑战"},

	// 性格
	{"性格刚烈", "性格坚定有主见"},
	{"不够温柔", "个性直率真诚"},
	{"太过强势", "领导能力强"},
	{"不适合做妻子", "更适合发展事业"},
	{"缺乏女性魅力", "有独特的个人魅力"},

	// 事业
	{"不宜抛头露面", "适合多元化发展"},
	{"应该在家相夫教子", "可以选择适合自己的生活方式"},
	{"女子无才便是德", "有很好的学习和发展潜力"},
	{"不适合从商", "具备商业头脑"},

	// 生育
	{"子息艰难", "在生育方面可能需要更多关注"},
	{"无子命", "可能更专注于其他人生目标"},
	{"不利生育", "在家庭规划上需要综合考虑"},

	// 消极词汇
	{"命运不好", "人生中会遇到一些挑战"},
	{"运势低迷", "目前处于蓄势待发的阶段"},
	{"诸事不顺", "需要更多耐心等待时机"},
	{"灾祸连连", "可能会遇到一些考验"},
	{"孤独终老", "享受独立自主的生活"},
	{"一生劳碌", "勤劳努力，收获满满"},
	{"贫穷潦倒", "在财务管理上需要更多规划"},
}

// FilterResult 过滤结果
type FilterResult struct {
	Content     string `json:"content"`
	WasModified bool   `json:"wasModified"`
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// Filter 偏见过滤器，规则表编译后只读，可并发使用
type Filter struct {
	rules []compiledRule
}

// NewFilter 编译规则表，规则按字面量、忽略大小写匹配
func NewFilter(rules []FilterRule) *Filter {
	f := &Filter{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		if r.Pattern == "" {
			continue
		}
		f.rules = append(f.rules, compiledRule{
			re:          regexp.MustCompile("(?i)" + regexp.QuoteMeta(r.Pattern)),
			replacement: r.Replacement,
		})
	}
	return f
}

// Apply 按顺序对全文做全局替换，直到一轮内没有规则命中。
// 替换结果与上下文拼接后可能再次构成敏感短语，因此需要多轮。
func (f *Filter) Apply(text string) FilterResult {
	out := text
	modified := false

	for pass := 0; pass <= len(f.rules); pass++ {
		changed := false
		for _, r := range f.rules {
			if !r.re.MatchString(out) {
				continue
			}
			out = r.re.ReplaceAllLiteralString(out, r.replacement)
			changed = true
		}
		if !changed {
			break
		}
		modified = true
	}

	return FilterResult{Content: out, WasModified: modified}
}
