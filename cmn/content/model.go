// Package content 基于种子的模板内容生成与偏见过滤
package content

// Source 内容来源
type Source string

const (
	SourceTemplate Source = "template"
	SourceAI       Source = "ai"
	SourceDefault  Source = "default"
)

// GeneratedContent 一次解读的完整内容，每次请求新建，不做持久化
type GeneratedContent struct {
	Personality    string `json:"personality"`
	Career         string `json:"career"`
	Love           string `json:"love,omitempty"`
	Wealth         Wealth `json:"wealth"`
	Health         Health `json:"health"`
	Advice         string `json:"advice"`
	Vitamin        string `json:"vitamin"`
	LuckyColor     string `json:"luckyColor"`
	ElementBalance string `json:"elementBalance"`
	Source         Source `json:"source"`
	Model          string `json:"model,omitempty"`
	HasFiltered    bool   `json:"hasFiltered"`
}

type Wealth struct {
	Title          string `json:"title"`
	Advice         string `json:"advice"`
	LuckyDirection string `json:"luckyDirection"`
	LuckyTime      string `json:"luckyTime"`
	Suggestion     string `json:"suggestion"`
}

type Health struct {
	Summary string     `json:"summary,omitempty"`
	Morning HealthItem `json:"morning"`
	Flow    HealthItem `json:"flow"`
}

type HealthItem struct {
	Action  string `json:"action"`
	Benefit string `json:"benefit"`
}

// Category 模板类别
type Category string

const (
	CategoryPersonality Category = "personality"
	CategoryCareer      Category = "career"
	CategoryWealth      Category = "wealth"
	CategoryLove        Category = "love"
	CategoryHealth      Category = "health"
	CategoryAdvice      Category = "advice"
)

// categoryOffsets 各类别相对基础种子的偏移，避免同一种子下各类别选择同步
var categoryOffsets = map[Category]int{
	CategoryPersonality: 0,
	CategoryCareer:      100,
	CategoryWealth:      200,
	CategoryLove:        300,
	CategoryHealth:      400,
	CategoryAdvice:      500,
}

// Offset 类别偏移，未知类别为 0
func Offset(c Category) int {
	return categoryOffsets[c]
}
