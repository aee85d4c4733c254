package content

import (
	"regexp"

	"VitaMe/cmn"
)

const (
	// FallbackValue 变量表中不存在的占位符填充值
	FallbackValue = "默认"

	// placeholderStride 同一模板内第 n 个占位符的种子步长
	placeholderStride = 17
)

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Selector 按种子确定性地选择模板与变量
type Selector struct {
	templates map[Category][]string
	variables map[string][]string
}

// NewSelector 使用内置模板与变量表
func NewSelector() *Selector {
	return &Selector{templates: templatePools, variables: variablePools}
}

// SelectTemplate 下标为 seed mod len(pool)，未知类别返回空串
func (s *Selector) SelectTemplate(seed int, category Category) string {
	pool := s.templates[category]
	if len(pool) == 0 {
		return ""
	}
	return pool[cmn.Mod(seed, len(pool))]
}

// SelectVariable 下标为 (seed + indexOffset*17) mod len(pool)，未知变量返回 "默认"
func (s *Selector) SelectVariable(seed int, name string, indexOffset int) string {
	pool := s.variables[name]
	if len(pool) == 0 {
		return FallbackValue
	}
	return pool[cmn.Mod(seed+indexOffset*placeholderStride, len(pool))]
}

// Fill 从左到右替换所有 {name} 占位符，第 n 个占位符使用 indexOffset n
func (s *Selector) Fill(template string, seed int) string {
	index := 0
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		v := s.SelectVariable(seed, name, index)
		index++
		return v
	})
}

// Generate 选模板并填充
func (s *Selector) Generate(seed int, category Category) string {
	return s.Fill(s.SelectTemplate(seed, category), seed)
}

// Templates 返回某类别模板池的副本
func (s *Selector) Templates(category Category) []string {
	return append([]string(nil), s.templates[category]...)
}

// Pick 从任意有序池中按种子选择
func Pick[T any](pool []T, seed int) T {
	var zero T
	if len(pool) == 0 {
		return zero
	}
	return pool[cmn.Mod(seed, len(pool))]
}
