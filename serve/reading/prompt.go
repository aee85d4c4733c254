package reading

import (
	"encoding/json"
	"fmt"

	"VitaMe/cmn/bazi"
	"VitaMe/cmn/content"
)

const promptTemplate = `
你是一位温和智慧的命理师，请根据以下八字信息生成个性化解读。

基本信息：
- 出生时间：%d年%d月%d日%d时
- 八字数据：%s

请用温和、积极、现代的语言风格，避免传统命理中的消极表述。每个方面都要个性化，不要使用通用模板。

请严格按照以下JSON格式返回，不要添加任何其他文字：

%s

重要要求：
1. 语言现代化，避免"克夫"、"命硬"等传统负面词汇
2. 建议要实用，符合现代生活
3. 保持积极正面的基调
4. 内容要有个性化差异，不要千篇一律
5. 严格遵循JSON格式，确保可以被解析
`

// outputExample 提示词中的输出示例，字段与 aiEnvelope 一致
var outputExample = map[string]any{
	"personality":    "性格特点分析，体现独特个性，100-150字",
	"career":         "事业发展建议，结合现代职场，100-150字",
	"love":           "感情运势，现代情感观念，100-150字",
	"advice":         "今日行动建议，具体可执行，80-120字",
	"luckyColor":     "一个具体的颜色名称",
	"vitamin":        "今日能量补充建议，如'多巴胺森林漫步'",
	"elementBalance": "五行平衡状态描述",
	"wealth": map[string]string{
		"title":          "今日财运主题，简洁有吸引力",
		"advice":         "财运分析和具体建议，包含可执行的理财行动，120-180字",
		"luckyDirection": "有利的方位，如'东南方'",
		"luckyTime":      "最佳理财决策时间段，如'14:00-16:00'",
		"suggestion":     "具体的理财行动建议，如'适合定投基金'",
	},
	"health": map[string]any{
		"morning": map[string]string{
			"action":  "晨间养生活动，具体可执行，如'饮一杯温润的茉莉花茶'",
			"benefit": "这个活动的好处和效果，50-80字",
		},
		"flow": map[string]string{
			"action":  "心流时刻活动，具体可执行，如'冥想与自然白噪音'",
			"benefit": "这个活动的好处和最佳时间，50-80字，包含具体时间段",
		},
	},
}

// BuildPrompt 嵌入命盘 JSON 与严格的输出示例
func BuildPrompt(chart bazi.Chart, form content.BirthForm) (string, error) {
	chartJson, err := json.MarshalIndent(chart, "", "  ")
	if err != nil {
		return "", err
	}
	example, err := json.MarshalIndent(outputExample, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(promptTemplate,
		form.Year, form.Month, form.Day, form.Hour,
		string(chartJson), string(example)), nil
}
