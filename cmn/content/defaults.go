package content

// DefaultContent AI 重试耗尽后用户选择使用默认内容时返回，与命盘无关
func DefaultContent() GeneratedContent {
	return GeneratedContent{
		Personality: "妳的生命底色温润而坚韧，既有向内探索的细腻，也有向外生长的力量。妳擅长在变化中找到属于自己的节奏。",
		Career:      "妳的事业发展呈现稳步攀升的轨迹，适合在需要耐心与专注的领域深耕。把握近期的学习机会，能为未来积累关键能力。",
		Love:        "妳在感情中真诚而体贴，重视彼此的成长与尊重。多一些主动的表达，能让关系更加温暖稳定。",
		Wealth: Wealth{
			Title:          "今日财运指南",
			Advice:         "妳的财运呈现稳健上升的趋势，适合进行长期价值投资。今日的直觉力较强，可以信任内心的判断来做重要的财务决策。",
			LuckyDirection: "东南方",
			LuckyTime:      "14:00-16:00",
			Suggestion:     "理财建议：定投基金或储蓄计划",
		},
		Health: Health{
			Summary: "妳适合张弛有度的生活节奏，规律作息与温和运动是最好的养护。",
			Morning: HealthItem{Action: "饮一杯温润的茉莉花茶", Benefit: "疏肝理气，唤醒一天的通透感。"},
			Flow:    HealthItem{Action: "冥想与自然白噪音", Benefit: "适合在14:00 - 16:00进行一次深呼吸。"},
		},
		Advice:         "顺应天时，自有光芒。今日适合放慢脚步，整理思绪，把精力留给真正重要的事。",
		Vitamin:        vitaminPool[0],
		LuckyColor:     colorPool[0],
		ElementBalance: "木气充盈，火气待补",
		Source:         SourceDefault,
	}
}
