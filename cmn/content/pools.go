package content

// 模板与变量表均为有序常量，下标由种子决定，调整顺序会改变既有用户的解读结果。

var templatePools = map[Category][]string{
	CategoryPersonality: {
		// 自然系
		"妳的生命底色如同{season}的{nature}，带有{quality}的气质与{strength}的内在力量。妳擅长在{environment}中寻找平衡，内心深处有着{trait}的感知力。",
		// 艺术系
		"妳的性格如同{art_style}的画作，层次丰富而{color_tone}。妳有着{creative_trait}的创造力，善于将{inspiration}转化为独特的表达方式。",
		// 哲学系
		"妳的内在世界如同{philosophy}般深邃，拥有{wisdom_trait}的洞察力。妳倾向于通过{thinking_way}来理解世界，在{life_aspect}中展现出独特的智慧。",
		// 能量系
		"妳的能量场呈现{energy_pattern}的流动状态，具有{energy_trait}的特质。妳的{power_source}能够为周围的人带来{positive_effect}的影响。",
		// 元素系
		"妳的本质与{element}元素共振，展现出{element_trait}的特性。妳在{element_environment}中能够发挥最佳状态，拥有{element_power}的天赋能力。",
	},
	CategoryCareer: {
		"妳的事业发展呈现{career_pattern}的轨迹，适合在{industry}领域发挥才能。建议关注{opportunity}的机会，通过{development_way}来提升竞争力。",
		"妳具备{skill_type}的核心能力，在{work_environment}中能够展现优势。未来可以考虑向{direction}发展，重点培养{key_skill}技能。",
		"当前妳的事业运势处于{phase}阶段，{timing}是关键的转折点。把握{chance}的机会，可以在{field}领域获得突破。",
	},
	CategoryWealth: {
		"妳的财运呈现{wealth_pattern}的特点，适合{investment_style}的理财方式。建议在{timing}关注{investment_target}，通过{strategy}来积累财富。",
		"妳的主要财富来源倾向于{income_source}，具有{earning_trait}的赚钱能力。可以考虑开发{side_income}作为补充收入。",
		"妳在财务管理上展现{management_style}的特点，建议加强{weak_area}方面的规划。通过{improvement_way}可以提升财务状况。",
	},
	CategoryLove: {
		"妳在感情中展现{love_style}的特质，倾向于{relationship_pattern}的相处模式。理想的伴侣类型是{partner_type}，需要在{aspect}方面多加注意。",
		"妳的情感表达方式偏向{expression_style}，在{situation}中能够展现真实的自己。建议通过{communication_way}来增进感情交流。",
		"妳对婚姻家庭有着{family_view}的期待，适合{marriage_timing}建立稳定关系。在{family_role}方面能够发挥重要作用。",
	},
	CategoryHealth: {
		"妳的体质特点偏向{constitution_type}，需要特别关注{health_focus}方面的保养。建议采用{health_method}的养生方式。",
		"妳适合{lifestyle_pattern}的生活节奏，在{time_period}进行{activity}对健康最为有益。注意避免{health_risk}的不良习惯。",
		"妳的情绪状态与{emotion_pattern}相关，建议通过{emotion_method}来调节心理健康。在{stress_situation}时要特别注意情绪管理。",
	},
	CategoryAdvice: {
		"今日适合进行{action_type}的活动，在{time_range}是最佳时机。建议{specific_action}，这将为妳带来{benefit}的效果。",
		"保持{mindset}的心态是今日的关键，面对{challenge}时要{attitude}。通过{mental_practice}可以提升内在能量。",
		"今日妳的能量适合{energy_activity}，避免{avoid_activity}。在{environment}中进行{practice}能够最大化能量效果。",
	},
}

var variablePools = map[string][]string{
	// 性格
	"season":              {"初春", "盛夏", "金秋", "寒冬", "晚春", "初夏", "深秋", "暖冬"},
	"nature":              {"雨后森林", "晨曦海岸", "雪山之巅", "花田小径", "竹林深处", "溪流石畔"},
	"quality":             {"清新", "温润", "坚韧", "灵动", "沉稳", "优雅", "纯净", "深邃"},
	"strength":            {"生长", "包容", "突破", "创造", "守护", "转化", "净化", "觉醒"},
	"environment":         {"喧嚣", "宁静", "变化", "挑战", "机遇", "困境", "繁华", "简朴"},
	"trait":               {"敏锐", "深刻", "细腻", "直觉", "理性", "感性", "独特", "全面"},
	"art_style":           {"印象派", "抽象派", "写实主义", "浪漫主义", "现代主义", "极简主义"},
	"color_tone":          {"温暖明亮", "深沉内敛", "清新淡雅", "浓烈鲜明", "柔和细腻"},
	"creative_trait":      {"天马行空", "细致入微", "大胆创新", "精益求精", "灵感丰富"},
	"inspiration":         {"日常细节", "旅途见闻", "梦境碎片", "自然光影", "人际故事"},
	"philosophy":          {"老庄哲学", "禅宗思想", "西方哲学", "人文主义", "存在主义"},
	"wisdom_trait":        {"超然", "通透", "深邃", "敏锐", "包容", "理性"},
	"thinking_way":        {"直觉感知", "逻辑分析", "整体思维", "细节观察", "创新思考"},
	"life_aspect":         {"人际关系", "职业选择", "自我成长", "日常生活", "情感世界"},
	"energy_pattern":      {"螺旋上升", "波浪起伏", "稳定流动", "脉冲跳跃", "循环往复"},
	"energy_trait":        {"温和治愈", "强劲有力", "灵动变化", "深沉稳定", "清新活跃"},
	"power_source":        {"内在光芒", "自然能量", "智慧之光", "爱的力量", "创造之火"},
	"positive_effect":     {"安定人心", "激发灵感", "温暖治愈", "振奋鼓舞", "豁然开朗"},
	"element":             {"木", "火", "土", "金", "水"},
	"element_trait":       {"生机勃勃", "热情洋溢", "稳重踏实", "锐利精准", "智慧深邃"},
	"element_environment": {"自然环境", "社交场合", "稳定环境", "竞争环境", "学习环境"},
	"element_power":       {"成长治愈", "感染激励", "承载包容", "决断执行", "洞察应变"},

	// 事业
	"career_pattern":   {"稳步攀升", "厚积薄发", "多线并进", "跨界融合", "深耕细作"},
	"industry":         {"文化创意", "科技研发", "教育咨询", "健康服务", "金融分析", "品牌传播"},
	"opportunity":      {"跨部门协作", "新项目孵化", "行业交流", "技能认证", "远程合作"},
	"development_way":  {"系统学习", "导师指引", "项目实践", "作品积累", "人脉拓展"},
	"skill_type":       {"统筹规划", "沟通表达", "数据洞察", "创意策划", "问题解决"},
	"work_environment": {"快节奏团队", "自由灵活的氛围", "专业严谨的机构", "初创公司", "跨文化团队"},
	"direction":        {"管理岗位", "专家路线", "自主创业", "产品方向", "顾问角色"},
	"key_skill":        {"谈判", "写作", "数据分析", "公众演讲", "项目管理"},
	"phase":            {"积累", "上升", "调整", "突破", "收获"},
	"timing":           {"本季度", "下半年", "年末", "春季", "近三个月"},
	"chance":           {"岗位调整", "合作邀约", "进修深造", "副业试水", "平台转换"},
	"field":            {"专业技术", "团队管理", "内容创作", "商务拓展", "产品设计"},

	// 财运
	"wealth_pattern":    {"稳健积累", "细水长流", "先蓄后发", "多元开源", "厚积薄发"},
	"investment_style":  {"稳健保守", "均衡配置", "长期定投", "价值导向", "分散布局"},
	"investment_target": {"指数基金", "债券类产品", "自我提升", "储蓄计划", "行业龙头"},
	"strategy":          {"定期复盘", "分散配置", "记账预算", "设定止损", "长期持有"},
	"income_source":     {"专业技能", "稳定薪资", "创意作品", "咨询服务", "合作分成"},
	"earning_trait":     {"踏实稳定", "灵活多变", "厚积薄发", "眼光独到", "执行高效"},
	"side_income":       {"知识分享", "手作创意", "线上课程", "写作投稿", "摄影接单"},
	"management_style":  {"谨慎理性", "计划周全", "灵活机动", "目标清晰", "量入为出"},
	"weak_area":         {"应急储备", "保险保障", "长期规划", "消费控制", "投资学习"},
	"improvement_way":   {"建立预算表", "自动储蓄", "学习理财知识", "定期体检账户", "设定储蓄目标"},

	// 感情
	"love_style":           {"温柔体贴", "真诚直接", "细腻敏感", "独立自主", "浪漫热情"},
	"relationship_pattern": {"相互成就", "平等尊重", "细水长流", "彼此独立", "共同成长"},
	"partner_type":         {"沉稳可靠", "幽默风趣", "志同道合", "温暖包容", "积极上进"},
	"aspect":               {"沟通表达", "个人空间", "情绪管理", "共同规划", "信任建立"},
	"expression_style":     {"含蓄内敛", "直接坦率", "行动证明", "文字表达", "细节关怀"},
	"situation":            {"深夜长谈", "共同旅行", "日常陪伴", "困难时刻", "节日仪式"},
	"communication_way":    {"定期深谈", "共同爱好", "书信留言", "一起运动", "分享日常"},
	"family_view":          {"温馨平等", "自由开放", "互相扶持", "简单纯粹", "充满仪式感"},
	"marriage_timing":      {"顺其自然时", "事业稳定后", "心智成熟后", "相知相惜后", "时机合适时"},
	"family_role":          {"情感支持", "家庭规划", "氛围营造", "决策参与", "共同成长"},

	// 健康
	"constitution_type": {"平和质", "气虚质", "阳虚质", "阴虚质", "气郁质"},
	"health_focus":      {"脾胃", "睡眠", "肩颈", "呼吸系统", "情绪"},
	"health_method":     {"温和运动", "规律作息", "食疗调养", "冥想放松", "户外散步"},
	"lifestyle_pattern": {"早睡早起", "张弛有度", "规律稳定", "动静结合", "慢节奏"},
	"time_period":       {"清晨", "午后", "傍晚", "睡前", "周末"},
	"activity":          {"瑜伽", "快走", "太极", "游泳", "拉伸"},
	"health_risk":       {"熬夜", "久坐", "暴饮暴食", "过度用眼", "情绪压抑"},
	"emotion_pattern":   {"季节变化", "工作节奏", "人际互动", "睡眠质量", "环境氛围"},
	"emotion_method":    {"写日记", "冥想", "音乐疗愈", "自然漫步", "倾诉交流"},
	"stress_situation":  {"任务繁重", "环境变动", "人际摩擦", "目标受阻", "身体疲惫"},

	// 建议
	"action_type":     {"创造性", "社交类", "整理收纳", "学习类", "户外"},
	"time_range":      {"上午九点到十一点", "午后两点到四点", "傍晚六点前后", "清晨七点前", "晚间八点后"},
	"specific_action": {"整理一份待办清单", "给老朋友发一条问候", "读二十页书", "清理桌面与文件", "散步半小时"},
	"benefit":         {"思路清晰", "心情愉悦", "能量充盈", "效率提升", "内心平静"},
	"mindset":         {"从容", "开放", "专注", "感恩", "乐观"},
	"challenge":       {"突发变动", "意见分歧", "繁琐事务", "时间压力", "不确定性"},
	"attitude":        {"先稳住节奏", "保持好奇", "换个角度看", "温和而坚定", "专注当下"},
	"mental_practice": {"正念呼吸", "感恩记录", "冥想十分钟", "自我对话", "静坐放空"},
	"energy_activity": {"专注工作", "轻松社交", "创意输出", "学习充电", "整理规划"},
	"avoid_activity":  {"冲动消费", "过度熬夜", "情绪化决策", "信息过载", "无谓争论"},
	"practice":        {"深呼吸", "伸展运动", "冥想", "书写", "散步"},
}

var vitaminPool = []string{
	"多巴胺森林漫步", "血清素音乐疗愈", "内啡肽运动释放", "催产素温暖拥抱",
	"褪黑素深度冥想", "肾上腺素冒险体验", "去甲肾上腺素专注力提升", "乙酰胆碱学习增强",
}

var colorPool = []string{
	"鼠尾草绿 (Sage Green)", "暖杏仁米 (Warm Almond)", "薄雾蓝 (Misty Blue)",
	"桃花粉 (Peach Blossom)", "象牙白 (Ivory White)", "深海蓝 (Deep Ocean)",
	"日落橙 (Sunset Orange)", "薰衣草紫 (Lavender Purple)",
}

var balanceElements = []string{"木", "火", "土", "金", "水"}

var balanceStates = []string{"充盈", "平衡", "待补", "过旺", "不足"}

// moneyAdvicePool 财运卡片的标题、方位、时间与建议；advice 由财运模板生成
var moneyAdvicePool = []Wealth{
	{
		Title:          "今日财运指南",
		LuckyDirection: "东南方",
		LuckyTime:      "14:00-16:00",
		Suggestion:     "理财建议：定投基金或储蓄计划",
	},
	{
		Title:          "财富能量提升",
		LuckyDirection: "正南方",
		LuckyTime:      "10:00-12:00",
		Suggestion:     "投资建议：关注科技或新能源板块",
	},
	{
		Title:          "财务规划优化",
		LuckyDirection: "正北方",
		LuckyTime:      "16:00-18:00",
		Suggestion:     "规划建议：建立应急基金和退休储蓄",
	},
}

var morningPool = []HealthItem{
	{Action: "饮一杯温润的茉莉花茶", Benefit: "茉莉花香舒缓神经，温热的茶汤唤醒脾胃，让身体在清晨平稳进入状态。"},
	{Action: "十分钟舒展瑜伽", Benefit: "拉伸脊柱与肩颈，促进血液循环，帮助妳以轻盈的身体开启新的一天。"},
	{Action: "窗边晒五分钟晨光", Benefit: "晨光帮助调节生物钟，提升血清素水平，让情绪更加明朗稳定。"},
	{Action: "一碗温热的小米粥", Benefit: "小米养胃安神，温和补充能量，适合作为一天里的第一份滋养。"},
	{Action: "赤足踩草地或地板慢走", Benefit: "唤醒足底感知，放松紧绷的小腿肌肉，让身心回到当下。"},
}

var flowPool = []HealthItem{
	{Action: "冥想与自然白噪音", Benefit: "在午后两点到三点聆听雨声或溪流声，帮助大脑从疲惫中恢复专注。"},
	{Action: "番茄钟专注工作法", Benefit: "上午十点到十二点以二十五分钟为一节专注投入，效率与成就感同步提升。"},
	{Action: "手写晨间笔记", Benefit: "清晨七点到八点写下三页随想，清空思绪，为一天的创造力留出空间。"},
	{Action: "傍晚慢跑", Benefit: "傍晚六点前后慢跑二十分钟，释放内啡肽，让身心进入轻松的心流状态。"},
	{Action: "睡前阅读纸质书", Benefit: "晚上九点到十点远离屏幕阅读半小时，帮助放松神经并提升睡眠质量。"},
}
