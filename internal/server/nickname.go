package server

import (
	"math/rand"
)

// 昵称词库
var (
	adjectives = []string{
		"手快的", "机智的", "冷静的", "博学的", "神速的",
		"淡定的", "狡猾的", "勤奋的", "暴躁的", "优雅的",
		"沉默的", "咬文嚼字的", "出口成章的", "眼疾手快的", "过目不忘的",
	}

	nouns = []string{
		"拼字家", "词霸", "抢字手", "小学霸", "字母猎人",
		"翻词典的猫", "背单词的狗", "鹦鹉", "猫头鹰", "啄木鸟",
		"松鼠", "仓鼠", "水獭", "章鱼", "考拉",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + noun
}
