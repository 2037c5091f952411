// Package letters 实现字母抽取、字母分值与单词计分规则。
package letters

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Alphabet 游戏使用的 26 个大写字母
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// letterWeights 字母抽取权重（近似英语字母频率，参考 Scrabble 牌面分布）
var letterWeights = [26]int{
	9,  // A
	2,  // B
	2,  // C
	4,  // D
	12, // E
	2,  // F
	3,  // G
	2,  // H
	9,  // I
	1,  // J
	1,  // K
	4,  // L
	2,  // M
	6,  // N
	8,  // O
	2,  // P
	1,  // Q
	6,  // R
	4,  // S
	6,  // T
	4,  // U
	2,  // V
	2,  // W
	1,  // X
	2,  // Y
	1,  // Z
}

// 分值分三档，覆盖全部 26 个字母
const (
	tierCommon = "AEIOULNSTRDG" // 10 分
	tierMedium = "BCMPFHVWY"    // 20 分
	tierRare   = "KJXQZ"        // 30 分
)

var (
	letterValues [26]int
	totalWeight  int
)

func init() {
	for _, c := range tierCommon {
		letterValues[c-'A'] = 10
	}
	for _, c := range tierMedium {
		letterValues[c-'A'] = 20
	}
	for _, c := range tierRare {
		letterValues[c-'A'] = 30
	}
	for _, w := range letterWeights {
		totalWeight += w
	}
}

// Draw 按权重随机抽取一个字母
func Draw() string {
	n := rand.IntN(totalWeight)
	for i, w := range letterWeights {
		if n < w {
			return string(Alphabet[i])
		}
		n -= w
	}
	// 不可达，权重和已校验
	return "E"
}

// Value 返回字母分值，非字母返回 0
func Value(letter string) int {
	if len(letter) != 1 {
		return 0
	}
	c := letter[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0
	}
	return letterValues[c-'A']
}

// RoundMultipliers 每轮计分倍率，轮次越靠后倍率越高
var RoundMultipliers = []float64{1.0, 1.2, 1.5}

// Multiplier 返回指定轮次的倍率，越界时回退为 1.0
func Multiplier(roundIdx int) float64 {
	if roundIdx < 0 || roundIdx >= len(RoundMultipliers) {
		return 1.0
	}
	return RoundMultipliers[roundIdx]
}

// ScoreWord 计算单词得分：
//
//	round(字母分值和 × (1 + 0.20×长度) × 轮次倍率)
//
// 取整采用 math.Round（.5 远离零舍入）
func ScoreWord(word string, roundIdx int) int {
	base := 0
	for _, c := range strings.ToUpper(word) {
		base += Value(string(c))
	}
	bonus := 1.0 + 0.20*float64(len([]rune(word)))
	return int(math.Round(float64(base) * bonus * Multiplier(roundIdx)))
}
