package room

import "context"

// GameResult 单局结束时每名玩家的战绩
type GameResult struct {
	PlayerID string
	Name     string
	Score    int
	Won      bool // 是否并列最高分
}

// StatsRecorder 全服战绩上报接口（由 Redis 排行榜实现，可缺省）
type StatsRecorder interface {
	RecordGame(ctx context.Context, results []GameResult) error
}
