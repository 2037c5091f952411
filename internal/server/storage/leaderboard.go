// Package storage 提供基于 Redis 的全服战绩与排行榜存储。
// 房间状态只存在于内存，这里只落玩家的跨局累积数据。
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moyugame/letter-rush/internal/game/room"
)

const (
	// Redis key
	playerStatsKey = "letterrush:player:stats:"
	leaderboardKey = "letterrush:leaderboard:points"
)

// PlayerStats 玩家跨局累积统计
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	TotalPoints int `json:"total_points"` // 历史总得分
	GamesPlayed int `json:"games_played"` // 总场次
	Wins        int `json:"wins"`         // 夺冠次数（并列第一也算）
	BestGame    int `json:"best_game"`    // 单局最高分

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// LeaderboardEntry 全服排行榜条目
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	TotalPoints int    `json:"total_points"`
	GamesPlayed int    `json:"games_played"`
	BestGame    int    `json:"best_game"`
}

// LeaderboardManager 排行榜管理器，实现 room.StatsRecorder
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// GetPlayerStats 获取玩家统计，不存在时返回 (nil, nil)
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := lm.redis.Get(ctx, playerStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (lm *LeaderboardManager) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lm.redis.Set(ctx, playerStatsKey+stats.PlayerID, data, 0).Err()
}

// getOrCreateStats 获取或创建玩家统计
func (lm *LeaderboardManager) getOrCreateStats(ctx context.Context, playerID, playerName string) (*PlayerStats, error) {
	stats, err := lm.GetPlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:   playerID,
			PlayerName: playerName,
			CreatedAt:  time.Now().Unix(),
		}
	}
	return stats, nil
}

// RecordGame 记录一局战绩：每名玩家累积得分并刷新排行榜。
// 单个玩家失败不中断其余玩家的落盘，返回最后一个错误。
func (lm *LeaderboardManager) RecordGame(ctx context.Context, results []room.GameResult) error {
	var lastErr error
	for _, res := range results {
		if err := lm.recordPlayer(ctx, res); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (lm *LeaderboardManager) recordPlayer(ctx context.Context, res room.GameResult) error {
	stats, err := lm.getOrCreateStats(ctx, res.PlayerID, res.Name)
	if err != nil {
		return err
	}

	stats.PlayerName = res.Name
	stats.GamesPlayed++
	stats.TotalPoints += res.Score
	stats.LastPlayedAt = time.Now().Unix()
	if res.Won {
		stats.Wins++
	}
	if res.Score > stats.BestGame {
		stats.BestGame = res.Score
	}

	if err := lm.SavePlayerStats(ctx, stats); err != nil {
		return err
	}

	// 排行榜按历史总得分排序
	return lm.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.TotalPoints),
		Member: stats.PlayerID,
	}).Err()
}

// GetLeaderboard 获取全服排行榜（总得分从高到低）
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	results, err := lm.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		playerID, ok := result.Member.(string)
		if !ok {
			continue
		}

		stats, err := lm.GetPlayerStats(ctx, playerID)
		if err != nil || stats == nil {
			continue
		}

		entries = append(entries, LeaderboardEntry{
			Rank:        i + 1,
			PlayerID:    playerID,
			PlayerName:  stats.PlayerName,
			TotalPoints: int(result.Score),
			GamesPlayed: stats.GamesPlayed,
			BestGame:    stats.BestGame,
		})
	}
	return entries, nil
}

// GetPlayerRank 获取玩家排名（从 1 开始），未上榜返回 -1
func (lm *LeaderboardManager) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	rank, err := lm.redis.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil
}
