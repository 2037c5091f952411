package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置（仅用于全服排行榜，可关闭）
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	Rounds          int    `yaml:"rounds"`            // 总轮数
	RoundSeconds    int    `yaml:"round_seconds"`     // 每轮时长（秒）
	BreakSeconds    int    `yaml:"break_seconds"`     // 轮间休息时长（秒）
	MaxPlayers      int    `yaml:"max_players"`       // 房间人数上限
	ClaimCooldownMs int    `yaml:"claim_cooldown_ms"` // 抢字母冷却（毫秒）
	DictionaryPath  string `yaml:"dictionary_path"`   // 外部词表路径，空则使用内置词表
}

// RoundDuration 返回每轮时长
func (c *GameConfig) RoundDuration() time.Duration {
	return time.Duration(c.RoundSeconds) * time.Second
}

// BreakDuration 返回轮间休息时长
func (c *GameConfig) BreakDuration() time.Duration {
	return time.Duration(c.BreakSeconds) * time.Second
}

// ClaimCooldown 返回抢字母冷却时长
func (c *GameConfig) ClaimCooldown() time.Duration {
	return time.Duration(c.ClaimCooldownMs) * time.Millisecond
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1780
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.Rounds == 0 {
		cfg.Game.Rounds = 3
	}
	if cfg.Game.RoundSeconds == 0 {
		cfg.Game.RoundSeconds = 90
	}
	if cfg.Game.BreakSeconds == 0 {
		cfg.Game.BreakSeconds = 10
	}
	if cfg.Game.MaxPlayers == 0 {
		cfg.Game.MaxPlayers = 4
	}
	if cfg.Game.ClaimCooldownMs == 0 {
		cfg.Game.ClaimCooldownMs = 500
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 1780,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Game: GameConfig{
			Rounds:          3,
			RoundSeconds:    90,
			BreakSeconds:    10,
			MaxPlayers:      4,
			ClaimCooldownMs: 500,
		},
	}
}
