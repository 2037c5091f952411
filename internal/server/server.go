package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/moyugame/letter-rush/internal/config"
	"github.com/moyugame/letter-rush/internal/dictionary"
	"github.com/moyugame/letter-rush/internal/game/room"
	"github.com/moyugame/letter-rush/internal/server/handler"
	"github.com/moyugame/letter-rush/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
	EnableCompression: false,
}

// Server WebSocket 服务器
type Server struct {
	config      *config.Config
	redis       *redis.Client // redis.enabled=false 时为 nil
	leaderboard *storage.LeaderboardManager
	roomManager *room.RoomManager
	handler     *handler.Handler

	clients   map[string]*Client
	clientsMu sync.RWMutex

	httpServer *http.Server
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	dict, err := dictionary.Load(cfg.Game.DictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("加载词典失败: %w", err)
	}
	log.Printf("📖 词典加载完成，共 %d 个单词", dict.Len())

	s := &Server{
		config:  cfg,
		clients: make(map[string]*Client),
	}

	// Redis 仅用于全服排行榜，可整体关闭
	var stats room.StatsRecorder
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis 连接失败: %w", err)
		}

		s.redis = rdb
		s.leaderboard = storage.NewLeaderboardManager(rdb)
		stats = s.leaderboard
		log.Printf("📊 全服排行榜已启用 (redis: %s)", cfg.Redis.Addr)
	}

	roomCfg := room.DefaultConfig()
	roomCfg.Rounds = cfg.Game.Rounds
	roomCfg.RoundDuration = cfg.Game.RoundDuration()
	roomCfg.BreakDuration = cfg.Game.BreakDuration()
	roomCfg.MaxPlayers = cfg.Game.MaxPlayers
	roomCfg.ClaimCooldown = cfg.Game.ClaimCooldown()

	s.roomManager = room.NewRoomManager(roomCfg, dict, stats)

	s.handler = handler.NewHandler(handler.HandlerDeps{
		RoomManager: s.roomManager,
		Leaderboard: s.leaderboard,
	})

	return s, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	log.Printf("🚀 服务器启动在 ws://%s/ws (CPU核心数: %d)", addr, runtime.NumCPU())
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown 关闭服务器：断开所有客户端并释放 Redis 连接
func (s *Server) Shutdown() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	if s.redis != nil {
		_ = s.redis.Close()
	}

	log.Println("服务器已关闭")
}

// GetOnlineCount 当前在线人数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}
