package room

import (
	"log"
	"sync"

	"github.com/moyugame/letter-rush/internal/apperrors"
	"github.com/moyugame/letter-rush/internal/dictionary"
	"github.com/moyugame/letter-rush/internal/types"
)

// RoomManager 房间管理器。
// 房间在第一次 Join 未知房间号时惰性创建，最后一名玩家离开时销毁。
// 加锁顺序固定为 管理器锁 → 房间锁，Join/Leave 全程持管理器锁，
// 保证查找与销毁不会交错。
type RoomManager struct {
	cfg   Config
	dict  *dictionary.Dictionary
	stats StatsRecorder

	rooms map[string]*Room
	mu    sync.Mutex
}

// NewRoomManager 创建房间管理器
func NewRoomManager(cfg Config, dict *dictionary.Dictionary, stats StatsRecorder) *RoomManager {
	return &RoomManager{
		cfg:   cfg,
		dict:  dict,
		stats: stats,
		rooms: make(map[string]*Room),
	}
}

// JoinRoom 加入房间，房间不存在时创建。
// 已是房间成员时为幂等操作（仅刷新状态推送）。
func (rm *RoomManager) JoinRoom(client types.ClientInterface, code, name string) error {
	code = NormalizeCode(code)
	if code == "" {
		return apperrors.ErrBadRoomCode
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if !exists {
		room = newRoom(code, rm.cfg, rm.dict, rm.stats)
		rm.rooms[code] = room
		log.Printf("🏠 房间 %s 已创建", code)
	}

	return room.join(client, name)
}

// LeaveRoom 离开房间。
// 离开的是房主时按加入顺序顺延房主；房间空了则取消全部计时器并销毁。
func (rm *RoomManager) LeaveRoom(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if !exists {
		return
	}

	if room.leave(client.GetID()) {
		delete(rm.rooms, code)
		log.Printf("🏠 房间 %s 已解散", code)
	}
	client.SetRoom("")
}

// GetRoom 获取房间，不存在时返回 nil
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.rooms[NormalizeCode(code)]
}

// RoomCount 当前房间数
func (rm *RoomManager) RoomCount() int {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return len(rm.rooms)
}

// join 注册玩家，持房间锁执行
func (r *Room) join(client types.ClientInterface, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return apperrors.ErrRoomNotFound
	}

	id := client.GetID()
	if p, ok := r.Players[id]; ok {
		// 重复加入：刷新连接引用并重推状态
		p.Client = client
		client.SetRoom(r.Code)
		r.broadcastStateLocked()
		return nil
	}

	if r.Phase != PhaseLobby {
		return apperrors.ErrGameStarted
	}
	if len(r.Players) >= r.cfg.MaxPlayers {
		return apperrors.ErrRoomFull
	}

	r.Players[id] = &Player{
		Client: client,
		Name:   sanitizeName(name),
	}
	r.Order = append(r.Order, id)
	if r.HostID == "" {
		r.HostID = id
	}
	client.SetRoom(r.Code)

	log.Printf("👤 玩家 %s 加入房间 %s (%d/%d)", r.Players[id].Name, r.Code, len(r.Players), r.cfg.MaxPlayers)

	r.broadcastStateLocked()
	return nil
}

// leave 移除玩家，返回房间是否已空（空房间由管理器从表中删除）
func (r *Room) leave(id string) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.Players[id]
	if !ok {
		return false
	}

	delete(r.Players, id)
	for i, pid := range r.Order {
		if pid == id {
			r.Order = append(r.Order[:i], r.Order[i+1:]...)
			break
		}
	}

	// 房主顺延：加入顺序中剩下的第一人
	if r.HostID == id {
		if len(r.Order) > 0 {
			r.HostID = r.Order[0]
		} else {
			r.HostID = ""
		}
	}

	log.Printf("👋 玩家 %s 离开房间 %s", p.Name, r.Code)

	if len(r.Players) == 0 {
		r.stopAllTimersLocked()
		r.closed = true
		return true
	}

	r.broadcastStateLocked()
	return false
}
