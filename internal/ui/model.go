// Package ui 实现基于 Bubble Tea 的终端界面。
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moyugame/letter-rush/internal/client"
	"github.com/moyugame/letter-rush/internal/protocol"
)

// Phase 界面阶段
type Phase int

const (
	PhaseConnecting Phase = iota
	PhaseJoinForm
	PhaseInRoom
	PhaseLeaderboard
)

// ServerMessage 服务器消息（用于 tea.Msg）
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg 连接成功消息
type ConnectedMsg struct{}

// ConnectionErrorMsg 连接错误消息
type ConnectionErrorMsg struct {
	Err error
}

// TickMsg 倒计时刷新
type TickMsg time.Time

// ClearFlashMsg 清除瞬时提示
type ClearFlashMsg struct{}

// joinField 加入表单的焦点位置
type joinField int

const (
	fieldName joinField = iota
	fieldRoom
)

// Model 客户端主 model
type Model struct {
	client *client.Client
	phase  Phase
	error  string

	// 玩家信息
	playerID   string
	playerName string

	// 加入表单
	nameInput textinput.Model
	roomInput textinput.Model
	focus     joinField

	// 房间状态（服务器推送的最新快照）
	state *protocol.StatePayload

	// 拼词输入与字母池光标
	wordInput textinput.Model
	cursor    int

	// 瞬时提示（抢字母特效、计分、无效单词）
	flash string

	// 全服排行榜
	leaderboard []protocol.GlobalLeaderboardEntry

	// 网络延迟（毫秒）
	latency int64

	width  int
	height int
}

// NewModel 创建客户端 model
func NewModel(serverURL string) *Model {
	name := textinput.New()
	name.Placeholder = "你的昵称..."
	name.CharLimit = 24
	name.Width = 24
	name.Focus()

	room := textinput.New()
	room.Placeholder = "房间号..."
	room.CharLimit = 10
	room.Width = 24

	word := textinput.New()
	word.Placeholder = "输入单词后回车提交..."
	word.CharLimit = 7
	word.Width = 24

	return &Model{
		client:    client.NewClient(serverURL),
		phase:     PhaseConnecting,
		nameInput: name,
		roomInput: room,
		wordInput: word,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.connectToServer(), textinput.Blink)
}

// connectToServer 连接服务器
func (m *Model) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

// listenForMessages 监听服务器消息
func (m *Model) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

// tick 每秒刷新一次倒计时
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// bankIndicesFor 把输入的单词映射为手牌位置序列。
// 每个字母消耗一个尚未使用的手牌，凑不齐时返回 nil。
func bankIndicesFor(word string, bank []string) []int {
	if word == "" {
		return nil
	}

	used := make([]bool, len(bank))
	indices := make([]int, 0, len(word))
	for _, r := range strings.ToUpper(word) {
		found := -1
		for i, letter := range bank {
			if !used[i] && letter == string(r) {
				found = i
				break
			}
		}
		if found < 0 {
			return nil
		}
		used[found] = true
		indices = append(indices, found)
	}
	return indices
}
