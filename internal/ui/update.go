package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moyugame/letter-rush/internal/protocol"
	"github.com/moyugame/letter-rush/internal/protocol/codec"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		handled, cmd := m.handleKeyPress(msg)
		if handled {
			return m, cmd
		}

	case ConnectedMsg:
		m.phase = PhaseJoinForm
		m.playerID = m.client.PlayerID
		m.playerName = m.client.PlayerName
		if m.nameInput.Value() == "" {
			m.nameInput.SetValue(m.playerName)
		}
		m.client.StartHeartbeat()
		m.client.OnLatencyUpdate = func(latency int64) { m.latency = latency }
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		m.error = fmt.Sprintf("连接已断开: %v\n\n按 ESC 退出", msg.Err)
		m.phase = PhaseConnecting

	case ServerMessage:
		cmds = append(cmds, m.handleServerMessage(msg.Msg))
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}

	case TickMsg:
		// 只为重绘倒计时；阶段有计时才继续 tick
		if m.state != nil && m.state.EndsAt > 0 {
			cmds = append(cmds, tick())
		}

	case ClearFlashMsg:
		m.flash = ""
	}

	cmds = append(cmds, m.updateInputs(msg))
	return m, tea.Batch(cmds...)
}

// updateInputs 把消息转发给当前获得焦点的输入框
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.phase {
	case PhaseJoinForm:
		if m.focus == fieldName {
			m.nameInput, cmd = m.nameInput.Update(msg)
		} else {
			m.roomInput, cmd = m.roomInput.Update(msg)
		}
	case PhaseInRoom:
		if m.state != nil && m.state.Phase == "playing" {
			m.wordInput, cmd = m.wordInput.Update(msg)
		}
	}
	return cmd
}

// handleKeyPress 处理按键，返回是否已消费
func (m *Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.client.Close()
		return true, tea.Quit
	}

	switch m.phase {
	case PhaseConnecting:
		if msg.Type == tea.KeyEsc {
			return true, tea.Quit
		}

	case PhaseJoinForm:
		switch msg.Type {
		case tea.KeyEsc:
			m.client.Close()
			return true, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			m.toggleJoinFocus()
			return true, nil
		case tea.KeyEnter:
			if m.focus == fieldName {
				m.toggleJoinFocus()
				return true, nil
			}
			return true, m.submitJoinForm()
		}

	case PhaseInRoom:
		return m.handleRoomKey(msg)

	case PhaseLeaderboard:
		// 任意键返回
		m.phase = PhaseInRoom
		return true, nil
	}
	return false, nil
}

// handleRoomKey 房间内按键
func (m *Model) handleRoomKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.state == nil {
		return false, nil
	}

	switch m.state.Phase {
	case "lobby":
		switch msg.String() {
		case "s":
			if err := m.client.Start(); err != nil {
				m.error = err.Error()
			}
			return true, nil
		case "esc", "q":
			return true, m.leaveRoom()
		}

	case "playing":
		switch msg.Type {
		case tea.KeyEsc:
			return true, m.leaveRoom()
		case tea.KeyLeft:
			if m.cursor > 0 {
				m.cursor--
			}
			return true, nil
		case tea.KeyRight:
			if m.cursor < len(m.state.Pool)-1 {
				m.cursor++
			}
			return true, nil
		case tea.KeySpace:
			if err := m.client.ClaimTile(m.state.RoomCode, m.cursor); err != nil {
				m.error = err.Error()
			}
			return true, nil
		case tea.KeyEnter:
			return true, m.submitWord()
		}
		// 其余按键（字母、退格）交给拼词输入框

	case "intermission":
		if msg.Type == tea.KeyEsc {
			return true, m.leaveRoom()
		}

	case "final":
		switch msg.String() {
		case "l":
			if err := m.client.GetLeaderboard(10); err != nil {
				m.error = err.Error()
			}
			return true, nil
		case "esc", "q":
			return true, m.leaveRoom()
		}
	}
	return false, nil
}

func (m *Model) toggleJoinFocus() {
	if m.focus == fieldName {
		m.focus = fieldRoom
		m.nameInput.Blur()
		m.roomInput.Focus()
	} else {
		m.focus = fieldName
		m.roomInput.Blur()
		m.nameInput.Focus()
	}
}

// submitJoinForm 提交加入表单
func (m *Model) submitJoinForm() tea.Cmd {
	room := m.roomInput.Value()
	if room == "" {
		m.error = "房间号不能为空"
		return nil
	}
	if err := m.client.Join(room, m.nameInput.Value()); err != nil {
		m.error = err.Error()
	}
	return nil
}

// submitWord 把拼词输入映射为手牌位置并提交
func (m *Model) submitWord() tea.Cmd {
	word := m.wordInput.Value()
	if word == "" {
		return nil
	}

	indices := bankIndicesFor(word, m.state.You.Bank)
	if indices == nil {
		m.flash = errorStyle.Render(fmt.Sprintf("手牌拼不出 %q", word))
		return m.clearFlashLater()
	}

	if err := m.client.SubmitWord(m.state.RoomCode, indices); err != nil {
		m.error = err.Error()
		return nil
	}
	m.wordInput.SetValue("")
	return nil
}

func (m *Model) leaveRoom() tea.Cmd {
	if err := m.client.LeaveRoom(); err != nil {
		m.error = err.Error()
	}
	m.state = nil
	m.phase = PhaseJoinForm
	m.focus = fieldRoom
	m.nameInput.Blur()
	m.roomInput.Focus()
	return nil
}

// handleServerMessage 处理服务器推送
func (m *Model) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	case protocol.MsgState:
		state, err := codec.ParsePayload[protocol.StatePayload](msg)
		if err != nil {
			return nil
		}
		prevPhase := ""
		if m.state != nil {
			prevPhase = m.state.Phase
		}
		m.state = state
		m.phase = PhaseInRoom
		m.error = ""
		if m.cursor >= len(state.Pool) {
			m.cursor = max(0, len(state.Pool)-1)
		}
		if state.Phase != prevPhase {
			m.wordInput.SetValue("")
			if state.Phase == "playing" {
				m.wordInput.Focus()
			} else {
				m.wordInput.Blur()
			}
		}
		if state.EndsAt > 0 {
			return tick()
		}
		return nil

	case protocol.MsgTileClaimedFx:
		if fx, err := codec.ParsePayload[protocol.TileClaimedFxPayload](msg); err == nil {
			m.flash = flashStyle.Render(fmt.Sprintf("⚡ %s 抢走了 %s", fx.PlayerName, fx.Letter))
			return m.clearFlashLater()
		}

	case protocol.MsgWordAccepted:
		if w, err := codec.ParsePayload[protocol.WordAcceptedPayload](msg); err == nil {
			m.flash = flashStyle.Render(fmt.Sprintf("✅ %s +%d 分", w.Word, w.Points))
			return m.clearFlashLater()
		}

	case protocol.MsgInvalidWord:
		if w, err := codec.ParsePayload[protocol.InvalidWordPayload](msg); err == nil {
			m.flash = errorStyle.Render(fmt.Sprintf("❌ %s: %s", w.Word, w.Reason))
			return m.clearFlashLater()
		}

	case protocol.MsgLeaderboardResult:
		if lb, err := codec.ParsePayload[protocol.LeaderboardResultPayload](msg); err == nil {
			m.leaderboard = lb.Entries
			m.phase = PhaseLeaderboard
		}

	case protocol.MsgError:
		if e, err := codec.ParsePayload[protocol.ErrorPayload](msg); err == nil {
			m.error = e.Message
		}
	}
	return nil
}

func (m *Model) clearFlashLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}
