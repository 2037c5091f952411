package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var b strings.Builder

	switch m.phase {
	case PhaseConnecting:
		b.WriteString(titleStyle("🔤 Letter Rush"))
		b.WriteString("\n\n正在连接服务器...\n")
	case PhaseJoinForm:
		b.WriteString(m.viewJoinForm())
	case PhaseInRoom:
		b.WriteString(m.viewRoom())
	case PhaseLeaderboard:
		b.WriteString(m.viewLeaderboard())
	}

	if m.error != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.error))
	}
	if m.latency > 0 {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(fmt.Sprintf("延迟: %dms", m.latency)))
	}

	return docStyle.Render(b.String())
}

func (m *Model) viewJoinForm() string {
	var b strings.Builder
	b.WriteString(titleStyle("🔤 Letter Rush"))
	b.WriteString("\n\n")
	b.WriteString("昵称:   " + m.nameInput.View() + "\n")
	b.WriteString("房间号: " + m.roomInput.View() + "\n\n")
	b.WriteString(hintStyle.Render("Tab 切换 · Enter 加入 · ESC 退出"))
	return b.String()
}

func (m *Model) viewRoom() string {
	if m.state == nil {
		return "等待房间状态..."
	}

	switch m.state.Phase {
	case "lobby":
		return m.viewLobby()
	case "playing":
		return m.viewPlaying()
	case "intermission":
		return m.viewScores("⏸ 本轮结束", hintStyle.Render(fmt.Sprintf("下一轮将在 %s 后开始", m.countdown())))
	case "final":
		return m.viewScores("🏁 游戏结束", hintStyle.Render("l 查看全服排行榜 · ESC 离开"))
	}
	return ""
}

func (m *Model) viewLobby() string {
	var b strings.Builder
	b.WriteString(titleStyle(fmt.Sprintf("房间 %s", m.state.RoomCode)))
	b.WriteString("\n\n")

	for _, p := range m.state.Players {
		line := "  " + playerStyle.Render(p.Name)
		if p.IsHost {
			line += " " + hostStyle.Render("👑 房主")
		}
		if p.ID == m.state.You.ID {
			line += hintStyle.Render(" (你)")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.state.HostID == m.state.You.ID {
		b.WriteString(hintStyle.Render("s 开始游戏 · ESC 离开"))
	} else {
		b.WriteString(hintStyle.Render("等待房主开始... · ESC 离开"))
	}
	return b.String()
}

func (m *Model) viewPlaying() string {
	var b strings.Builder
	b.WriteString(titleStyle(fmt.Sprintf("房间 %s · 第 %d 轮 (×%.1f) · 剩余 %s",
		m.state.RoomCode, m.state.Round+1, m.state.Multiplier, m.countdown())))
	b.WriteString("\n\n")

	// 公共字母池
	b.WriteString(m.renderPool())
	b.WriteString("\n\n")

	// 自己的手牌
	b.WriteString("手牌: " + renderBank(m.state.You.Bank))
	b.WriteString("\n\n")

	// 其他玩家的手牌数量
	for _, p := range m.state.Players {
		if p.ID == m.state.You.ID {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s 手牌 %d 张\n", playerStyle.Render(p.Name), p.BankSize))
	}

	b.WriteString("\n拼词: " + m.wordInput.View() + "\n")
	if m.flash != "" {
		b.WriteString(m.flash + "\n")
	}
	b.WriteString(hintStyle.Render("←/→ 移动 · 空格 抢字母 · Enter 提交单词 · ESC 离开"))
	return b.String()
}

// renderPool 渲染公共字母池，光标位置高亮
func (m *Model) renderPool() string {
	if len(m.state.Pool) == 0 {
		return hintStyle.Render("(字母池是空的，马上会有新字母...)")
	}

	tiles := make([]string, 0, len(m.state.Pool))
	for i, letter := range m.state.Pool {
		style := tileStyle
		if i == m.cursor {
			style = tileCursorStyle
		}
		tiles = append(tiles, style.Render(letter))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func renderBank(bank []string) string {
	if len(bank) == 0 {
		return hintStyle.Render("(空)")
	}
	tiles := make([]string, 0, len(bank))
	for _, letter := range bank {
		tiles = append(tiles, bankStyle.Render(letter))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// viewScores 休息与终局共用的计分板
func (m *Model) viewScores(title, footer string) string {
	var b strings.Builder
	b.WriteString(titleStyle(title))
	b.WriteString("\n\n")

	winners := make(map[string]bool, len(m.state.Leaders))
	for _, id := range m.state.Leaders {
		winners[id] = true
	}

	rows := make([]string, 0, len(m.state.Leaderboard))
	for i, row := range m.state.Leaderboard {
		line := fmt.Sprintf("%d. %-20s %s", i+1, row.Name, scoreStyle.Render(fmt.Sprintf("%d 分", row.Score)))
		if m.state.Phase == "final" && winners[row.PlayerID] {
			line += " 🏆"
		}
		rows = append(rows, line)
	}
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))

	if m.flash != "" {
		b.WriteString("\n" + m.flash)
	}
	b.WriteString("\n" + footer)
	return b.String()
}

func (m *Model) viewLeaderboard() string {
	var b strings.Builder
	b.WriteString(titleStyle("🌍 全服排行榜"))
	b.WriteString("\n\n")

	if len(m.leaderboard) == 0 {
		b.WriteString(hintStyle.Render("还没有战绩记录"))
	} else {
		rows := make([]string, 0, len(m.leaderboard))
		for _, e := range m.leaderboard {
			rows = append(rows, fmt.Sprintf("%2d. %-20s 总分 %-6d 场次 %-4d 单局最高 %d",
				e.Rank, e.PlayerName, e.TotalPoints, e.GamesPlayed, e.BestGame))
		}
		b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	}

	b.WriteString("\n" + hintStyle.Render("按任意键返回"))
	return b.String()
}

// countdown 当前阶段剩余时间
func (m *Model) countdown() string {
	if m.state == nil || m.state.EndsAt == 0 {
		return "--"
	}
	remaining := time.Until(time.UnixMilli(m.state.EndsAt))
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%ds", int(remaining.Round(time.Second).Seconds()))
}
