package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jose-valero/ride-queue-bot/internal/domain"
)

// Strings visibles al usuario, en el idioma de la comunidad. Los dos
// adapters responden con estas mismas funciones, así un anuncio
// disparado desde Twitch se lee igual que uno disparado desde Discord.

func MsgUnauthorized() string { return "🔒 你沒有權限使用這個指令。" }

func MsgWrongChannel(channelID string) string {
	return fmt.Sprintf("📢 指令請到 <#%s> 使用。", channelID)
}

func MsgGateClosed() string { return "🚧 現在是關單狀態,等開單再上車。" }

func MsgOpened(changed bool) string {
	if !changed {
		return "ℹ️ 已經開單了。"
	}
	return "🚗 開單啦!輸入 !上車 排隊。"
}

func MsgShut(changed bool) string {
	if !changed {
		return "ℹ️ 已經關單了。"
	}
	return "🔒 關單,暫停排隊。"
}

func MsgJoined(p domain.Participant, pos int) string {
	return fmt.Sprintf("✅ %s 上車,目前第 %d 位。", p.DisplayName(), pos)
}

func MsgAlreadyQueued(p domain.Participant, pos int) string {
	return fmt.Sprintf("ℹ️ %s 已經在車上(第 %d 位)。", p.DisplayName(), pos)
}

func MsgLeft(p domain.Participant, remaining int) string {
	return fmt.Sprintf("👋 %s 下車,車上還有 %d 位。", p.DisplayName(), remaining)
}

func MsgNotQueued(p domain.Participant) string {
	return fmt.Sprintf("ℹ️ %s 不在車上。", p.DisplayName())
}

func MsgEmptyQueue() string { return "ℹ️ 目前沒有人排隊。" }

func MsgList(entries []Entry) string {
	if len(entries) == 0 {
		return MsgEmptyQueue()
	}
	var b strings.Builder
	b.WriteString("📋 目前車隊:")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("\n%d. %s", e.Pos, e.P.DisplayName()))
		if e.Tier == domain.TierPriority {
			b.WriteString(" ⭐")
		}
	}
	return b.String()
}

func MsgStatus(st Status) string {
	if len(st.Current) == 0 {
		return MsgEmptyQueue()
	}
	out := "🎮 本輪:" + joinNames(st.Current)
	if len(st.Next) > 0 {
		out += "\n⏭️ 下一輪:" + joinNames(st.Next)
	}
	if st.Overflow > 0 {
		out += fmt.Sprintf("\n➕ 之後還有 %d 位", st.Overflow)
	}
	return out
}

func MsgRotateEmpty() string { return "ℹ️ 車上沒人,發不了車。" }

func MsgRotation(res RotateResult) string {
	return fmt.Sprintf("🚀 發車!本輪上車:%s\n還有 %d 位排隊中。",
		joinNames(res.Advancing), res.Remaining)
}

func MsgCleared(n int) string {
	return fmt.Sprintf("🧹 已清空車隊(移除 %d 位)。", n)
}

func MsgWhoAmI(p domain.Participant, tier domain.Tier) string {
	switch v := p.(type) {
	case domain.TwitchUser:
		return fmt.Sprintf("👤 %s|Twitch|%s|訂閱:%s|追隨:%s",
			v.DisplayName(), tierLabel(tier), yesNo(v.Subscriber), yesNo(v.Follower))
	default:
		return fmt.Sprintf("👤 %s|Discord|%s", p.DisplayName(), tierLabel(tier))
	}
}

// Mensajes del !抽 (formato heredado del bot original).

func MsgNotInVoice() string { return "請先進入語音頻道再使用 !抽 指令。" }

func MsgVoiceTooFew() string { return "目前語音裡人太少。" }

func MsgTeams(now time.Time, red, blue []string) string {
	return fmt.Sprintf("LOL 分組結果 (%s)\n紅隊: %s\n藍隊: %s",
		now.Format("2006/01/02 15:04"),
		strings.Join(red, ", "), strings.Join(blue, ", "))
}

func joinNames(ps []domain.Participant) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.DisplayName()
	}
	return strings.Join(names, "、")
}

func tierLabel(t domain.Tier) string {
	if t == domain.TierPriority {
		return "優先"
	}
	return "一般"
}

func yesNo(b bool) string {
	if b {
		return "是"
	}
	return "否"
}
