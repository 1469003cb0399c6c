package discord

import (
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/ride-queue-bot/internal/app/service"
)

// !抽 — mezcla a los presentes del canal de voz del que pide y los parte
// en dos equipos. Sin estado, sin cola: puro entretenimiento.
func (r *Router) teamsMessage(m *discordgo.MessageCreate) string {
	vs, err := r.s.State.VoiceState(m.GuildID, m.Author.ID)
	if err != nil || vs == nil || vs.ChannelID == "" {
		return service.MsgNotInVoice()
	}
	members := r.voiceMembers(m.GuildID, vs.ChannelID)
	if len(members) < 2 {
		return service.MsgVoiceTooFew()
	}
	red, blue := splitTeams(members, rand.New(rand.NewSource(time.Now().UnixNano())))
	return service.MsgTeams(time.Now(), red, blue)
}

// voiceMembers junta los display names de los no-bots del canal de voz.
func (r *Router) voiceMembers(guildID, channelID string) []string {
	g, err := r.s.State.Guild(guildID)
	if err != nil || g == nil {
		return nil
	}
	var names []string
	for _, vs := range g.VoiceStates {
		if vs.ChannelID != channelID {
			continue
		}
		member, err := r.s.State.Member(guildID, vs.UserID)
		if err != nil || member == nil {
			member, err = r.s.GuildMember(guildID, vs.UserID)
			if err != nil || member == nil {
				continue
			}
		}
		if member.User != nil && member.User.Bot {
			continue
		}
		name := member.Nick
		if name == "" && member.User != nil {
			name = member.User.Username
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// splitTeams baraja y bisecta: dos mitades disjuntas que cubren a todos.
func splitTeams(names []string, rng *rand.Rand) (red, blue []string) {
	shuffled := append([]string(nil), names...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	half := len(shuffled) / 2
	return shuffled[:half], shuffled[half:]
}
