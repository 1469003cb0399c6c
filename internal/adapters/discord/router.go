package discord

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/ride-queue-bot/internal/app/service"
	"github.com/jose-valero/ride-queue-bot/internal/domain"
)

// Router escucha los mensajes del guild y despacha los comandos de la
// cola. Sólo el canal configurado es válido para comandos; en cualquier
// otro canal respondemos redirigiendo.
type Router struct {
	s         *discordgo.Session
	guildID   string
	channelID string

	dispatch *service.Dispatcher
	guard    *service.Guard
	limiter  *userLimiter
}

func NewRouter(s *discordgo.Session, guildID, channelID string, dispatch *service.Dispatcher, guard *service.Guard) *Router {
	return &Router{
		s:         s,
		guildID:   guildID,
		channelID: channelID,
		dispatch:  dispatch,
		guard:     guard,
		limiter:   newUserLimiter(2 * time.Second),
	}
}

func (r *Router) Handlers() {
	r.s.AddHandler(r.onMessageCreate)
}

func (r *Router) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID != r.guildID {
		return
	}
	cmd, ok := domain.ParseCommand(m.Content)
	if !ok {
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic en comando discord %q: %v", m.Content, rec)
		}
	}()

	// el gateway puede redeliverar el mismo mensaje; el ID no cambia
	if !r.guard.ShouldProcess(service.NamespaceDiscord, m.ID) {
		log.Printf("dedup: mensaje discord %s repetido, ignorado", m.ID)
		return
	}

	if m.ChannelID != r.channelID {
		r.reply(m.ChannelID, service.MsgWrongChannel(r.channelID))
		return
	}

	if !r.limiter.Allow(m.Author.ID) {
		return
	}

	if cmd == domain.CmdTeams {
		r.reply(m.ChannelID, r.teamsMessage(m))
		return
	}

	res := r.dispatch.Handle(cmd, r.participant(m))
	if res.Reply != "" {
		r.reply(m.ChannelID, res.Reply)
	}
}

// participant arma el DiscordMember con los roles resueltos AHORA, no
// con un snapshot viejo: si le sacaron el rol hace un segundo, acá ya
// no lo tiene.
func (r *Router) participant(m *discordgo.MessageCreate) domain.DiscordMember {
	name := m.Author.Username
	var roleIDs []string
	if m.Member != nil {
		if m.Member.Nick != "" {
			name = m.Member.Nick
		}
		roleIDs = m.Member.Roles
	}
	return domain.DiscordMember{
		ID:    m.Author.ID,
		Name:  name,
		Roles: r.roleNames(roleIDs),
	}
}

// roleNames resuelve IDs de rol a nombres: primero el state, y si no
// está, un fetch al REST que de paso calienta el cache.
func (r *Router) roleNames(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	byID := map[string]string{}
	for _, id := range ids {
		if role, err := r.s.State.Role(r.guildID, id); err == nil && role != nil {
			byID[id] = role.Name
		}
	}
	if len(byID) < len(ids) {
		if roles, err := r.s.GuildRoles(r.guildID); err == nil {
			for _, role := range roles {
				byID[role.ID] = role.Name
			}
		}
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// reply es best-effort: si Discord no quiere, queda en el log y ya.
func (r *Router) reply(channelID, msg string) {
	if _, err := r.s.ChannelMessageSend(channelID, msg); err != nil {
		log.Printf("discord send: %v", err)
	}
}
