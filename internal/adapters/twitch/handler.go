package twitch

import (
	"log"
	"strings"

	twitchirc "github.com/gempir/go-twitch-irc/v4"

	"github.com/jose-valero/ride-queue-bot/internal/app/service"
	"github.com/jose-valero/ride-queue-bot/internal/domain"
)

// Handler convierte líneas del chat de Twitch en comandos de la cola.
// Las respuestas NUNCA vuelven al chat de Twitch: la cola vive del lado
// de Discord, así que todo resultado sale anunciado por el Notifier
// hacia el canal de Discord.
type Handler struct {
	dispatch *service.Dispatcher
	guard    *service.Guard
	notify   service.Notifier
}

func NewHandler(dispatch *service.Dispatcher, guard *service.Guard, notify service.Notifier) *Handler {
	return &Handler{dispatch: dispatch, guard: guard, notify: notify}
}

func (h *Handler) HandleChat(m twitchirc.PrivateMessage) {
	cmd, ok := domain.ParseCommand(m.Message)
	if !ok || cmd == domain.CmdTeams {
		// !抽 necesita canal de voz, no existe de este lado
		return
	}

	// dedup por handle: cada usuario, un comando por ventana
	login := strings.ToLower(m.User.Name)
	if !h.guard.ShouldProcess(service.NamespaceTwitch, login) {
		log.Printf("dedup: twitch %s dentro de la ventana, ignorado", login)
		return
	}

	res := h.dispatch.Handle(cmd, toUser(m))
	if res.Reply != "" {
		h.notify.Announce(res.Reply)
	}
}

// toUser arma el TwitchUser desde los badges del mensaje. El estado de
// "follow" no viaja en los tags del IRC, queda en false.
func toUser(m twitchirc.PrivateMessage) domain.TwitchUser {
	name := m.User.DisplayName
	if name == "" {
		name = m.User.Name
	}
	return domain.TwitchUser{
		Login:      strings.ToLower(m.User.Name),
		Name:       name,
		Subscriber: m.User.Badges["subscriber"] > 0 || m.User.Badges["founder"] > 0,
		Follower:   false,
	}
}
