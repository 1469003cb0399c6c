package domain

import "strings"

// Tier es la clasificación de prioridad para las rotaciones.
type Tier int

const (
	TierDefault Tier = iota
	TierPriority
)

func (t Tier) String() string {
	if t == TierPriority {
		return "priority"
	}
	return "default"
}

// Participant es cualquiera que pueda subirse a la cola, venga de la
// plataforma que venga. La identidad (Key) lleva prefijo por plataforma:
// dos participantes de orígenes distintos nunca son la misma persona,
// aunque se llamen igual.
type Participant interface {
	DisplayName() string
	Key() string
}

// DiscordMember llega por Discord con su lista de roles resuelta en el
// momento del evento (nunca cacheada).
type DiscordMember struct {
	ID    string
	Name  string
	Roles []string
}

func (m DiscordMember) DisplayName() string { return m.Name }
func (m DiscordMember) Key() string         { return "discord:" + m.ID }

// TwitchUser llega por el chat de Twitch. Los flags vienen directo de los
// badges del mensaje; Follower es sólo informativo y no da prioridad.
type TwitchUser struct {
	Login      string
	Name       string
	Subscriber bool
	Follower   bool
}

func (u TwitchUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

func (u TwitchUser) Key() string { return "twitch:" + strings.ToLower(u.Login) }

// Classifier decide el tier de un participante. La keyword de suscriptor
// viene de configuración (ej: "訂閱") y se busca como substring en los
// nombres de rol de Discord.
type Classifier struct {
	SubscriberKeyword string
}

func (c Classifier) Tier(p Participant) Tier {
	switch v := p.(type) {
	case DiscordMember:
		if c.SubscriberKeyword == "" {
			return TierDefault
		}
		for _, role := range v.Roles {
			if strings.Contains(role, c.SubscriberKeyword) {
				return TierPriority
			}
		}
	case TwitchUser:
		if v.Subscriber {
			return TierPriority
		}
	}
	return TierDefault
}
