package service

import (
	"strings"

	"github.com/jose-valero/ride-queue-bot/internal/domain"
)

// PolicyService responde "¿este participante puede usar comandos de
// admin?". La autorización es por roles y por lo tanto sólo aplica a
// Discord: el chat de Twitch no trae lista de roles, así que un
// TwitchUser nunca queda autorizado (restricción heredada, mantenela).
type PolicyService struct {
	exact    []string
	keywords []string
}

// NewPolicyService recibe los nombres de rol exactos y las keywords de
// matching difuso (ej: "管理"). Ambas listas vienen de configuración.
func NewPolicyService(exact, keywords []string) *PolicyService {
	return &PolicyService{exact: exact, keywords: keywords}
}

// IsAuthorized evalúa el snapshot de roles que trae el participante.
// Los roles se resuelven en el adapter al momento del evento, así que
// acá nunca miramos datos viejos.
func (s *PolicyService) IsAuthorized(p domain.Participant) bool {
	m, ok := p.(domain.DiscordMember)
	if !ok {
		return false
	}
	for _, role := range m.Roles {
		for _, want := range s.exact {
			if role == want {
				return true
			}
		}
		for _, kw := range s.keywords {
			if kw != "" && strings.Contains(role, kw) {
				return true
			}
		}
	}
	return false
}
