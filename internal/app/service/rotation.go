package service

import "github.com/jose-valero/ride-queue-bot/internal/domain"

// rotate arma la tanda que sale a partir de un snapshot. Los priority
// ocupan hasta dos asientos primero (en orden de llegada entre ellos) y
// el resto se llena re-escaneando el snapshot en orden, salteando a los
// ya elegidos.
//
// El recorte de la cola es POSICIONAL: siempre caen las primeras
// MaxPlayers posiciones, se haya subido quien se haya subido. Cuando un
// priority estaba más allá de la posición 4, la tanda y el recorte
// divergen — comportamiento heredado, no lo "arregles" sin avisar.
func rotate(snapshot []domain.Participant, cls domain.Classifier) (advancing, remaining []domain.Participant) {
	for _, p := range snapshot {
		if len(advancing) == prioritySlots {
			break
		}
		if cls.Tier(p) == domain.TierPriority {
			advancing = append(advancing, p)
		}
	}
	for _, p := range snapshot {
		if len(advancing) == MaxPlayers {
			break
		}
		if picked(advancing, p) {
			continue
		}
		advancing = append(advancing, p)
	}

	cut := min(MaxPlayers, len(snapshot))
	remaining = append([]domain.Participant(nil), snapshot[cut:]...)
	return advancing, remaining
}

func picked(list []domain.Participant, p domain.Participant) bool {
	for _, q := range list {
		if q.Key() == p.Key() {
			return true
		}
	}
	return false
}
