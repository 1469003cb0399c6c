package service

import (
	"log"

	"github.com/jose-valero/ride-queue-bot/internal/domain"
)

// Dispatcher conecta un comando ya parseado con la cola y arma la
// respuesta. Los dos adapters comparten esta pieza para que las dos
// superficies se comporten idéntico.
type Dispatcher struct {
	queue  *QueueService
	policy *PolicyService
	cls    domain.Classifier
	notify Notifier
}

func NewDispatcher(queue *QueueService, policy *PolicyService, cls domain.Classifier, notify Notifier) *Dispatcher {
	return &Dispatcher{queue: queue, policy: policy, cls: cls, notify: notify}
}

// Result es lo que el adapter manda de vuelta a su superficie de origen.
// Reply vacío = no hay nada que responder (el anuncio, si hubo, ya salió
// por el Notifier).
type Result struct {
	Reply string
}

// Handle ejecuta el comando. La mutación y el anuncio no son
// transaccionales: si el anuncio falla en el transporte, el estado queda
// como quedó.
func (d *Dispatcher) Handle(cmd domain.Command, p domain.Participant) Result {
	switch cmd {
	case domain.CmdOpenQueue:
		if !d.policy.IsAuthorized(p) {
			return Result{Reply: MsgUnauthorized()}
		}
		return Result{Reply: MsgOpened(d.queue.SetOpen(true))}

	case domain.CmdCloseQueue:
		if !d.policy.IsAuthorized(p) {
			return Result{Reply: MsgUnauthorized()}
		}
		return Result{Reply: MsgShut(d.queue.SetOpen(false))}

	case domain.CmdJoin:
		out, pos := d.queue.Join(p)
		switch out {
		case JoinClosed:
			return Result{Reply: MsgGateClosed()}
		case JoinAlready:
			return Result{Reply: MsgAlreadyQueued(p, pos)}
		default:
			return Result{Reply: MsgJoined(p, pos)}
		}

	case domain.CmdLeave:
		out, remaining := d.queue.Leave(p)
		switch out {
		case LeaveClosed:
			return Result{Reply: MsgGateClosed()}
		case LeaveNotFound:
			return Result{Reply: MsgNotQueued(p)}
		default:
			return Result{Reply: MsgLeft(p, remaining)}
		}

	case domain.CmdList:
		entries, ok := d.queue.List()
		if !ok {
			return Result{Reply: MsgGateClosed()}
		}
		return Result{Reply: MsgList(entries)}

	case domain.CmdStatus:
		st, ok := d.queue.Status()
		if !ok {
			return Result{Reply: MsgGateClosed()}
		}
		return Result{Reply: MsgStatus(st)}

	case domain.CmdRotate:
		if !d.policy.IsAuthorized(p) {
			return Result{Reply: MsgUnauthorized()}
		}
		res, ok := d.queue.Rotate()
		if !ok {
			return Result{Reply: MsgRotateEmpty()}
		}
		// el anuncio va siempre a la superficie designada, sin importar
		// desde qué plataforma se disparó
		d.notify.Announce(MsgRotation(res))
		return Result{}

	case domain.CmdClear:
		if !d.policy.IsAuthorized(p) {
			return Result{Reply: MsgUnauthorized()}
		}
		return Result{Reply: MsgCleared(d.queue.Clear())}

	case domain.CmdWhoAmI:
		return Result{Reply: MsgWhoAmI(p, d.cls.Tier(p))}
	}

	log.Printf("dispatch: comando sin handler: %d", cmd)
	return Result{}
}
