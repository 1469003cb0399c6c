package service

import (
	"sync"

	"github.com/jose-valero/ride-queue-bot/internal/domain"
)

// MaxPlayers es el tamaño de una tanda.
const MaxPlayers = 4

// asientos reservados para tier priority en cada rotación
const prioritySlots = 2

// QueueService es el único dueño de la cola y de su candado (abierta /
// cerrada). Todo el estado vive detrás de un mutex porque los dos
// adapters de chat entran concurrentemente. Nada se persiste: la cola
// muere con el proceso.
type QueueService struct {
	mu      sync.Mutex
	open    bool
	entries []domain.Participant
	cls     domain.Classifier
}

func NewQueueService(cls domain.Classifier) *QueueService {
	return &QueueService{cls: cls}
}

type JoinOutcome int

const (
	JoinClosed JoinOutcome = iota
	JoinAlready
	JoinOK
)

// Join agrega al participante al final. Devuelve la posición 1-based
// (la actual si ya estaba). Con la cola cerrada no muta nada.
func (s *QueueService) Join(p domain.Participant) (JoinOutcome, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return JoinClosed, 0
	}
	for i, q := range s.entries {
		if q.Key() == p.Key() {
			return JoinAlready, i + 1
		}
	}
	s.entries = append(s.entries, p)
	return JoinOK, len(s.entries)
}

type LeaveOutcome int

const (
	LeaveClosed LeaveOutcome = iota
	LeaveNotFound
	LeaveOK
)

// Leave saca al participante esté donde esté. Devuelve cuántos quedan.
func (s *QueueService) Leave(p domain.Participant) (LeaveOutcome, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return LeaveClosed, 0
	}
	for i, q := range s.entries {
		if q.Key() == p.Key() {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return LeaveOK, len(s.entries)
		}
	}
	return LeaveNotFound, 0
}

// Entry es una fila del listado, con posición 1-based y tier ya resuelto.
type Entry struct {
	Pos  int
	P    domain.Participant
	Tier domain.Tier
}

// List devuelve el snapshot ordenado. ok=false con la cola cerrada.
func (s *QueueService) List() ([]Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, false
	}
	out := make([]Entry, len(s.entries))
	for i, p := range s.entries {
		out[i] = Entry{Pos: i + 1, P: p, Tier: s.cls.Tier(p)}
	}
	return out, true
}

// Status resume la cola: tanda actual, siguiente y cuántos sobran.
type Status struct {
	Current  []domain.Participant
	Next     []domain.Participant
	Overflow int
}

func (s *QueueService) Status() (Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return Status{}, false
	}
	var st Status
	n := len(s.entries)
	st.Current = append(st.Current, s.entries[:min(n, MaxPlayers)]...)
	if n > MaxPlayers {
		st.Next = append(st.Next, s.entries[MaxPlayers:min(n, 2*MaxPlayers)]...)
	}
	if n > 2*MaxPlayers {
		st.Overflow = n - 2*MaxPlayers
	}
	return st, true
}

// Clear vacía la cola. A propósito NO mira el candado: un admin tiene
// que poder limpiar aunque esté cerrada.
func (s *QueueService) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	s.entries = nil
	return n
}

// SetOpen mueve el candado y reporta si hubo cambio (para poder avisar
// "ya estaba así" en vez de fallar).
func (s *QueueService) SetOpen(open bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open == open {
		return false
	}
	s.open = open
	return true
}

func (s *QueueService) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// RotateResult es la tanda que sale y cuántos quedan esperando.
type RotateResult struct {
	Advancing []domain.Participant
	Remaining int
}

// Rotate avanza la siguiente tanda. Cola vacía → ok=false y no toca
// nada (ni el candado). No mira el candado: rotar es acción de admin.
func (s *QueueService) Rotate() (RotateResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return RotateResult{}, false
	}
	advancing, remaining := rotate(s.entries, s.cls)
	s.entries = remaining
	return RotateResult{Advancing: advancing, Remaining: len(remaining)}, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
