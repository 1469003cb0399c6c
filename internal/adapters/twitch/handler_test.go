package twitch

import (
	"strings"
	"testing"
	"time"

	twitchirc "github.com/gempir/go-twitch-irc/v4"

	"github.com/jose-valero/ride-queue-bot/internal/app/service"
	"github.com/jose-valero/ride-queue-bot/internal/domain"
)

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) Announce(text string) { f.sent = append(f.sent, text) }

func testHandler(ttl time.Duration) (*Handler, *service.QueueService, *fakeNotifier) {
	cls := domain.Classifier{SubscriberKeyword: "訂閱"}
	q := service.NewQueueService(cls)
	q.SetOpen(true)
	guard := service.NewGuard()
	guard.Namespace(service.NamespaceTwitch, ttl)
	n := &fakeNotifier{}
	d := service.NewDispatcher(q, service.NewPolicyService(nil, nil), cls, n)
	return NewHandler(d, guard, n), q, n
}

func chat(login, text string, badges map[string]int) twitchirc.PrivateMessage {
	return twitchirc.PrivateMessage{
		User:    twitchirc.User{ID: "u-" + login, Name: login, DisplayName: login, Badges: badges},
		Message: text,
	}
}

func TestChatJoinAnnouncesOnDiscordSurface(t *testing.T) {
	h, q, n := testHandler(time.Minute)

	h.HandleChat(chat("viewer", "!上車", nil))

	entries, _ := q.List()
	if len(entries) != 1 || entries[0].P.Key() != "twitch:viewer" {
		t.Fatalf("el viewer tenía que quedar en cola: %+v", entries)
	}
	// la respuesta sale por el anuncio de Discord, nunca por el chat de Twitch
	if len(n.sent) != 1 || !strings.Contains(n.sent[0], "上車") {
		t.Fatalf("anuncio: %v", n.sent)
	}
}

func TestChatDedupByHandle(t *testing.T) {
	h, q, _ := testHandler(40 * time.Millisecond)

	h.HandleChat(chat("viewer", "!上車", nil))
	h.HandleChat(chat("viewer", "!下車", nil)) // dentro de la ventana, cae

	if entries, _ := q.List(); len(entries) != 1 {
		t.Fatalf("el segundo comando tenía que caer por dedup: %+v", entries)
	}

	time.Sleep(100 * time.Millisecond)
	h.HandleChat(chat("viewer", "!下車", nil))
	if entries, _ := q.List(); len(entries) != 0 {
		t.Fatal("pasada la ventana el comando procesa normal")
	}
}

func TestChatIgnoresNonCommands(t *testing.T) {
	h, q, n := testHandler(time.Minute)

	h.HandleChat(chat("viewer", "hola como va", nil))
	h.HandleChat(chat("viewer2", "!抽", nil)) // no existe en twitch

	if entries, _ := q.List(); len(entries) != 0 {
		t.Fatal("nada de esto toca la cola")
	}
	if len(n.sent) != 0 {
		t.Fatalf("nada de esto anuncia: %v", n.sent)
	}
}

func TestToUserBadges(t *testing.T) {
	u := toUser(chat("Viewer_One", "!上車", map[string]int{"subscriber": 12}))
	if !u.Subscriber {
		t.Fatal("badge subscriber tenía que marcar Subscriber")
	}
	if u.Key() != "twitch:viewer_one" {
		t.Fatalf("key: %q", u.Key())
	}

	f := toUser(chat("founder_fan", "!上車", map[string]int{"founder": 1}))
	if !f.Subscriber {
		t.Fatal("founder cuenta como suscriptor")
	}

	p := toUser(chat("pleb", "!上車", nil))
	if p.Subscriber || p.Follower {
		t.Fatal("sin badges no hay flags")
	}
}
