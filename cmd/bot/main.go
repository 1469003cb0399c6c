package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordadapter "github.com/jose-valero/ride-queue-bot/internal/adapters/discord"
	"github.com/jose-valero/ride-queue-bot/internal/adapters/health"
	twitchadapter "github.com/jose-valero/ride-queue-bot/internal/adapters/twitch"
	"github.com/jose-valero/ride-queue-bot/internal/app/service"
	"github.com/jose-valero/ride-queue-bot/internal/domain"
	"github.com/jose-valero/ride-queue-bot/internal/infra/config"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentGuildVoiceStates
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	// Core: un solo estado compartido detrás de los services
	cls := domain.Classifier{SubscriberKeyword: cfg.SubscriberKeyword}
	queueSvc := service.NewQueueService(cls)
	policySvc := service.NewPolicyService(cfg.AdminRoles, cfg.AdminRoleKeywords)

	guard := service.NewGuard()
	guard.Namespace(service.NamespaceDiscord, 0) // los message IDs no expiran
	guard.Namespace(service.NamespaceTwitch, cfg.TwitchDedupTTL)

	announcer := discordadapter.NewAnnouncer(s, cfg.AnnounceChannelID)
	dispatcher := service.NewDispatcher(queueSvc, policySvc, cls, announcer)

	// Router de Discord
	r := discordadapter.NewRouter(s, cfg.DiscordGuild, cfg.CommandChannelID, dispatcher, guard)
	r.Handlers()
	log.Printf("✅ comandos activos en canal %s (guild %s)", cfg.CommandChannelID, cfg.DiscordGuild)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Twitch con reconexión propia
	th := twitchadapter.NewHandler(dispatcher, guard, announcer)
	tc := twitchadapter.NewClient(cfg.TwitchUsername, cfg.TwitchOAuth, cfg.TwitchChannel, th)
	go runTwitch(ctx, tc)

	// Healthcheck
	go health.New().Start(cfg.HTTPAddr)

	<-ctx.Done()
	log.Println("apagando...")
}

// runTwitch mantiene viva la conexión IRC: backoff doblado entre
// intentos, con reset si la conexión aguantó un rato.
func runTwitch(ctx context.Context, c *twitchadapter.Client) {
	backoff := time.Second
	for {
		start := time.Now()
		err := c.Run(ctx)
		if ctx.Err() != nil {
			return
		}
		if time.Since(start) > time.Minute {
			backoff = time.Second
		}
		log.Printf("twitch: conexión caída (%v), reintento en %s", err, backoff)
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > 5*time.Minute {
			backoff = 5 * time.Minute
		}
	}
}
