package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa todo lo que el bot necesita del entorno. Los defaults de
// keywords están en el idioma de la comunidad; se pisan por env si hace
// falta probar con otros.
type Config struct {
	DiscordToken      string `env:"DISCORD_BOT_TOKEN,required"`
	DiscordGuild      string `env:"DISCORD_GUILD_ID,required"`
	CommandChannelID  string `env:"DISCORD_COMMAND_CHANNEL_ID,required"`
	AnnounceChannelID string `env:"DISCORD_ANNOUNCE_CHANNEL_ID"`

	TwitchUsername string `env:"TWITCH_USERNAME,required"`
	TwitchOAuth    string `env:"TWITCH_OAUTH_TOKEN,required"`
	TwitchChannel  string `env:"TWITCH_CHANNEL,required"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// clasificación y permisos
	SubscriberKeyword string   `env:"SUB_ROLE_KEYWORD" envDefault:"訂閱"`
	AdminRoles        []string `env:"ADMIN_ROLES" envSeparator:"," envDefault:"管理員,Moderator"`
	AdminRoleKeywords []string `env:"ADMIN_ROLE_KEYWORDS" envSeparator:"," envDefault:"管理,mod"`

	// ventana de dedup del lado Twitch
	TwitchDedupTTL time.Duration `env:"TWITCH_DEDUP_TTL" envDefault:"30s"`
}

// Load lee y valida el entorno. El .env (si existe) lo carga main antes.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AnnounceChannelID == "" {
		// sin canal de anuncios dedicado, anunciamos donde se comanda
		cfg.AnnounceChannelID = cfg.CommandChannelID
	}
	if cfg.TwitchDedupTTL <= 0 {
		return Config{}, fmt.Errorf("TWITCH_DEDUP_TTL debe ser positivo")
	}
	return cfg, nil
}
