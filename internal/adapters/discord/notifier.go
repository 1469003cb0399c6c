package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Announcer entrega los anuncios de la cola al canal designado. Announce
// nunca bloquea al caller: los mensajes entran a un canal bufereado y un
// único goroutine los manda, así el event loop de Twitch puede pasar su
// notificación sin esperar el I/O de Discord.
type Announcer struct {
	s         *discordgo.Session
	channelID string
	out       chan string
}

func NewAnnouncer(s *discordgo.Session, channelID string) *Announcer {
	a := &Announcer{s: s, channelID: channelID, out: make(chan string, 64)}
	go a.pump()
	return a
}

func (a *Announcer) Announce(text string) {
	select {
	case a.out <- text:
	default:
		log.Printf("announce: buffer lleno, mensaje descartado")
	}
}

func (a *Announcer) pump() {
	for msg := range a.out {
		if _, err := a.s.ChannelMessageSend(a.channelID, msg); err != nil {
			// no se reintenta ni se revierte nada: la mutación ya pasó
			log.Printf("announce send: %v", err)
		}
	}
}
