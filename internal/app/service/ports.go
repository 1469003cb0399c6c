package service

// Notifier entrega una línea de texto a la superficie de anuncios
// designada (el canal de Discord). Es fire-and-forget: la implementación
// no puede bloquear al caller y los fallos se loguean, no se reintentan.
// Lo implementa internal/adapters/discord.Announcer.
type Notifier interface {
	Announce(text string)
}
