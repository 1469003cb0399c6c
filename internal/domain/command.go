package domain

import "strings"

// Prefix de comandos en ambos chats.
const Prefix = "!"

// Command es una operación del bot, independiente de la plataforma por
// la que llegó el token.
type Command int

const (
	CmdUnknown Command = iota
	CmdOpenQueue
	CmdCloseQueue
	CmdJoin
	CmdLeave
	CmdList
	CmdStatus
	CmdRotate
	CmdClear
	CmdWhoAmI
	CmdTeams
)

// El chino es la superficie principal; los alias ASCII existen para
// clientes que se comen el input CJK. Alias siempre en minúscula.
var tokens = map[Command][]string{
	CmdOpenQueue:  {"開單", "openqueue"},
	CmdCloseQueue: {"關單", "closequeue"},
	CmdJoin:       {"上車", "join"},
	CmdLeave:      {"下車", "leave"},
	CmdList:       {"車隊", "list"},
	CmdStatus:     {"狀態", "status"},
	CmdRotate:     {"發車", "rotate"},
	CmdClear:      {"清空", "clear"},
	CmdWhoAmI:     {"我是誰", "whoami"},
	CmdTeams:      {"抽", "teams"},
}

var byToken = map[string]Command{}

func init() {
	for cmd, ts := range tokens {
		for _, tok := range ts {
			byToken[tok] = cmd
		}
	}
}

// ParseCommand saca el comando del primer token del mensaje. Cualquier
// texto sin prefijo (o con token desconocido) no es un comando.
func ParseCommand(text string) (Command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return CmdUnknown, false
	}
	tok := fields[0]
	if !strings.HasPrefix(tok, Prefix) {
		return CmdUnknown, false
	}
	cmd, ok := byToken[strings.ToLower(strings.TrimPrefix(tok, Prefix))]
	if !ok {
		return CmdUnknown, false
	}
	return cmd, true
}
