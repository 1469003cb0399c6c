package domain

import "testing"

func TestParseCommandTokens(t *testing.T) {
	cases := []struct {
		in   string
		want Command
		ok   bool
	}{
		{"!上車", CmdJoin, true},
		{"!join", CmdJoin, true},
		{"!JOIN", CmdJoin, true},
		{"!下車 ya me voy", CmdLeave, true},
		{"!發車", CmdRotate, true},
		{"!開單", CmdOpenQueue, true},
		{"!我是誰", CmdWhoAmI, true},
		{"!抽", CmdTeams, true},
		{"上車", CmdUnknown, false},
		{"!nada", CmdUnknown, false},
		{"hola !上車", CmdUnknown, false},
		{"   ", CmdUnknown, false},
		{"", CmdUnknown, false},
	}

	for _, c := range cases {
		got, ok := ParseCommand(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParseCommand(%q) = (%v, %v), esperaba (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
