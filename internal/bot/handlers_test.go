package bot

import (
	"reflect"
	"testing"
)

func TestParseTradeArgs(t *testing.T) {
	owner, give, get, err := parseTradeArgs("Coach Dad give: Player A, Player B get: Player C")
	if err != nil {
		t.Fatalf("parseTradeArgs: %v", err)
	}
	if owner != "Coach Dad" {
		t.Errorf("owner = %q, want %q", owner, "Coach Dad")
	}
	if want := []string{"Player A", "Player B"}; !reflect.DeepEqual(give, want) {
		t.Errorf("give = %v, want %v", give, want)
	}
	if want := []string{"Player C"}; !reflect.DeepEqual(get, want) {
		t.Errorf("get = %v, want %v", get, want)
	}
}

func TestParseTradeArgs_EmptySides(t *testing.T) {
	owner, give, get, err := parseTradeArgs("Coach Dad give: get:")
	if err != nil {
		t.Fatalf("parseTradeArgs: %v", err)
	}
	if owner != "Coach Dad" || len(give) != 0 || len(get) != 0 {
		t.Errorf("got owner=%q give=%v get=%v, want empty sides", owner, give, get)
	}
}

func TestParseTradeArgs_Malformed(t *testing.T) {
	cases := []string{
		"",
		"Coach Dad",
		"give: A get: B",           // no owner
		"Coach Dad get: A give: B", // sections reversed
	}
	for _, args := range cases {
		if _, _, _, err := parseTradeArgs(args); err == nil {
			t.Errorf("parseTradeArgs(%q) error = nil, want error", args)
		}
	}
}
