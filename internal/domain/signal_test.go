package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want LobbyCode
	}{
		{name: "bare code", text: "VerbNounAdjective", want: "VerbNounAdjective"},
		{name: "code inside sentence", text: "join MapleStormRiver now", want: "MapleStormRiver"},
		{name: "code followed by punctuation", text: "code: VerbNounAdjective.", want: "VerbNounAdjective"},
		{name: "first of two codes", text: "MapleStormRiver then VerbNounAdjective", want: "MapleStormRiver"},
		{name: "lower case is not a code", text: "verbnounadjective", want: ""},
		{name: "short words are not a code", text: "AbcDefGhi", want: ""},
		{name: "leading capital breaks the boundary", text: "XVerbNounAdjective", want: ""},
		{name: "two words are not a code", text: "VerbNoun", want: ""},
		{name: "empty", text: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExtractCode(tc.text))
		})
	}
}

func TestExtractCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{name: "slash count", text: "3/6", want: 3, wantOK: true},
		{name: "slash count with spaces", text: "we are 4 / 6 now", want: 4, wantOK: true},
		{name: "six of six is full", text: "6/6", want: 6, wantOK: true},
		{name: "full vocabulary", text: "we are full", want: 6, wantOK: true},
		{name: "full with punctuation", text: "lobby full!", want: 6, wantOK: true},
		{name: "n of 6", text: "4 of 6", want: 4, wantOK: true},
		{name: "n out of 6", text: "2 out of 6", want: 2, wantOK: true},
		{name: "we have numeral", text: "we have 4", want: 4, wantOK: true},
		{name: "got number word", text: "got three", want: 3, wantOK: true},
		{name: "currently have", text: "currently have 2", want: 2, wantOK: true},
		{name: "players", text: "5 players", want: 5, wantOK: true},
		{name: "need more", text: "need 2 more", want: 4, wantOK: true},
		{name: "needs number word", text: "needs one", want: 5, wantOK: true},
		{name: "plus", text: "+1", want: 5, wantOK: true},
		{name: "plus word", text: "plus 2", want: 4, wantOK: true},
		{name: "slash out of range", text: "8/6", wantOK: false},
		{name: "need zero is no signal", text: "need 0", wantOK: false},
		{name: "plus zero is no signal", text: "+0", wantOK: false},
		{name: "need six falls through", text: "we need 6", wantOK: false},
		{name: "have with non number", text: "have a good one", wantOK: false},
		{name: "question mark", text: "are you full?", wantOK: false},
		{name: "question without mark", text: "is it 4/6", wantOK: false},
		{name: "hedged", text: "maybe 5/6", wantOK: false},
		{name: "might be", text: "might be 3/6 soon", wantOK: false},
		{name: "disjunction with possession", text: "we have 3 or 4", wantOK: false},
		{name: "disjunction without possession", text: "3/6 or so", want: 3, wantOK: true},
		{name: "no signal", text: "hello there", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractCount(tc.text)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	text := "VerbNounAdjective 3/6"
	want := Signal{Code: "VerbNounAdjective", Count: 3, HasCount: true}

	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(want, Classify(text)); diff != "" {
			t.Fatalf("Classify(%q) mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestClassifyAlertMessageCarriesOnlyCode(t *testing.T) {
	t.Parallel()

	got := Classify("<@&900> VerbNounAdjective")
	assert.Equal(t, Signal{Code: "VerbNounAdjective"}, got)
	assert.True(t, got.HasCode())
	assert.False(t, got.Empty())
}

func TestIsBroadcastAlert(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBroadcastAlert("900", []RoleID{"12", "900"}, "new lobby"))
	assert.True(t, IsBroadcastAlert("900", nil, "<@&900> VerbNounAdjective"))
	assert.True(t, IsBroadcastAlert("900", nil, "<@900> go"))
	assert.False(t, IsBroadcastAlert("900", []RoleID{"12"}, "VerbNounAdjective"))
	assert.False(t, IsBroadcastAlert("", []RoleID{""}, "anything"))
}
