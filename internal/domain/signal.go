package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Signal is what a single chat message contributes to a lobby announcement.
type Signal struct {
	Code     LobbyCode
	Count    int
	HasCount bool
}

func (s Signal) HasCode() bool {
	return s.Code != ""
}

func (s Signal) Empty() bool {
	return !s.HasCode() && !s.HasCount
}

var codePattern = regexp.MustCompile(`\b(?:[A-Z][a-z]{3,10}){3}\b`)

// Classify extracts the lobby code and player count carried by text.
func Classify(text string) Signal {
	signal := Signal{Code: ExtractCode(text)}
	if count, ok := ExtractCount(text); ok {
		signal.Count = count
		signal.HasCount = true
	}

	return signal
}

// ExtractCode returns the first concatenated three-word code in text.
func ExtractCode(text string) LobbyCode {
	return LobbyCode(codePattern.FindString(text))
}

// IsBroadcastAlert reports whether the message pings the community's lobby role.
func IsBroadcastAlert(role RoleID, mentioned []RoleID, text string) bool {
	if role == "" {
		return false
	}
	for _, id := range mentioned {
		if id == role {
			return true
		}
	}

	return strings.Contains(text, "<@&"+string(role)+">") || strings.Contains(text, "<@"+string(role)+">")
}

type ruleVerdict int

const (
	ruleSkip ruleVerdict = iota
	ruleMatch
	ruleStop
)

type countRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(groups []string) (int, ruleVerdict)
}

var (
	questionPattern = regexp.MustCompile(`\b(are\s+(you|u|we)|do\s+(you|u|we)|is\s+(it|the)|i\s+assume|assuming|maybe|might\s+be|could\s+be|if\s+(you|u)\s+don'?t\s+get|this\s+looks\s+like\s+we\s+need)\b`)
	orPattern       = regexp.MustCompile(`\bor\b`)
	possessPattern  = regexp.MustCompile(`\b(we got|we have|got|have)\b`)
	punctuation     = regexp.MustCompile(`[,!.?]`)
)

// countRules are evaluated in order; the first rule whose pattern matches
// and resolves decides the outcome.
var countRules = []countRule{
	{
		name:    "full",
		pattern: regexp.MustCompile(`\b(?:full|lobby full|full lobby|we're full|we are full)\b|\b6\s*/\s*6\b`),
		resolve: func([]string) (int, ruleVerdict) { return Capacity, ruleMatch },
	},
	{
		name:    "slash",
		pattern: regexp.MustCompile(`(\d)\s*/\s*6`),
		resolve: inRange(1, Capacity),
	},
	{
		name:    "of",
		pattern: regexp.MustCompile(`(\d)\s*(?:of|out of)\s*6`),
		resolve: inRange(1, Capacity),
	},
	{
		name:    "have",
		pattern: regexp.MustCompile(`\b(?:we have|we're|we are|currently have|currently|have|got)\s+(\d{1,2}|\w+)\b`),
		resolve: inRange(1, Capacity),
	},
	{
		name:    "players",
		pattern: regexp.MustCompile(`\b(\d{1,2}|\w+)\s+players?\b`),
		resolve: inRange(1, Capacity),
	},
	{
		name:    "need",
		pattern: regexp.MustCompile(`(?:needs|i need|we need|need)\s+(\d{1,2}|\w+)(?:\s*more)?\b`),
		resolve: missing(0, Capacity-1),
	},
	{
		name:    "plus",
		pattern: regexp.MustCompile(`(?:\+|plus)\s*([0-9])`),
		resolve: missing(0, 9),
	},
}

// ExtractCount returns the player count asserted by text. Questions and
// hedged statements never produce a count.
func ExtractCount(text string) (int, bool) {
	if text == "" {
		return 0, false
	}

	raw := strings.ToLower(text)
	if isUncertain(raw) {
		return 0, false
	}
	normalized := punctuation.ReplaceAllString(raw, " ")

	for _, rule := range countRules {
		groups := rule.pattern.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		count, verdict := rule.resolve(groups)
		switch verdict {
		case ruleMatch:
			return count, true
		case ruleStop:
			return 0, false
		}
	}

	return 0, false
}

func isUncertain(raw string) bool {
	if strings.Contains(raw, "?") || questionPattern.MatchString(raw) {
		return true
	}

	return orPattern.MatchString(raw) && possessPattern.MatchString(raw)
}

func inRange(lo, hi int) func([]string) (int, ruleVerdict) {
	return func(groups []string) (int, ruleVerdict) {
		n, ok := parseNumber(groups[1])
		if !ok || n < lo || n > hi {
			return 0, ruleSkip
		}
		return n, ruleMatch
	}
}

// missing turns "need n more" style phrasing into a present-player count.
// Zero missing players is no signal at all.
func missing(lo, hi int) func([]string) (int, ruleVerdict) {
	return func(groups []string) (int, ruleVerdict) {
		n, ok := parseNumber(groups[1])
		if !ok || n < lo || n > hi {
			return 0, ruleSkip
		}
		if n == 0 {
			return 0, ruleStop
		}
		have := Capacity - n
		if have < 1 {
			return 0, ruleStop
		}
		return have, ruleMatch
	}
}

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

func parseNumber(raw string) (int, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	n, ok := numberWords[strings.ToLower(raw)]
	return n, ok
}
