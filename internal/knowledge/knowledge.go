// Package knowledge answers queries from preloaded local tables before
// the orchestrator falls back to the remote model: greeting intents,
// simple arithmetic, commodity prices, and agronomy facts. All tables
// are read-only after construction.
package knowledge

import (
	"math/rand"
	"strings"
)

type intent struct {
	tag       string
	patterns  []string
	responses []string
}

type fact struct {
	keywords []string
	answer   string
}

type Base struct {
	intents []intent
	facts   []fact
	rng     *rand.Rand
}

func NewBase(seed int64) *Base {
	return &Base{
		intents: defaultIntents,
		facts:   defaultFacts,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// LocalAnswer tries every local source in priority order: exact intent
// match, arithmetic, then keyword facts. Returns ok=false when nothing
// local applies and the remote path should be taken.
func (b *Base) LocalAnswer(query string) (string, bool) {
	if reply, ok := b.matchIntent(query); ok {
		return reply, true
	}
	if reply, ok := Arithmetic(query); ok {
		return reply, true
	}
	if reply, ok := b.matchFact(query); ok {
		return reply, true
	}
	return "", false
}

// matchIntent requires a case-insensitive exact match against one of
// the intent patterns and answers with a random canned response.
func (b *Base) matchIntent(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, in := range b.intents {
		for _, pattern := range in.patterns {
			if q == pattern {
				return in.responses[b.rng.Intn(len(in.responses))], true
			}
		}
	}
	return "", false
}

// matchFact answers when every keyword of an entry appears in the query.
func (b *Base) matchFact(query string) (string, bool) {
	q := strings.ToLower(query)
	for _, f := range b.facts {
		all := true
		for _, kw := range f.keywords {
			if !strings.Contains(q, kw) {
				all = false
				break
			}
		}
		if all {
			return f.answer, true
		}
	}
	return "", false
}

var defaultIntents = []intent{
	{
		tag:      "greeting",
		patterns: []string{"hi", "hello", "hey", "good morning", "good evening", "namaste"},
		responses: []string{
			"Hello! How can I help you today?",
			"Hi there! Ask me anything about your farm or fields.",
			"Hello! What would you like to know?",
		},
	},
	{
		tag:      "thanks",
		patterns: []string{"thanks", "thank you", "thanks a lot"},
		responses: []string{
			"You're welcome!",
			"Happy to help!",
		},
	},
	{
		tag:      "goodbye",
		patterns: []string{"bye", "goodbye", "see you"},
		responses: []string{
			"Goodbye! Come back any time.",
			"See you soon!",
		},
	},
	{
		tag:      "identity",
		patterns: []string{"who are you", "what are you", "what is your name"},
		responses: []string{
			"I'm AgriChat, an assistant for farming questions, documents, and code.",
		},
	},
}

var defaultFacts = []fact{
	{[]string{"price", "wheat"}, "Today's mandi price for wheat is around ₹2,275 per quintal (MSP 2024-25)."},
	{[]string{"price", "rice"}, "Today's mandi price for common paddy is around ₹2,300 per quintal (MSP 2024-25)."},
	{[]string{"price", "maize"}, "Today's mandi price for maize is around ₹2,225 per quintal (MSP 2024-25)."},
	{[]string{"sow", "wheat"}, "Wheat is best sown from mid-November to early December in most northern plains; use 100-125 kg of seed per hectare."},
	{[]string{"irrigate", "wheat"}, "Wheat typically needs 4-6 irrigations; the crown root initiation stage (20-25 days after sowing) is the most critical."},
	{[]string{"soil", "ph", "paddy"}, "Paddy grows best in soils with a pH between 5.5 and 7.0."},
}
