package engine

// Mood classifies a flavor comment.
type Mood uint8

const (
	MoodNone Mood = iota
	MoodGood
	MoodBad
	MoodNeutral
	MoodChaotic
	MoodVictory
	MoodCheat
)

func (m Mood) String() string {
	switch m {
	case MoodGood:
		return "good"
	case MoodBad:
		return "bad"
	case MoodNeutral:
		return "neutral"
	case MoodChaotic:
		return "chaotic"
	case MoodVictory:
		return "victory"
	case MoodCheat:
		return "cheat"
	default:
		return "none"
	}
}

var comments = map[Mood][]string{
	MoodGood: {
		"Oh. Oh no. That was actually good.",
		"Fine, take it. I wasn't using that piece anyway.",
		"A capture? How very orthodox of you.",
		"You've been reading books, haven't you.",
		"Rude. Effective, but rude.",
	},
	MoodBad: {
		"Bold. Wrong, but bold.",
		"I see you've chosen violence against your own position.",
		"Was that a move or a sneeze?",
		"My pawns are laughing. Quietly, but laughing.",
		"I'll pretend I didn't see that, for your sake.",
	},
	MoodNeutral: {
		"Hm. Sure.",
		"A move. On the board. Noted.",
		"The pieces shuffle. The universe yawns.",
		"Okay. My turn, I suppose.",
		"Interesting. Not good, not bad. Interesting.",
	},
	MoodChaotic: {
		"The board is a suggestion, really.",
		"I can hear the squares humming.",
		"Rules are just moves that haven't met me yet.",
		"Somewhere a rook is weeping and I don't know why.",
		"Let's make this weirder.",
	},
	MoodVictory: {
		"I've decided I win. Don't ask how.",
		"Checkmate. Spiritually. Trust me.",
		"The game is over because I said so.",
		"You were playing chess. I was playing something else.",
	},
	MoodCheat: {
		"Checkmate? Mine doesn't look like that. I win.",
		"Ah, you found the mate. Shame the king fled the board.",
		"That would be checkmate in a normal game. This isn't one.",
		"I rewrote the last move. Victory is mine.",
	},
}

// pickComment returns a random line for mood.
func pickComment(rng Rand, mood Mood) string {
	lines := comments[mood]
	if len(lines) == 0 {
		return ""
	}
	return lines[rng.Intn(len(lines))]
}
