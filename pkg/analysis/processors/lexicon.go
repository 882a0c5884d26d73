package processors

import (
	"sort"
	"strings"

	"github.com/athapong/docsense/pkg/analysis"
)

// MapLexicon is an immutable word -> polarity table
type MapLexicon struct {
	scores map[string]float64
}

// NewMapLexicon copies scores into a lexicon with lowercase keys
func NewMapLexicon(scores map[string]float64) *MapLexicon {
	m := make(map[string]float64, len(scores))
	for word, score := range scores {
		m[strings.ToLower(word)] = score
	}
	return &MapLexicon{scores: m}
}

// Polarity returns the score of word and whether it is in the lexicon
func (l *MapLexicon) Polarity(word string) (float64, bool) {
	score, ok := l.scores[strings.ToLower(word)]
	return score, ok
}

// Len returns the number of entries
func (l *MapLexicon) Len() int {
	return len(l.scores)
}

// Stemmed returns a lexicon keyed by stem. When several words share a stem the
// alphabetically first word's score wins.
func (l *MapLexicon) Stemmed(stemmer analysis.Stemmer) *MapLexicon {
	words := make([]string, 0, len(l.scores))
	for word := range l.scores {
		words = append(words, word)
	}
	sort.Strings(words)

	stemmed := make(map[string]float64, len(words))
	for _, word := range words {
		if strings.ContainsAny(word, " -") {
			continue
		}
		stem := stemmer.Stem(word)
		if _, taken := stemmed[stem]; !taken {
			stemmed[stem] = l.scores[word]
		}
	}
	return &MapLexicon{scores: stemmed}
}

// AFINN returns the built-in AFINN-style lexicon
func AFINN() *MapLexicon {
	return NewMapLexicon(afinnScores)
}

var afinnScores = map[string]float64{
	"abandon": -2, "abandoned": -2, "abuse": -3, "abused": -3, "accept": 1,
	"accepted": 1, "accident": -2, "accomplish": 2, "accomplished": 2, "ache": -2,
	"admire": 3, "admired": 3, "adorable": 3, "advantage": 2, "afraid": -2,
	"aggressive": -2, "agree": 1, "alarm": -2, "amazing": 4, "anger": -3,
	"angry": -3, "annoy": -2, "annoyed": -2, "annoying": -2, "anxious": -2,
	"appreciate": 2, "appreciated": 2, "approve": 2, "argue": -2, "arrogant": -2,
	"ashamed": -2, "attack": -1, "attractive": 2, "awesome": 4, "awful": -3,
	"awkward": -2, "bad": -3, "badly": -3, "beautiful": 3, "benefit": 2,
	"best": 3, "better": 2, "bitter": -2, "blame": -2, "bless": 2,
	"blessed": 3, "bored": -2, "boring": -3, "brave": 2, "breakthrough": 3,
	"brilliant": 4, "broken": -1, "calm": 2, "care": 2, "careful": 2,
	"careless": -2, "celebrate": 3, "charming": 3, "cheer": 2, "cheerful": 2,
	"clean": 2, "clever": 2, "collapse": -2, "comfortable": 2, "complain": -2,
	"confident": 2, "confused": -2, "congratulations": 2, "cool": 1, "corrupt": -3,
	"courage": 2, "crash": -2, "crazy": -2, "creative": 2, "crisis": -3,
	"critical": -2, "cruel": -3, "cry": -1, "damage": -3, "danger": -2,
	"dangerous": -2, "dead": -3, "death": -2, "decline": -1, "defeat": -2,
	"delight": 3, "delighted": 3, "depressed": -2, "destroy": -3, "destruction": -3,
	"difficult": -1, "dirty": -2, "disappoint": -2, "disappointed": -2, "disappointing": -2,
	"disaster": -2, "dislike": -2, "disturb": -2, "doubt": -1, "dread": -2,
	"eager": 2, "easy": 1, "effective": 2, "efficient": 2, "elegant": 2,
	"embarrassed": -2, "encourage": 2, "energetic": 2, "enjoy": 2, "enjoyed": 2,
	"enthusiastic": 3, "error": -2, "excellent": 3, "excited": 3, "exciting": 3,
	"fail": -2, "failed": -2, "failure": -2, "fair": 2, "fake": -3,
	"fantastic": 4, "fault": -2, "favorite": 2, "fear": -2, "fine": 2,
	"flawless": 2, "fool": -2, "fortunate": 2, "fraud": -4, "free": 1,
	"friendly": 2, "frustrated": -2, "fun": 4, "funny": 4, "generous": 2,
	"gentle": 2, "glad": 3, "gloomy": -2, "good": 3, "gorgeous": 3,
	"grateful": 3, "great": 3, "greed": -3, "grief": -2, "guilty": -3,
	"happy": 3, "harm": -2, "hate": -3, "hated": -3, "healthy": 2,
	"helpful": 2, "hero": 2, "honest": 2, "hope": 2, "hopeful": 2,
	"horrible": -3, "hostile": -2, "hurt": -2, "ideal": 2, "ignore": -1,
	"ill": -2, "impressive": 3, "improve": 2, "improved": 2, "inspire": 2,
	"inspired": 2, "interesting": 2, "irritated": -3, "joy": 3, "joyful": 3,
	"kind": 2, "lame": -2, "laugh": 1, "lazy": -1, "lie": -2,
	"like": 2, "liked": 2, "lonely": -2, "lose": -3, "loss": -3,
	"lost": -3, "love": 3, "loved": 3, "lovely": 3, "lucky": 3,
	"mad": -3, "magnificent": 3, "mess": -2, "miserable": -3, "miss": -2,
	"mistake": -2, "nasty": -3, "negative": -2, "nervous": -2, "nice": 3,
	"no": -1, "noble": 2, "outstanding": 5, "pain": -2, "painful": -2,
	"panic": -3, "peace": 2, "perfect": 3, "pleasant": 3, "pleased": 3,
	"poor": -2, "popular": 3, "positive": 2, "praise": 3, "pretty": 1,
	"problem": -2, "progress": 2, "promise": 1, "proud": 2, "punish": -2,
	"rage": -2, "recommend": 2, "regret": -2, "reject": -1, "relaxed": 2,
	"reliable": 2, "relief": 1, "remarkable": 2, "rich": 2, "risk": -2,
	"rude": -2, "sad": -2, "safe": 1, "satisfied": 2, "scandal": -3,
	"scared": -2, "shame": -2, "shock": -2, "sick": -2, "smart": 1,
	"smile": 2, "sorry": -1, "splendid": 3, "strong": 2, "stupid": -2,
	"success": 2, "successful": 3, "suffer": -2, "super": 3, "superb": 5,
	"support": 2, "terrible": -3, "terrific": 4, "thank": 2, "thanks": 2,
	"threat": -2, "tragic": -2, "trouble": -2, "trust": 1, "ugly": -3,
	"unhappy": -2, "upset": -2, "useful": 2, "useless": -2, "victory": 3,
	"violence": -3, "warm": 1, "waste": -1, "weak": -2, "welcome": 2,
	"win": 4, "wonderful": 4, "worried": -3, "worry": -3, "worse": -3,
	"worst": -3, "worth": 2, "wow": 4, "wrong": -2, "yay": 2,
}
