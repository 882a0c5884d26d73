package processors

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// englishStopWords is shared read-only by every processor
var englishStopWords = mapset.NewThreadUnsafeSet[string](
	"about", "above", "after", "again", "all", "also", "am", "an", "and", "another",
	"any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "came", "can", "cannot", "come", "could", "did",
	"do", "does", "doing", "during", "each", "few", "for", "from", "further", "get",
	"got", "has", "had", "have", "he", "her", "here", "him", "himself", "his",
	"how", "if", "in", "into", "is", "it", "its", "itself", "like", "make",
	"many", "me", "might", "more", "most", "much", "must", "my", "myself", "never",
	"now", "of", "on", "only", "or", "other", "our", "out", "over", "said",
	"same", "see", "should", "since", "so", "some", "still", "such", "take", "than",
	"that", "the", "their", "them", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "up", "use", "very", "want", "was", "way",
	"we", "well", "were", "what", "when", "where", "which", "while", "who", "will",
	"with", "would", "you", "your", "a", "i", "s", "t", "she", "us",
	"ours", "yours", "hers", "theirs", "whom", "why", "against", "off", "once",
	"own", "nor", "not", "no", "just", "don", "until", "having", "what's", "it's",
)

// IsStopWord reports whether word is an English stopword, ignoring case
func IsStopWord(word string) bool {
	return englishStopWords.Contains(strings.ToLower(word))
}
