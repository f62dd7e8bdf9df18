package textproc

import (
	"regexp"
	"strings"
	"sync"

	"github.com/bbalet/stopwords"
	"github.com/tebeka/snowball"
	"go.uber.org/zap"
)

var (
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	digitsRe      = regexp.MustCompile(`\p{N}+`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// Normalizer produces the auxiliary preprocessed form of an email text:
// lowercased, punctuation and digits stripped, Portuguese stopwords removed,
// tokens stemmed. The keyword scorer deliberately does not consume this
// output; it exists as an alternate preprocessing path.
type Normalizer struct {
	mu      sync.Mutex
	stemmer *snowball.Stemmer
	logger  *zap.Logger
}

// NewNormalizer creates a Portuguese normalizer. When the Snowball stemmer
// cannot be constructed the normalizer still works, skipping the stemming
// step.
func NewNormalizer(logger *zap.Logger) *Normalizer {
	stemmer, err := snowball.New("portuguese")
	if err != nil {
		logger.Warn("portuguese stemmer unavailable, normalizing without stemming", zap.Error(err))
		stemmer = nil
	}
	return &Normalizer{
		stemmer: stemmer,
		logger:  logger,
	}
}

// Normalize returns the token-joined normalized form of the text.
func (n *Normalizer) Normalize(text string) string {
	t := strings.ToLower(text)
	t = punctuationRe.ReplaceAllString(t, " ")
	t = digitsRe.ReplaceAllString(t, " ")
	t = spacesRe.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}

	t = stopwords.CleanString(t, "pt", false)

	tokens := strings.Fields(t)
	out := tokens[:0]
	for _, token := range tokens {
		token = n.stem(token)
		// Very short tokens carry no signal.
		if len([]rune(token)) > 2 {
			out = append(out, token)
		}
	}

	return strings.Join(out, " ")
}

func (n *Normalizer) stem(token string) string {
	if n.stemmer == nil {
		return token
	}
	// The libstemmer handle is not safe for concurrent use.
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stemmer.Stem(token)
}

// Close releases the stemmer handle.
func (n *Normalizer) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stemmer != nil {
		n.stemmer.Close()
		n.stemmer = nil
	}
}
