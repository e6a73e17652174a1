package sentiment

import (
	"strings"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// charsPerToken is the rough ratio used when no BPE encoding is available.
const charsPerToken = 4

// Tokenizer bounds the size of the text sent to the model.
type Tokenizer struct {
	mu       sync.Mutex
	encoder  *tiktoken.Tiktoken
	fallback bool
}

// NewTokenizerForModel loads the encoding for model. Offline hosts without a
// cached BPE file fall back to a character heuristic.
func NewTokenizerForModel(model string) *Tokenizer {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
	}
	if err != nil {
		return &Tokenizer{fallback: true}
	}
	return &Tokenizer{encoder: enc}
}

// Count returns the number of tokens in text.
func (t *Tokenizer) Count(text string) int {
	if text == "" {
		return 0
	}
	if t.fallback {
		return (len([]rune(text)) + charsPerToken - 1) / charsPerToken
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.encoder.Encode(text, nil, nil))
}

// Truncate cuts text down to at most max tokens. Text already within
// budget is returned unchanged.
func (t *Tokenizer) Truncate(text string, max int) string {
	if max <= 0 || text == "" {
		return text
	}
	if t.fallback {
		runes := []rune(text)
		limit := max * charsPerToken
		if len(runes) <= limit {
			return text
		}
		return strings.TrimSpace(string(runes[:limit]))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	tokens := t.encoder.Encode(text, nil, nil)
	if len(tokens) <= max {
		return text
	}
	return strings.TrimSpace(t.encoder.Decode(tokens[:max]))
}
