package assistant

import "context"

// wordSampler draws n words with replacement, satisfied by *lexicon.Lexicon.
type wordSampler interface {
	Sample(n int) []string
}

// BatchResult augments a GameResult with the word that produced it,
// matching the wire shape the original chatbot tool returned:
// {"word", "num_generations", "score", "stop_reason"}.
type BatchResult struct {
	Word string `json:"word"`
	GameResult
}

// RunBatch draws n words from sampler, plays each through client, and
// returns the single highest-score result augmented with its word. This is
// the Go-native reimplementation of get_results_for_random_words from the
// original chatbot_interface/chatbot_tools.py, without the LLM tool-calling
// framework around it — the batch orchestration itself is what spec §6
// describes as a "collaborator reached through the boundary", not a core
// endpoint.
func RunBatch(ctx context.Context, client *Client, sampler wordSampler, n int) (BatchResult, error) {
	var best BatchResult
	haveBest := false

	for _, word := range sampler.Sample(n) {
		result, err := client.PlayWord(ctx, word)
		if err != nil {
			continue
		}
		if !haveBest || result.Score > best.Score {
			best = BatchResult{Word: word, GameResult: result}
			haveBest = true
		}
	}

	if !haveBest {
		return BatchResult{}, errNoSuccessfulRuns
	}
	return best, nil
}

var errNoSuccessfulRuns = batchError("no word in the batch produced a successful run")

type batchError string

func (e batchError) Error() string { return string(e) }
