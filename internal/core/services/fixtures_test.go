package services

import (
	"context"
	"regexp"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

func tok(text, lemma, tag string) domain.TaggedToken {
	return domain.TaggedToken{Text: text, Lemma: lemma, Tag: tag}
}

func testConfig() domain.RunConfig {
	cfg := domain.NewRunConfig(domain.DefaultAppSettings())
	cfg.Language = "it"
	cfg.OutputDir = "out"
	cfg.LexiconPath = "lexicon.csv"
	cfg.ConstraintsPath = "constraints.tsv"
	return cfg
}

func hiatus() domain.Constraint {
	return domain.Constraint{Name: "hiatus", Pattern: regexp.MustCompile(`[aeiou]#[aeiou]`)}
}

func finalA() domain.Constraint {
	return domain.Constraint{Name: "final_a", Pattern: regexp.MustCompile(`a$`)}
}

// codingPairs holds "bella idea" in both orders and a prenominal "gran casa".
func codingPairs() []domain.PairToken {
	return []domain.PairToken{
		{
			SentenceID: "s1.mp3", ClientID: "c1", AudioFile: "s1.mp3", Sentence: "una bella idea",
			Tokens: [2]domain.TaggedToken{tok("bella", "bello", "ADJ"), tok("idea", "idea", "NOUN")},
			Lemmas: []string{"una", "bello", "idea"},
			PForms: [2]string{"bɛl.la", "i.dɛ.a"},
		},
		{
			SentenceID: "s2.mp3", ClientID: "c2", AudioFile: "s2.mp3", Sentence: "un'idea bella",
			Tokens: [2]domain.TaggedToken{tok("idea", "idea", "NOUN"), tok("bella", "bello", "ADJ")},
			Lemmas: []string{"uno", "idea", "bello"},
			PForms: [2]string{"i.dɛ.a", "bɛl.la"},
		},
		{
			SentenceID: "s3.mp3", ClientID: "c1", AudioFile: "s3.mp3", Sentence: "una gran casa",
			Tokens: [2]domain.TaggedToken{tok("gran", "grande", "ADJ"), tok("casa", "casa", "NOUN")},
			Lemmas: []string{"una", "grande", "casa"},
			PForms: [2]string{"gran", "ka.sa"},
		},
	}
}

// mockCorpus serves fixed sentences for one language.
type mockCorpus struct {
	language  string
	sentences []domain.Sentence
	readLang  string
}

func (c *mockCorpus) Detect(_ context.Context, _ string) (string, error) {
	if c.language == "" {
		return "", domain.ErrCorpusNotFound
	}
	return c.language, nil
}

func (c *mockCorpus) Read(_ context.Context, _, language string) ([]domain.Sentence, error) {
	c.readLang = language
	out := make([]domain.Sentence, len(c.sentences))
	copy(out, c.sentences)
	return out, nil
}

// mockTagger tags sentences from a fixed table.
type mockTagger struct {
	tokens map[string][]domain.TaggedToken
	calls  int
}

func (t *mockTagger) Name() string  { return "stub" }
func (t *mockTagger) Model() string { return "test" }

func (t *mockTagger) Tag(_ context.Context, text string) ([]domain.TaggedToken, error) {
	t.calls++
	tokens, ok := t.tokens[text]
	if !ok {
		return nil, domain.ErrTaggerUnavailable
	}
	out := make([]domain.TaggedToken, len(tokens))
	copy(out, tokens)
	return out, nil
}

func (t *mockTagger) Ping(context.Context) error { return nil }

// mockLexiconLoader returns a fixed lexicon for any path.
type mockLexiconLoader struct {
	lexicon driven.Lexicon
}

func (l *mockLexiconLoader) Load(context.Context, string) (driven.Lexicon, error) {
	return l.lexicon, nil
}

// mockConstraintLoader returns fixed constraints for any path.
type mockConstraintLoader struct {
	constraints []domain.Constraint
	err         error
	loads       int
}

func (c *mockConstraintLoader) Load(context.Context, string) ([]domain.Constraint, error) {
	c.loads++
	return c.constraints, c.err
}

// mockWatcher hands out a channel the test controls.
type mockWatcher struct {
	changes chan struct{}
}

func (w *mockWatcher) Watch(context.Context, string) (<-chan struct{}, error) {
	return w.changes, nil
}
