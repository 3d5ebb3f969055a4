package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"spaceai/internal/model"
	"spaceai/internal/provider"
)

// ListingProvider is the remote listings source consumed by the chat
// service. An empty slice signals "no matches" and is distinct from an
// error.
type ListingProvider interface {
	FetchListings(ctx context.Context, query string, hint *model.Location) ([]model.Listing, error)
}

// SearchLogger records fallback searches for diagnostics. Logging is
// best-effort and never blocks a conversation.
type SearchLogger interface {
	LogSearch(ctx context.Context, query string, c *model.Constraints, resultCount, tookMs int) error
}

// ChatResult is the outcome of interpreting one utterance.
type ChatResult struct {
	Results  []model.Listing
	Reply    string
	Notice   string
	LiveData bool
	Location *model.Location
	Took     int64
}

// ChatService owns the conversational search flow: it tries the remote
// provider once, falls back to the seed corpus with the deterministic
// constraint engine, and produces the response text. It holds no
// per-conversation state; the Conversation travels with the caller.
type ChatService struct {
	corpus          []model.Listing
	parser          *ConstraintParser
	locations       *LocationResolver
	matcher         *ListingMatcher
	provider        ListingProvider
	logs            SearchLogger
	providerTimeout time.Duration
}

// NewChatService creates a chat service. listingProvider and logs may
// be nil; a nil provider means every utterance goes straight to the
// fallback corpus.
func NewChatService(
	corpus []model.Listing,
	parser *ConstraintParser,
	locations *LocationResolver,
	matcher *ListingMatcher,
	listingProvider ListingProvider,
	logs SearchLogger,
	providerTimeout time.Duration,
) *ChatService {
	if providerTimeout <= 0 {
		providerTimeout = 10 * time.Second
	}
	return &ChatService{
		corpus:          corpus,
		parser:          parser,
		locations:       locations,
		matcher:         matcher,
		provider:        listingProvider,
		logs:            logs,
		providerTimeout: providerTimeout,
	}
}

// Corpus returns a copy of the fallback corpus, used as the active set
// of a fresh or reset conversation.
func (s *ChatService) Corpus() []model.Listing {
	out := make([]model.Listing, len(s.corpus))
	copy(out, s.corpus)
	return out
}

// Interpret processes one utterance against the carried conversation
// context and returns the result set together with the updated context.
// It never fails the conversation: provider errors degrade to the
// fallback corpus with a user-visible notice.
func (s *ChatService) Interpret(ctx context.Context, utterance string, convo model.Conversation) (*ChatResult, model.Conversation) {
	startTime := time.Now()
	convo.Utterances = append(convo.Utterances, utterance)

	result, live := s.tryProvider(ctx, utterance, &convo)
	if !live {
		result = s.searchFallback(utterance, &convo, result.Notice, startTime)
	}

	result.Location = convo.Location
	result.Reply = generateReply(utterance, len(result.Results))
	result.Took = time.Since(startTime).Milliseconds()
	return result, convo
}

// tryProvider makes the single bounded provider attempt. live is false
// when the fallback path should run instead; in that case the returned
// result only carries the notice text.
func (s *ChatService) tryProvider(ctx context.Context, utterance string, convo *model.Conversation) (*ChatResult, bool) {
	convo.LiveData = false
	if s.provider == nil {
		return &ChatResult{}, false
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	listings, err := s.provider.FetchListings(fetchCtx, utterance, convo.Location)
	if err != nil {
		log.Warn().Err(err).Str("query", utterance).Msg("provider fetch failed, using demo data")
		return &ChatResult{Notice: classifyProviderError(err)}, false
	}
	if len(listings) == 0 {
		return &ChatResult{Notice: "No listings found for this location. Showing demo data instead."}, false
	}

	// Provider results are adopted verbatim; the provider is assumed
	// pre-filtered. Its first record overwrites the carried location.
	convo.LiveData = true
	if loc := s.locations.FromDisplay(listings[0].Location); loc != nil {
		convo.Location = loc
	}
	log.Info().Int("count", len(listings)).Str("query", utterance).Msg("using live provider listings")
	return &ChatResult{Results: listings, LiveData: true}, true
}

// searchFallback runs the constraint engine over the seed corpus.
func (s *ChatService) searchFallback(utterance string, convo *model.Conversation, notice string, startTime time.Time) *ChatResult {
	loc := s.locations.Resolve(utterance, convo.Location)
	convo.Location = loc

	constraints := s.parser.Parse(utterance)
	constraints.Location = loc

	results := []model.Listing{}
	for _, listing := range s.corpus {
		if s.matcher.Match(listing, constraints, utterance) {
			results = append(results, listing)
		}
	}

	// Zero-match policy: a specified location means "no listings here"
	// is the honest answer; without one the full corpus is offered as
	// alternatives.
	if len(results) == 0 && (loc == nil || loc.City == "") {
		results = s.Corpus()
	}

	if s.logs != nil {
		count := len(results)
		took := int(time.Since(startTime).Milliseconds())
		go func() {
			if err := s.logs.LogSearch(context.Background(), utterance, constraints, count, took); err != nil {
				log.Debug().Err(err).Msg("search log write failed")
			}
		}()
	}

	return &ChatResult{Results: results, Notice: notice}
}

// classifyProviderError picks the user-visible notice for a failed
// provider call.
func classifyProviderError(err error) string {
	if provider.IsAuthError(err) {
		return "API key error. Please check your listings API key."
	}
	return fmt.Sprintf("Using demo data. %v", err)
}

// generateReply builds the short templated response. Template priority:
// zero results, affordable/budget, bright/light, cozy/warm, then a
// generic count message quoting the query.
func generateReply(utterance string, resultCount int) string {
	lower := strings.ToLower(utterance)

	if resultCount == 0 {
		return "I couldn't find exact matches for that, but here are some amazing spaces I think you'll love! Try refining your search or ask me follow-up questions."
	}
	if strings.Contains(lower, "affordable") || strings.Contains(lower, "budget") {
		return fmt.Sprintf("Great choice! I found %d budget-friendly %s that still look amazing!",
			resultCount, pluralize(resultCount, "property", "properties"))
	}
	if strings.Contains(lower, "bright") || strings.Contains(lower, "light") {
		return fmt.Sprintf("Perfect! Found %d bright and airy %s with tons of natural light!",
			resultCount, pluralize(resultCount, "space", "spaces"))
	}
	if strings.Contains(lower, "cozy") || strings.Contains(lower, "warm") {
		return fmt.Sprintf("Love it! Here %s %d cozy %s perfect for relaxing!",
			pluralize(resultCount, "is", "are"), resultCount, pluralize(resultCount, "space", "spaces"))
	}
	return fmt.Sprintf("Excellent! I found %d perfect %s for %q. Want me to refine this further?",
		resultCount, pluralize(resultCount, "match", "matches"), utterance)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
