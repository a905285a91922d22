// Package conversation provides intent parsing and user notification
// implementations for the Meal-E REPL.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
	"github.com/Daniaarav2005/Meal-E/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches typed commands to intents using keywords and
// simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex   *regexp.Regexp
	intent  domain.IntentType
	payload int // capture group index carried as payload, 0 for none
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(home|status|summary|overview)$`), domain.IntentHome, 0},
		{regexp.MustCompile(`(?i)^(inventory|items|list|fridge|all)$`), domain.IntentInventory, 0},
		{regexp.MustCompile(`(?i)^show\s+(.+)$`), domain.IntentShowCategory, 1},
		{regexp.MustCompile(`(?i)^(alerts|expiring|soon|urgent)$`), domain.IntentAlerts, 0},
		{regexp.MustCompile(`(?i)^(checkin|check-in|check in)$`), domain.IntentCheckIn, 0},
		{regexp.MustCompile(`(?i)^dismiss\s+(\d+)$`), domain.IntentDismiss, 1},
		{regexp.MustCompile(`(?i)^(?:delete|remove|used|ate|toss)\s+(\d+)$`), domain.IntentRemove, 1},
		{regexp.MustCompile(`(?i)^(?:rank|top)\s+(\w+)$`), domain.IntentRank, 1},
		{regexp.MustCompile(`(?i)^(rank|top)$`), domain.IntentRank, 0},
		{regexp.MustCompile(`(?i)^(score|health)$`), domain.IntentScore, 0},
		{regexp.MustCompile(`(?i)^(plan fresh|regenerate|new plan)$`), domain.IntentPlanFresh, 0},
		{regexp.MustCompile(`(?i)^(plan|meals|meal plan)$`), domain.IntentPlan, 0},
		{regexp.MustCompile(`(?i)^(profile|settings|me)$`), domain.IntentProfile, 0},
		{regexp.MustCompile(`(?i)^set\s+(.+)$`), domain.IntentSetProfile, 1},
		{regexp.MustCompile(`(?i)^(refresh|sync|fetch|reload)$`), domain.IntentRefresh, 0},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp, 0},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit, 0},
	}
	return p
}

// Parse converts user input into an intent. A bare category name
// ("dairy", "leftovers") is shorthand for "show <category>".
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if rule.payload > 0 && rule.payload < len(m) {
			intent.Payload = strings.TrimSpace(m[rule.payload])
		}
		return intent, nil
	}

	if _, ok := domain.ParseCategory(trimmed); ok {
		return &domain.Intent{Type: domain.IntentShowCategory, Payload: trimmed}, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}
