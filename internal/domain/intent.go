package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentHome
	IntentInventory
	IntentShowCategory
	IntentAlerts
	IntentCheckIn
	IntentDismiss
	IntentRemove
	IntentRank
	IntentScore
	IntentPlan
	IntentPlanFresh
	IntentProfile
	IntentSetProfile
	IntentRefresh
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentHome:
		return "home"
	case IntentInventory:
		return "inventory"
	case IntentShowCategory:
		return "show_category"
	case IntentAlerts:
		return "alerts"
	case IntentCheckIn:
		return "check_in"
	case IntentDismiss:
		return "dismiss"
	case IntentRemove:
		return "remove"
	case IntentRank:
		return "rank"
	case IntentScore:
		return "score"
	case IntentPlan:
		return "plan"
	case IntentPlanFresh:
		return "plan_fresh"
	case IntentProfile:
		return "profile"
	case IntentSetProfile:
		return "set_profile"
	case IntentRefresh:
		return "refresh"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user command.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. a category name or item number
}
