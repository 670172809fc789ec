// Package roles translates the fixed set of restaurant role and priority
// identifiers into display labels. All mappings are total: unknown
// identifiers fall back to a neutral value instead of an error.
package roles

var roleNames = map[string]string{
	"bartender":          "Bartender",
	"waiter":             "Waiter",
	"cook":               "Cook",
	"bar_manager":        "Bar Manager",
	"floor_manager":      "Floor Manager",
	"head_chef":          "Head Chef",
	"restaurant_manager": "Restaurant Manager",
}

var priorityEmojis = map[string]string{
	"high":   "🔴",
	"medium": "🟡",
	"low":    "🟢",
}

var priorityNames = map[string]string{
	"high":   "High",
	"medium": "Medium",
	"low":    "Low",
}

// All returns the closed set of role identifiers in a stable order.
func All() []string {
	return []string{
		"bartender",
		"waiter",
		"cook",
		"bar_manager",
		"floor_manager",
		"head_chef",
		"restaurant_manager",
	}
}

// Name returns the display label for a role identifier.
// Unknown identifiers pass through unchanged.
func Name(role string) string {
	if name, ok := roleNames[role]; ok {
		return name
	}
	return role
}

// PriorityBadge returns the emoji indicator and display label for a task
// priority. Unrecognized priorities yield a neutral indicator and an
// empty label.
func PriorityBadge(priority string) (string, string) {
	emoji, ok := priorityEmojis[priority]
	if !ok {
		emoji = "⚪"
	}
	return emoji, priorityNames[priority]
}
