package roles_test

import (
	"testing"

	"github.com/Houeta/restobot/internal/roles"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role     string
		expected string
	}{
		{"bartender", "Bartender"},
		{"waiter", "Waiter"},
		{"cook", "Cook"},
		{"bar_manager", "Bar Manager"},
		{"floor_manager", "Floor Manager"},
		{"head_chef", "Head Chef"},
		{"restaurant_manager", "Restaurant Manager"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, roles.Name(tc.role))
	}
}

func TestName_UnknownPassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sommelier", roles.Name("sommelier"))
	assert.Empty(t, roles.Name(""))
}

func TestAll_CoversEveryRole(t *testing.T) {
	t.Parallel()

	all := roles.All()
	assert.Len(t, all, 7)
	for _, role := range all {
		assert.NotEqual(t, role, roles.Name(role), "role %q should have a display label", role)
	}
}

func TestPriorityBadge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		priority string
		emoji    string
		label    string
	}{
		{"high", "🔴", "High"},
		{"medium", "🟡", "Medium"},
		{"low", "🟢", "Low"},
		{"urgent", "⚪", ""},
		{"", "⚪", ""},
	}

	for _, tc := range tests {
		emoji, label := roles.PriorityBadge(tc.priority)
		assert.Equal(t, tc.emoji, emoji)
		assert.Equal(t, tc.label, label)
	}
}
