package workflow

import "strings"

// Role tokens as they appear in the access token claims.
const (
	RoleEquipment = "ekipman"
	RoleEnergy    = "enerji"
)

// menuOrder fixes the display order of workflows on the menu.
var menuOrder = []ID{Forklift, Manlift, Scaffold, Electricity, Water}

var roleWorkflows = map[string][]ID{
	RoleEquipment: {Forklift, Manlift, Scaffold},
	RoleEnergy:    {Electricity, Water},
}

// VisibleWorkflows returns the workflows reachable with the given role set:
// the union of every role's fixed group, in menu order. Roles are matched
// case-insensitively; unknown roles unlock nothing.
func VisibleWorkflows(roles []string) []ID {
	unlocked := make(map[ID]bool)
	for _, role := range roles {
		for _, id := range roleWorkflows[strings.ToLower(role)] {
			unlocked[id] = true
		}
	}

	visible := make([]ID, 0, len(unlocked))
	for _, id := range menuOrder {
		if unlocked[id] {
			visible = append(visible, id)
		}
	}
	return visible
}
