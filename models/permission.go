package models

// Permission nodes understood by the service. Administrative API tokens carry
// them as scopes; sessions carry PermissionBypassBlockedItems when the host
// grants it.
const (
	permissionPrefix = "playervaults."

	PermissionAdmin              = permissionPrefix + "admin"
	PermissionBypassBlockedItems = permissionPrefix + "bypassblockeditems"
	PermissionCommandsUse        = permissionPrefix + "commands.use"
	PermissionDelete             = permissionPrefix + "delete"
	PermissionDeleteAll          = permissionPrefix + "delete.all"
)

// AllPermissions lists every permission node, in declaration order.
func AllPermissions() []string {
	return []string{
		PermissionAdmin,
		PermissionBypassBlockedItems,
		PermissionCommandsUse,
		PermissionDelete,
		PermissionDeleteAll,
	}
}

// HasPermission reports whether granted contains want. PermissionAdmin
// implies every other node.
func HasPermission(granted []string, want string) bool {
	for _, g := range granted {
		if g == want || g == PermissionAdmin {
			return true
		}
	}
	return false
}
