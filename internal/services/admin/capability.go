package admin

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/rowactions/internal/rowactions"
)

// Role names an operator role with a fixed capability grant.
type Role string

const (
	// RoleAdministrator holds every capability.
	RoleAdministrator Role = "administrator"
	// RoleEditor manages content items, terms, and attachments.
	RoleEditor Role = "editor"
	// RoleModerator manages comments.
	RoleModerator Role = "moderator"
	// RoleViewer holds no capabilities.
	RoleViewer Role = "viewer"
)

// roleCookieName selects the operator role for a browser session. The demo
// surface has no account system, so the role travels as a plain cookie.
const roleCookieName = "ra_role"

var roleGrants = map[Role]map[rowactions.Capability]bool{
	RoleAdministrator: {
		rowactions.CapabilityManagePlatform:   true,
		rowactions.CapabilityEditItems:        true,
		rowactions.CapabilityEditPrincipals:   true,
		rowactions.CapabilityManageTerms:      true,
		rowactions.CapabilityModerateComments: true,
		rowactions.CapabilityUploadFiles:      true,
	},
	RoleEditor: {
		rowactions.CapabilityEditItems:   true,
		rowactions.CapabilityManageTerms: true,
		rowactions.CapabilityUploadFiles: true,
	},
	RoleModerator: {
		rowactions.CapabilityModerateComments: true,
	},
	RoleViewer: {},
}

// ValidRole reports whether the value names a known role.
func ValidRole(value string) bool {
	_, ok := roleGrants[Role(value)]
	return ok
}

// roleChecker resolves capability checks against the static role grants.
type roleChecker struct {
	role Role
}

func (c roleChecker) Can(_ context.Context, capability rowactions.Capability, _ int64) bool {
	grants, ok := roleGrants[c.role]
	if !ok {
		return false
	}
	return grants[capability]
}

// CheckerForRequest resolves the viewer's capability checker from the role
// cookie, falling back to the configured default role.
func CheckerForRequest(r *http.Request, defaultRole Role) rowactions.CapabilityChecker {
	role := defaultRole
	if r != nil {
		if cookie, err := r.Cookie(roleCookieName); err == nil {
			if value := strings.TrimSpace(cookie.Value); ValidRole(value) {
				role = Role(value)
			}
		}
	}
	return roleChecker{role: role}
}
