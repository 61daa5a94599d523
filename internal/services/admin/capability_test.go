package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/rowactions/internal/rowactions"
)

func TestRoleGrants(t *testing.T) {
	tests := []struct {
		role       Role
		capability rowactions.Capability
		want       bool
	}{
		{RoleAdministrator, rowactions.CapabilityManagePlatform, true},
		{RoleAdministrator, rowactions.CapabilityModerateComments, true},
		{RoleEditor, rowactions.CapabilityEditItems, true},
		{RoleEditor, rowactions.CapabilityModerateComments, false},
		{RoleEditor, rowactions.CapabilityManagePlatform, false},
		{RoleModerator, rowactions.CapabilityModerateComments, true},
		{RoleModerator, rowactions.CapabilityEditItems, false},
		{RoleViewer, rowactions.CapabilityEditItems, false},
		{Role("ghost"), rowactions.CapabilityEditItems, false},
	}
	for _, tt := range tests {
		checker := roleChecker{role: tt.role}
		if got := checker.Can(context.Background(), tt.capability, 1); got != tt.want {
			t.Fatalf("role %s capability %s = %t, want %t", tt.role, tt.capability, got, tt.want)
		}
	}
}

func TestCheckerForRequestCookieOverride(t *testing.T) {
	req := httptest.NewRequest("GET", "/items", nil)
	req.AddCookie(&http.Cookie{Name: roleCookieName, Value: "moderator"})

	checker := CheckerForRequest(req, RoleViewer)
	if !checker.Can(context.Background(), rowactions.CapabilityModerateComments, 1) {
		t.Fatal("expected moderator capability from cookie role")
	}
}

func TestCheckerForRequestRejectsUnknownRole(t *testing.T) {
	req := httptest.NewRequest("GET", "/items", nil)
	req.AddCookie(&http.Cookie{Name: roleCookieName, Value: "superuser"})

	checker := CheckerForRequest(req, RoleEditor)
	if checker.Can(context.Background(), rowactions.CapabilityModerateComments, 1) {
		t.Fatal("unknown cookie role must fall back to default")
	}
	if !checker.Can(context.Background(), rowactions.CapabilityEditItems, 1) {
		t.Fatal("expected default editor capability")
	}
}

func TestCheckerForRequestNilRequest(t *testing.T) {
	checker := CheckerForRequest(nil, RoleViewer)
	if checker.Can(context.Background(), rowactions.CapabilityEditItems, 1) {
		t.Fatal("viewer must have no capabilities")
	}
}
