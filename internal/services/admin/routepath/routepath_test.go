package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if AssetsPrefix != "/assets/" {
		t.Fatalf("AssetsPrefix = %q", AssetsPrefix)
	}
	if Items != "/items" {
		t.Fatalf("Items = %q", Items)
	}
	if Principals != "/principals" {
		t.Fatalf("Principals = %q", Principals)
	}
	if Terms != "/terms" {
		t.Fatalf("Terms = %q", Terms)
	}
	if Comments != "/comments" {
		t.Fatalf("Comments = %q", Comments)
	}
	if Attachments != "/attachments" {
		t.Fatalf("Attachments = %q", Attachments)
	}
}

func TestActionsRunBuilder(t *testing.T) {
	t.Parallel()

	if got := ActionsRun("comment"); got != "/actions/run/comment" {
		t.Fatalf("ActionsRun = %q", got)
	}
	if got := ActionsRun("kind/with slash"); got != "/actions/run/kind%2Fwith%20slash" {
		t.Fatalf("ActionsRun escaped = %q", got)
	}
}
