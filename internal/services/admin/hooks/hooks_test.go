package hooks

import (
	"strings"
	"testing"

	"github.com/louisbranch/rowactions/internal/rowactions"
	"github.com/louisbranch/rowactions/internal/services/admin/storage"
)

func TestRowRefAdapters(t *testing.T) {
	tests := []struct {
		name string
		ref  RowRef
		want RowRef
	}{
		{
			name: "item carries subkind",
			ref:  ForItem(storage.Item{ID: 4, Subkind: "article"}),
			want: RowRef{Kind: rowactions.KindItem, Subkind: "article", ObjectID: 4},
		},
		{
			name: "principal",
			ref:  ForPrincipal(storage.Principal{ID: 9}),
			want: RowRef{Kind: rowactions.KindPrincipal, ObjectID: 9},
		},
		{
			name: "term uses taxonomy as subkind",
			ref:  ForTerm(storage.Term{ID: 2, Taxonomy: "category"}),
			want: RowRef{Kind: rowactions.KindTerm, Subkind: "category", ObjectID: 2},
		},
		{
			name: "comment",
			ref:  ForComment(storage.Comment{ID: 11}),
			want: RowRef{Kind: rowactions.KindComment, ObjectID: 11},
		},
		{
			name: "attachment",
			ref:  ForAttachment(storage.Attachment{ID: 3}),
			want: RowRef{Kind: rowactions.KindAttachment, ObjectID: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ref != tt.want {
				t.Fatalf("ref = %+v, want %+v", tt.ref, tt.want)
			}
		})
	}
}

func TestDefaultsBuildBaselineActions(t *testing.T) {
	list := Defaults(ForComment(storage.Comment{ID: 5}))
	keys := list.Keys()
	if len(keys) != 2 || keys[0] != "edit" || keys[1] != "delete" {
		t.Fatalf("unexpected keys %v", keys)
	}
	edit, _ := list.Get("edit")
	if !strings.Contains(edit, "/comments/edit?id=5") {
		t.Fatalf("unexpected edit anchor %s", edit)
	}
}
