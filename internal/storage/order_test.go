package storage

import (
	"testing"

	"github.com/mkravt/piemenu/internal/menu"
)

func TestApplyOrders(t *testing.T) {
	store := openTestStore(t)

	root := &menu.Item{
		Label: "main",
		Children: []*menu.Item{
			{Label: "files", Children: []*menu.Item{
				{Label: "documents", Action: "exec", Arg: "true"},
				{Label: "downloads", Action: "exec", Arg: "true"},
			}},
			{Label: "edit", Action: "exec", Arg: "true"},
			{Label: "quit", Action: "exec", Arg: "true"},
		},
	}

	if err := store.SaveOrder("main", "main", []string{"quit", "files", "edit"}); err != nil {
		t.Fatalf("SaveOrder() error = %v", err)
	}
	if err := store.SaveOrder("main", "main/files", []string{"downloads", "documents"}); err != nil {
		t.Fatalf("SaveOrder() error = %v", err)
	}

	if err := store.ApplyOrders("main", root); err != nil {
		t.Fatalf("ApplyOrders() error = %v", err)
	}

	gotTop := labels(root.Children)
	wantTop := []string{"quit", "files", "edit"}
	for i := range wantTop {
		if gotTop[i] != wantTop[i] {
			t.Fatalf("top level order = %v, want %v", gotTop, wantTop)
		}
	}

	gotSub := labels(root.Children[1].Children)
	wantSub := []string{"downloads", "documents"}
	for i := range wantSub {
		if gotSub[i] != wantSub[i] {
			t.Fatalf("sub level order = %v, want %v", gotSub, wantSub)
		}
	}
}

func TestApplyOrdersNoSavedOrder(t *testing.T) {
	store := openTestStore(t)

	root := &menu.Item{
		Label: "main",
		Children: []*menu.Item{
			{Label: "a", Action: "print", Arg: "a"},
			{Label: "b", Action: "print", Arg: "b"},
		},
	}

	if err := store.ApplyOrders("main", root); err != nil {
		t.Fatalf("ApplyOrders() error = %v", err)
	}

	got := labels(root.Children)
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("order changed without saved order: %v", got)
	}
}

func labels(children []*menu.Item) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Label
	}
	return out
}
