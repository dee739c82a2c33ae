package filter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalogueYAML(t *testing.T) {
	path := writeFile(t, "cards.yaml", `
filters: [all, systems]
items:
  - title: one
    category: ml, systems
  - title: two
    category: web
    summary: second
`)
	b, err := LoadCatalogue(path)
	if err != nil {
		t.Fatalf("LoadCatalogue: %v", err)
	}
	if len(b.Controls) != 2 || b.Controls[1].Label != "systems" {
		t.Errorf("controls = %+v", b.Controls)
	}
	if len(b.Items) != 2 || b.Items[1].Summary != "second" {
		t.Errorf("items = %+v", b.Items)
	}
	if !b.Items[0].Visible || !b.Items[1].Visible {
		t.Error("loaded items should start visible")
	}
}

func TestLoadCatalogueCSVDerivesFilters(t *testing.T) {
	path := writeFile(t, "cards.csv", "title,category,summary\n"+
		"one,\"ml, systems\",first\n"+
		"two,Web,second\n"+
		"three,systems,third\n")

	b, err := LoadCatalogue(path)
	if err != nil {
		t.Fatalf("LoadCatalogue: %v", err)
	}
	want := []string{"all", "ml", "systems", "web"}
	if len(b.Controls) != len(want) {
		t.Fatalf("controls = %+v, want %v", b.Controls, want)
	}
	for i, l := range want {
		if b.Controls[i].Label != l {
			t.Errorf("control %d = %q, want %q", i, b.Controls[i].Label, l)
		}
	}

	if err := b.ActivateLabel("systems"); err != nil {
		t.Fatal(err)
	}
	vis := b.Visible()
	if len(vis) != 2 || vis[0].Title != "one" || vis[1].Title != "three" {
		t.Errorf("Visible() = %+v", vis)
	}
}

func TestLoadCatalogueErrors(t *testing.T) {
	t.Run("missing category", func(t *testing.T) {
		path := writeFile(t, "cards.yml", "items:\n  - title: orphan\n")
		if _, err := LoadCatalogue(path); !errors.Is(err, ErrMissingCategory) {
			t.Errorf("error = %v, want ErrMissingCategory", err)
		}
	})
	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "cards.json", "{}")
		if _, err := LoadCatalogue(path); !errors.Is(err, ErrUnsupportedCatalogue) {
			t.Errorf("error = %v, want ErrUnsupportedCatalogue", err)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yml")
		if _, err := LoadCatalogue(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want not-exist", err)
		}
	})
	t.Run("bad yaml", func(t *testing.T) {
		path := writeFile(t, "cards.yml", "items: [: :")
		if _, err := LoadCatalogue(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestDefaultBoard(t *testing.T) {
	b := DefaultBoard()
	if len(b.Controls) == 0 || b.Controls[0].Label != "all" {
		t.Fatalf("default board controls = %+v", b.Controls)
	}
	if len(b.Items) == 0 {
		t.Fatal("default board has no items")
	}
	for _, c := range b.Controls {
		if err := b.ActivateLabel(c.Label); err != nil {
			t.Fatalf("ActivateLabel(%q): %v", c.Label, err)
		}
		if len(b.Visible()) == 0 {
			t.Errorf("filter %q hides every default item", c.Label)
		}
	}
}

func TestDeriveFilters(t *testing.T) {
	got := DeriveFilters([]Item{
		{Category: "Web, systems"},
		{Category: "all, ml"},
		{Category: " systems "},
	})
	want := []string{"all", "ml", "systems", "web"}
	if len(got) != len(want) {
		t.Fatalf("DeriveFilters = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DeriveFilters[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
