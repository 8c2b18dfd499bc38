package ui

import (
	"testing"

	"github.com/five82/cosmic/internal/catalog"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nebula" || names[1] != "Aurora" || names[2] != "Eclipse" {
		t.Fatalf("ThemeNames() = %v, want [Nebula Aurora Eclipse]", names)
	}

	names[0] = "changed"
	if ThemeNames()[0] != "Nebula" {
		t.Fatalf("ThemeNames() exposes internal order")
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nebula":  "Aurora",
		"Aurora":  "Eclipse",
		"Eclipse": "Nebula",
		"Unknown": "Nebula",
	}
	for current, want := range cases {
		if got := NextTheme(current); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", current, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != defaultThemeName {
		t.Fatalf("GetTheme(Unknown).Name = %q, want %s (fallback)", got, defaultThemeName)
	}
}

func TestThemesColorEveryFormat(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, format := range catalog.Formats {
			if th.FormatColors[format] == "" {
				t.Fatalf("theme %s has no color for %s", name, format)
			}
		}
	}
}
