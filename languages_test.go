package glot

import (
	"testing"
)

func TestLanguages_Order(t *testing.T) {
	langs := Languages()

	if len(langs) == 0 {
		t.Fatal("Expected a non-empty language registry")
	}

	// The first entries are pinned: UIs rely on definition order.
	want := []Language{
		{"English (US)", "en"},
		{"English (UK)", "en"},
		{"Turkish", "tr"},
	}
	for i, w := range want {
		if langs[i] != w {
			t.Errorf("Languages()[%d] = %+v, want %+v", i, langs[i], w)
		}
	}
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	first := Languages()
	first[0] = Language{"Mutated", "xx"}

	if Languages()[0].Name != "English (US)" {
		t.Error("Mutating the returned slice must not affect the registry")
	}
}

func TestLanguageNames(t *testing.T) {
	names := LanguageNames()
	langs := Languages()

	if len(names) != len(langs) {
		t.Fatalf("Expected %d names, got %d", len(langs), len(names))
	}
	for i := range langs {
		if names[i] != langs[i].Name {
			t.Errorf("Name %d = %q, want %q", i, names[i], langs[i].Name)
		}
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"Turkish", "tr", true},
		{"English (US)", "en", true},
		{"English (UK)", "en", true},
		{"Chinese (Simplified)", "zh-cn", true},
		{"Klingon", "", false},
		{"english (us)", "", false}, // lookup is case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CodeOf(tt.name)
			if ok != tt.ok || code != tt.code {
				t.Errorf("CodeOf(%q) = (%q, %v), want (%q, %v)", tt.name, code, ok, tt.code, tt.ok)
			}
		})
	}
}

func TestNamesFor(t *testing.T) {
	en := NamesFor("en")
	if len(en) != 2 || en[0] != "English (US)" || en[1] != "English (UK)" {
		t.Errorf(`NamesFor("en") = %v, want [English (US) English (UK)]`, en)
	}

	tr := NamesFor("tr")
	if len(tr) != 1 || tr[0] != "Turkish" {
		t.Errorf(`NamesFor("tr") = %v, want [Turkish]`, tr)
	}

	if names := NamesFor("zz"); len(names) != 0 {
		t.Errorf(`NamesFor("zz") = %v, want empty`, names)
	}
}

func TestLocaleFor(t *testing.T) {
	tests := []struct {
		code   string
		locale string
	}{
		{"tr", "tr-TR"},
		{"en", "en-US"},
		{"pt", "pt-BR"},
		{"zh-cn", "zh-CN"},
		{"eo", "eo"}, // registered language without a TTS locale
		{"zz", "zz"}, // unknown code, identity fallback
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := LocaleFor(tt.code); got != tt.locale {
				t.Errorf("LocaleFor(%q) = %q, want %q", tt.code, got, tt.locale)
			}
		})
	}
}

func TestRegistryConsistency(t *testing.T) {
	// Every registered name resolves back to its code.
	for _, l := range Languages() {
		code, ok := CodeOf(l.Name)
		if !ok || code != l.Code {
			t.Errorf("CodeOf(%q) = (%q, %v), want (%q, true)", l.Name, code, ok, l.Code)
		}
	}
}
