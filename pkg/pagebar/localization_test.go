package pagebar

import "testing"

const spanishTabs = `
"tab.home" = "Inicio"
"tab.settings" = "Ajustes"
`

func TestLocalizerTranslatesAndFallsBack(t *testing.T) {
	l := NewLocalizer("es")
	if err := l.AddMessages("active.es.toml", []byte(spanishTabs)); err != nil {
		t.Fatalf("AddMessages: %v", err)
	}

	if got := l.Localize("tab.home"); got != "Inicio" {
		t.Errorf("Localize(tab.home) = %q, want Inicio", got)
	}
	if got := l.Localize("Downloads"); got != "Downloads" {
		t.Errorf("untranslated label = %q, want literal", got)
	}

	l.SetLanguages("en")
	if got := l.Localize("tab.home"); got != "tab.home" {
		t.Errorf("english has no message, got %q", got)
	}
}

func TestNilLocalizerReturnsID(t *testing.T) {
	var l *Localizer
	if got := l.Localize("Home"); got != "Home" {
		t.Fatalf("Localize = %q", got)
	}
}
