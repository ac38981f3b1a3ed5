package cashbook

import "testing"

func TestLocaleFor(t *testing.T) {
	testCases := []struct {
		name        string
		want        string
		wantDecimal rune
	}{
		{"en", "en", '.'},
		{"en-US", "en", '.'},
		{"ko_KR.UTF-8", "ko", '.'},
		{"de-CH", "de", ','},
		{"fr_FR@euro", "fr", ','},
		{"pt-BR", "pt", ','},
		{"C", "en", '.'},
		{"", "en", '.'},
		{"not a locale!", "en", '.'},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := LocaleFor(tc.name)
			if got.String() != tc.want {
				t.Errorf("LocaleFor(%q) = %v, want %v", tc.name, got, tc.want)
			}
			if got.Decimal != tc.wantDecimal {
				t.Errorf("LocaleFor(%q).Decimal = %q, want %q", tc.name, got.Decimal, tc.wantDecimal)
			}
		})
	}
}
