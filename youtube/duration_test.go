package youtube

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"minutes and seconds", "PT4M13S", "4:13"},
		{"hours minutes seconds", "PT1H2M3S", "1:02:03"},
		{"seconds only", "PT45S", "0:45"},
		{"empty", "", "0:00"},
		{"prefix only", "PT", "0:00"},
		{"hours only", "PT1H", "1:00:00"},
		{"minutes only", "PT2M", "2:00"},
		{"hours and seconds", "PT1H5S", "1:00:05"},
		{"double digit minutes", "PT10M2S", "10:02"},
		{"long video", "PT100H59M59S", "100:59:59"},
		{"no markers", "invalid", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.raw); got != tt.want {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
