package crypto

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		password     string
		wantScore    int
		wantLabel    string
		wantColor    string
		wantFeedback int
	}{
		{"", 0, LabelWeak, ColorWeak, 4},
		{"abc", 0, LabelWeak, ColorWeak, 4},
		{"abcdefgh", 1, LabelWeak, ColorWeak, 3},
		{"Abcdefgh", 2, LabelWeak, ColorWeak, 2},
		{"Abcdefg1", 3, LabelMedium, ColorMedium, 1},
		{"Abcdef1!", 4, LabelStrong, ColorStrong, 0},
		{"Abcdefghij1!", 5, LabelStrong, ColorStrong, 0},
		{"abcdefghijkl", 2, LabelWeak, ColorWeak, 3},
		{"a1!", 2, LabelWeak, ColorWeak, 2},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := Evaluate(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Evaluate(%q).Score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel || got.Color != tt.wantColor {
				t.Errorf("Evaluate(%q) = %s/%s, want %s/%s", tt.password, got.Label, got.Color, tt.wantLabel, tt.wantColor)
			}
			if len(got.Feedback) != tt.wantFeedback {
				t.Errorf("Evaluate(%q) feedback = %v, want %d entries", tt.password, got.Feedback, tt.wantFeedback)
			}
		})
	}
}

func TestEvaluateGeneratedStrongPreset(t *testing.T) {
	opts, _ := PresetOptions(PresetStrong)
	for i := 0; i < 20; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if got := Evaluate(password); got.Score != MaxScore {
			t.Errorf("strong preset password %q scored %d, want %d", password, got.Score, MaxScore)
		}
	}
}
