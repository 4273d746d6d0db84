package service

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func TestGenerate_Presets(t *testing.T) {
	tests := []struct {
		typ     string
		wantLen int
	}{
		{"easy", 8},
		{"medium", 12},
		{"strong", 16},
		{"", 12},
		{"unknown", 12},
	}

	svc := NewGeneratorService()
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			resp, err := svc.Generate(model.GenerateRequest{Type: tt.typ})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(resp.Password) != tt.wantLen {
				t.Errorf("expected password length %d, got %d", tt.wantLen, len(resp.Password))
			}
		})
	}
}

func TestGenerate_EasyHasNoUppercaseOrSymbols(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Type: "easy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.IndexFunc(resp.Password, unicode.IsUpper) >= 0 {
		t.Errorf("easy password %q contains uppercase", resp.Password)
	}
	if strings.ContainsAny(resp.Password, crypto.SymbolChars) {
		t.Errorf("easy password %q contains symbols", resp.Password)
	}
}

func TestGenerate_CustomDefaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Type: model.TypeCustom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Password))
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Type:      model.TypeCustom,
		Length:    32,
		Uppercase: model.Bool(true),
		Digits:    model.Bool(false),
		Symbols:   model.Bool(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 32 {
		t.Errorf("expected password length 32, got %d", len(resp.Password))
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only letters", c)
		}
	}
}

func TestGenerate_CustomNoClassesFallsBackToLowercase(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Type:      model.TypeCustom,
		Length:    10,
		Uppercase: model.Bool(false),
		Digits:    model.Bool(false),
		Symbols:   model.Bool(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if c < 'a' || c > 'z' {
			t.Errorf("unexpected character %q in lowercase-only password", c)
		}
	}
}

func TestGenerate_LengthOutOfRange(t *testing.T) {
	svc := NewGeneratorService()

	_, err := svc.Generate(model.GenerateRequest{Type: model.TypeCustom, Length: 3})
	if !errors.Is(err, crypto.ErrLengthTooShort) {
		t.Errorf("expected ErrLengthTooShort, got %v", err)
	}

	_, err = svc.Generate(model.GenerateRequest{Type: model.TypeCustom, Length: 200})
	if !errors.Is(err, crypto.ErrLengthTooLong) {
		t.Errorf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestCheckStrength(t *testing.T) {
	svc := NewGeneratorService()

	resp := svc.CheckStrength(model.StrengthRequest{Password: "Abcdefghij1!"})
	if resp.Score != 5 || resp.Strength != crypto.LabelStrong || resp.Color != crypto.ColorStrong {
		t.Errorf("unexpected strong response: %+v", resp)
	}
	if resp.Feedback == nil {
		t.Error("feedback should be an empty list, not nil")
	}

	resp = svc.CheckStrength(model.StrengthRequest{Password: "abc"})
	if resp.Score != 0 || resp.Strength != crypto.LabelWeak {
		t.Errorf("unexpected weak response: %+v", resp)
	}
}
