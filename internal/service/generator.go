package service

import (
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

// GeneratorService handles password generation and strength business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password for a preset or custom request.
// Unknown or missing types fall back to the medium preset.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	var opts crypto.GeneratorOptions
	if req.Type == model.TypeCustom {
		defaults := crypto.DefaultOptions()
		opts = crypto.GeneratorOptions{
			Length:    req.Length,
			Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
			Digits:    boolOrDefault(req.Digits, defaults.Digits),
			Symbols:   boolOrDefault(req.Symbols, defaults.Symbols),
		}
		if opts.Length == 0 {
			opts.Length = defaults.Length
		}
	} else {
		var ok bool
		opts, ok = crypto.PresetOptions(req.Type)
		if !ok {
			slog.Debug("unknown password type, using medium preset", "type", req.Type)
		}
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{Password: password}, nil
}

// CheckStrength scores a password.
func (s *GeneratorService) CheckStrength(req model.StrengthRequest) model.StrengthResponse {
	st := crypto.Evaluate(req.Password)
	feedback := st.Feedback
	if feedback == nil {
		feedback = []string{}
	}
	return model.StrengthResponse{
		Strength: st.Label,
		Color:    st.Color,
		Score:    st.Score,
		Feedback: feedback,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
