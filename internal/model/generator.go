package model

// Generation types accepted by POST /generate_password besides the preset names.
const TypeCustom = "custom"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Type      string `json:"type"`
	Length    int    `json:"length,omitempty"`
	Uppercase *bool  `json:"uppercase,omitempty"`
	Digits    *bool  `json:"digits,omitempty"`
	Symbols   *bool  `json:"symbols,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
}

// StrengthRequest represents a strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents a strength check response.
type StrengthResponse struct {
	Strength string   `json:"strength"`
	Color    string   `json:"color"`
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Bool returns a pointer to b, for the optional request fields.
func Bool(b bool) *bool { return &b }
