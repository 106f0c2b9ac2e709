package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
// Strength is the length-derived rating of the generated password.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength string `json:"strength"`
}

// StrengthRequest represents a standalone strength classification request.
type StrengthRequest struct {
	Length int `json:"length"`
}

// StrengthResponse represents a strength classification response.
type StrengthResponse struct {
	Length   int    `json:"length"`
	Strength string `json:"strength"`
}
