package model

// GenerationRequest represents a password batch generation request.
type GenerationRequest struct {
	Count             int
	Length            int
	IncludeDigits     bool
	IncludeUpper      bool
	IncludeLower      bool
	IncludePunct      bool
	ExcludeAmbiguous  bool
	ExcludeDuplicates bool
}

// DefaultRequest returns the request used when no flags are given:
// one 16 character password with every class enabled.
func DefaultRequest() GenerationRequest {
	return GenerationRequest{
		Count:         1,
		Length:        16,
		IncludeDigits: true,
		IncludeUpper:  true,
		IncludeLower:  true,
		IncludePunct:  true,
	}
}

// GeneratedPassword is a single generated password with its optional hash.
type GeneratedPassword struct {
	Password string
	Hash     string
}

// GenerationResponse represents the result of a generation request.
type GenerationResponse struct {
	Passwords []GeneratedPassword
	Alphabet  string
}

// Strings returns the plain passwords in generation order.
func (r GenerationResponse) Strings() []string {
	out := make([]string, len(r.Passwords))
	for i, p := range r.Passwords {
		out[i] = p.Password
	}
	return out
}
