package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

var (
	ErrInvalidCount   = errors.New("password count must be at least 1")
	ErrInvalidLength  = errors.New("password length must be at least 1")
	ErrCountTooLarge  = errors.New("password count exceeds the configured maximum")
	ErrLengthTooLarge = errors.New("password length exceeds the configured maximum")
)

// Limits bounds the size of a single request. Zero means unbounded.
type Limits struct {
	MaxCount  int
	MaxLength int
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen    *crypto.Generator
	hasher *crypto.Hasher
	limits Limits
}

// NewGeneratorService creates a new GeneratorService. A nil hasher disables
// hashing of generated passwords.
func NewGeneratorService(gen *crypto.Generator, hasher *crypto.Hasher, limits Limits) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen, hasher: hasher, limits: limits}
}

// Generate validates req and produces req.Count passwords.
func (s *GeneratorService) Generate(req model.GenerationRequest) (model.GenerationResponse, error) {
	if err := s.checkShape(req); err != nil {
		return model.GenerationResponse{}, err
	}

	opts := optionsFromRequest(req)
	alphabet := crypto.BuildAlphabet(opts)
	if err := crypto.Validate(opts, alphabet); err != nil {
		slog.Debug("request rejected", "length", req.Length, "alphabet_size", len(alphabet), "error", err)
		return model.GenerationResponse{}, err
	}

	passwords, err := s.gen.GenerateBatch(opts, alphabet, req.Count)
	if err != nil {
		return model.GenerationResponse{}, fmt.Errorf("generating passwords: %w", err)
	}

	resp := model.GenerationResponse{
		Passwords: make([]model.GeneratedPassword, len(passwords)),
		Alphabet:  string(alphabet),
	}
	for i, p := range passwords {
		resp.Passwords[i].Password = p
		if s.hasher == nil {
			continue
		}
		hash, err := s.hasher.Hash(p)
		if err != nil {
			return model.GenerationResponse{}, fmt.Errorf("hashing password: %w", err)
		}
		resp.Passwords[i].Hash = hash
	}

	slog.Debug("generated passwords",
		"count", req.Count,
		"length", req.Length,
		"alphabet_size", len(alphabet),
		"hashed", s.hasher != nil,
	)

	return resp, nil
}

func (s *GeneratorService) checkShape(req model.GenerationRequest) error {
	switch {
	case req.Count < 1:
		return ErrInvalidCount
	case req.Length < 1:
		return ErrInvalidLength
	case s.limits.MaxCount > 0 && req.Count > s.limits.MaxCount:
		return fmt.Errorf("%w (%d > %d)", ErrCountTooLarge, req.Count, s.limits.MaxCount)
	case s.limits.MaxLength > 0 && req.Length > s.limits.MaxLength:
		return fmt.Errorf("%w (%d > %d)", ErrLengthTooLarge, req.Length, s.limits.MaxLength)
	}
	return nil
}

// IsRejection reports whether err means the request cannot be satisfied as
// given, so the caller may retry with different parameters.
func IsRejection(err error) bool {
	return crypto.IsValidationError(err) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrCountTooLarge) ||
		errors.Is(err, ErrLengthTooLarge)
}

func optionsFromRequest(req model.GenerationRequest) crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:            req.Length,
		Digits:            req.IncludeDigits,
		Upper:             req.IncludeUpper,
		Lower:             req.IncludeLower,
		Punct:             req.IncludePunct,
		ExcludeAmbiguous:  req.ExcludeAmbiguous,
		ExcludeDuplicates: req.ExcludeDuplicates,
	}
}
