package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// Generator produces a batch of passwords for a request.
type Generator interface {
	Generate(req model.GenerationRequest) (model.GenerationResponse, error)
}

// Session runs the interactive prompt, generate, ask-again loop.
type Session struct {
	gen    Generator
	prompt *prompter
	out    io.Writer
}

// NewSession creates a Session reading answers from in and writing to out.
func NewSession(gen Generator, in io.Reader, out io.Writer) *Session {
	return &Session{gen: gen, prompt: newPrompter(in, out), out: out}
}

// Run loops until the user declines to generate again or input ends.
// Rejected requests are reported and do not end the session.
func (s *Session) Run() error {
	err := s.loop()
	if errors.Is(err, errInputClosed) {
		slog.Debug("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) loop() error {
	for {
		req, err := s.askRequest()
		if err != nil {
			return err
		}

		resp, err := s.gen.Generate(req)
		switch {
		case err == nil:
			bold.Fprintln(s.out, "\nGenerated passwords:")
			if err := writePasswords(s.out, resp); err != nil {
				return err
			}
		case service.IsRejection(err):
			writeRejection(s.out, err)
		default:
			return err
		}

		again, err := s.prompt.askYesNo("\nGenerate passwords again?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) askRequest() (model.GenerationRequest, error) {
	var req model.GenerationRequest
	var err error

	if req.Count, err = s.prompt.askPositive("How many passwords to generate? "); err != nil {
		return req, err
	}
	if req.Length, err = s.prompt.askPositive("Password length: "); err != nil {
		return req, err
	}

	for _, q := range []struct {
		question string
		dst      *bool
	}{
		{"Include digits?", &req.IncludeDigits},
		{"Include uppercase letters?", &req.IncludeUpper},
		{"Include lowercase letters?", &req.IncludeLower},
		{"Include punctuation?", &req.IncludePunct},
		{"Exclude ambiguous characters?", &req.ExcludeAmbiguous},
		{"Exclude duplicate characters?", &req.ExcludeDuplicates},
	} {
		if *q.dst, err = s.prompt.askYesNo(q.question); err != nil {
			return req, err
		}
	}

	return req, nil
}
