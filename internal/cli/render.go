package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vaultpass/passgen-go/internal/model"
)

var (
	bold = color.New(color.Bold)
	warn = color.New(color.FgYellow)
	fail = color.New(color.FgRed)
)

// writePasswords prints one password per line, followed by its hash when
// one was computed.
func writePasswords(w io.Writer, resp model.GenerationResponse) error {
	for _, p := range resp.Passwords {
		var err error
		if p.Hash != "" {
			_, err = fmt.Fprintf(w, "%s  %s\n", p.Password, p.Hash)
		} else {
			_, err = fmt.Fprintln(w, p.Password)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeRejection(w io.Writer, err error) {
	fail.Fprintf(w, "Error: %v\n", err)
}
