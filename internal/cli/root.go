package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

type rootFlags struct {
	once bool
	hash bool
	req  model.GenerationRequest
}

func (f *rootFlags) register(fs *pflag.FlagSet, cfg config.Config) {
	def := model.DefaultRequest()

	fs.BoolVar(&f.once, "once", false, "generate a single batch from flags and exit instead of prompting")
	fs.BoolVar(&f.hash, "hash", cfg.Hash, "print an Argon2id hash next to each password")

	fs.IntVarP(&f.req.Count, "count", "c", def.Count, "number of passwords (with --once)")
	fs.IntVarP(&f.req.Length, "length", "l", def.Length, "password length (with --once)")
	fs.BoolVar(&f.req.IncludeDigits, "digits", def.IncludeDigits, "include digits (with --once)")
	fs.BoolVar(&f.req.IncludeUpper, "upper", def.IncludeUpper, "include uppercase letters (with --once)")
	fs.BoolVar(&f.req.IncludeLower, "lower", def.IncludeLower, "include lowercase letters (with --once)")
	fs.BoolVar(&f.req.IncludePunct, "punct", def.IncludePunct, "include punctuation (with --once)")
	fs.BoolVar(&f.req.ExcludeAmbiguous, "exclude-ambiguous", def.ExcludeAmbiguous, "leave out characters like l, 1 and O (with --once)")
	fs.BoolVar(&f.req.ExcludeDuplicates, "exclude-duplicates", def.ExcludeDuplicates, "use each character at most once per password (with --once)")
}

// RootCmd returns the passgen command. Without --once it runs the
// interactive session on the command's input and output.
func RootCmd(cfg config.Config) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "generate random passwords",
		Long: `passgen generates random passwords from the selected character classes
(digits, uppercase, lowercase, punctuation). Every selected class appears at
least once in each password. Visually ambiguous characters (i l 1 L o 0 O)
and repeated characters can be excluded.

Without --once, passgen asks for the parameters interactively and offers to
generate again after each batch. Answer n, no, 0, н or нет to decline; any
other answer counts as yes.
`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(cfg, flags.hash)
			if flags.once {
				resp, err := svc.Generate(flags.req)
				if err != nil {
					return err
				}
				return writePasswords(cmd.OutOrStdout(), resp)
			}
			return NewSession(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
	flags.register(rootCmd.Flags(), cfg)
	return rootCmd
}

func newService(cfg config.Config, hash bool) *service.GeneratorService {
	var hasher *crypto.Hasher
	if hash {
		hasher = crypto.NewHasher(crypto.DefaultHashParams(), nil)
	}
	return service.NewGeneratorService(
		crypto.NewGenerator(nil),
		hasher,
		service.Limits{MaxCount: cfg.MaxCount, MaxLength: cfg.MaxLength},
	)
}
