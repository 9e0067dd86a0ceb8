// Package cli implements the pave command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	pave "github.com/SimonDaKappa/pave-fields"
	"github.com/SimonDaKappa/pave-fields/command"
	"github.com/SimonDaKappa/pave-fields/field"
	"github.com/SimonDaKappa/pave-fields/internal/config"
	"github.com/SimonDaKappa/pave-fields/internal/logger"
)

var (
	ErrUnknownKind = errors.New("unknown field kind")
	ErrNoPayload   = errors.New("one of --json, --file or --args is required")
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	stdout io.Writer
}

// NewRootCommand creates the pave root command writing results to stdout and
// logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, log: zerolog.Nop()}
	var configFile string

	cmd := &cobra.Command{
		Use:   "pave",
		Short: "Parse and validate person command arguments",
		Long: `pave checks raw command argument values against the field formats of the
person commands and binds whole add, edit and delete commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{ConfigFile: configFile, Flags: cmd.Flags()})
			if err != nil {
				return err
			}
			log, err := logger.New(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log
			a.log.Debug().Str("output", cfg.Output).Str("command", cmd.Name()).Msg("config loaded")
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $"+config.EnvConfigFile+")")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json or yaml")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(
		a.newCheckCommand(),
		a.newIndexCommand(),
		a.newGroupsCommand(),
		a.newBindCommand(),
	)
	return cmd
}

// Execute runs the root command with os.Args and returns the exit code.
func Execute() int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, ErrorText(err))
		return 1
	}
	return 0
}

// MessageDuplicateArgument is shown when a single-valued prefix is repeated.
const MessageDuplicateArgument = "Multiple values specified for the following single-valued field(s)"

// ErrorText is the text shown for err: the constraint message alone for an
// invalid field value, the full error otherwise.
func ErrorText(err error) string {
	if msg, ok := field.Message(err); ok {
		return msg
	}
	if errors.Is(err, pave.ErrDuplicateArgument) {
		_, prefixes, _ := strings.Cut(err.Error(), pave.ErrDuplicateArgument.Error()+": ")
		return MessageDuplicateArgument + ": " + prefixes
	}
	return err.Error()
}

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <kind> <raw>",
		Short: "Validate one raw value as a field kind",
		Long: "Validate one raw value as a field kind and print its normalized form.\n\nKinds: " +
			strings.Join(kindNames(), ", "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse, ok := kinds[args[0]]
			if !ok {
				return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, args[0], strings.Join(kindNames(), ", "))
			}
			value, err := parse(args[1])
			if err != nil {
				a.log.Debug().Str("kind", args[0]).Msg("rejected")
				return err
			}
			return render(a.stdout, a.cfg.Output, checkResult{Kind: args[0], Value: value}, value)
		},
	}
}

func (a *app) newIndexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index <raw>",
		Short: "Parse a one-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := pave.ParseIndex(args[0])
			if err != nil {
				return err
			}
			res := indexResult{OneBased: idx.OneBased(), ZeroBased: idx.ZeroBased()}
			text := fmt.Sprintf("%d (zero-based %d)", res.OneBased, res.ZeroBased)
			return render(a.stdout, a.cfg.Output, res, text)
		},
	}
}

func (a *app) newGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups <raw>...",
		Short: "Parse student group names into a set",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := pave.ParseGroups(args)
			if err != nil {
				return err
			}
			a.log.Debug().Int("given", len(args)).Int("distinct", groups.Len()).Msg("groups parsed")
			return render(a.stdout, a.cfg.Output, groupsResult{Groups: groups.Names()}, groups.String())
		},
	}
}

func (a *app) newBindCommand() *cobra.Command {
	var (
		payload string
		file    string
		rawArgs string
	)

	cmd := &cobra.Command{
		Use:       "bind <" + strings.Join(command.Words(), "|") + ">",
		Short:     "Bind command arguments into a command descriptor",
		Args:      cobra.ExactArgs(1),
		ValidArgs: command.Words(),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			var (
				d   command.Descriptor
				err error
			)
			switch {
			case cmd.Flags().Changed("args"):
				d, err = command.FromArguments(word, rawArgs)
			case cmd.Flags().Changed("json"):
				d, err = command.FromJSON(word, []byte(payload))
			case cmd.Flags().Changed("file"):
				var data []byte
				data, err = os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read payload: %w", err)
				}
				d, err = command.FromJSON(word, data)
			default:
				return ErrNoPayload
			}
			if err != nil {
				return err
			}

			id := d.Correlation()
			a.log.Info().Str("command", word).Str("correlation_id", id.String()).Msg("bound")
			return render(a.stdout, a.cfg.Output, bindResult{Command: word, Args: d}, fmt.Sprintf("%s %s: ok", word, id))
		},
	}

	cmd.Flags().StringVar(&payload, "json", "", "JSON payload")
	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON payload")
	cmd.Flags().StringVar(&rawArgs, "args", "", "Command line style arguments, e.g. \" 1 n/Alex\"")
	cmd.MarkFlagsMutuallyExclusive("json", "file", "args")
	return cmd
}
