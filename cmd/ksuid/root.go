package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sxyafiq/ksuid"
)

// cliOptions holds the persistent flags shared by every subcommand.
type cliOptions struct {
	verbose   bool
	logFormat string

	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &cliOptions{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "ksuid",
		Short: "Generate and inspect K-Sortable Unique IDentifiers",
		Long: `ksuid generates 27-character, time-sortable identifiers and decodes
existing ones into their timestamp and payload.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.errOut, opts.verbose, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")

	root.AddCommand(
		newGenerateCmd(opts),
		newInspectCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(opts),
	)

	return root
}

// newLogger builds the CLI logger; debug level only with --verbose.
func newLogger(w io.Writer, verbose bool, format string) (*slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

func newVersionCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(opts.out, "ksuid CLI version %s (%s)\n", Version, Commit)
			return nil
		},
	}
}

// outputFormats lists the values accepted by -f.
var outputFormats = []string{"string", "inspect", "time", "timestamp", "payload", "raw", "json"}

// checkFormat rejects unknown -f values before any work is done.
func checkFormat(format string) error {
	f := strings.ToLower(format)
	for _, known := range outputFormats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(outputFormats, ", "))
}

// formatID renders id in one of the supported output formats.
func formatID(id ksuid.KSUID, format string) (string, error) {
	switch strings.ToLower(format) {
	case "string", "":
		return id.String(), nil
	case "inspect":
		return inspectText(id), nil
	case "time":
		return id.Timestamp().UTC().Format("2006-01-02T15:04:05Z07:00"), nil
	case "timestamp":
		return fmt.Sprintf("%d", id.RawTimestamp()), nil
	case "payload":
		return fmt.Sprintf("%X", id.Payload()), nil
	case "raw":
		return fmt.Sprintf("%X", id.Bytes()), nil
	case "json":
		b, err := json.Marshal(toJSONID(id))
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func inspectText(id ksuid.KSUID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "REPRESENTATION:\n\n")
	fmt.Fprintf(&b, "  String: %s\n", id)
	fmt.Fprintf(&b, "     Raw: %X\n\n", id.Bytes())
	fmt.Fprintf(&b, "COMPONENTS:\n\n")
	fmt.Fprintf(&b, "       Time: %s\n", id.Timestamp().UTC().Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(&b, "  Timestamp: %d\n", id.RawTimestamp())
	fmt.Fprintf(&b, "    Payload: %X\n", id.Payload())
	return b.String()
}
