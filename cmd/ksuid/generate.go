package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"github.com/sxyafiq/ksuid"
)

type generateOptions struct {
	count   int
	format  string
	asJSON  bool
	batch   bool
	seed    uint64
	seeded  bool
	timeArg string
}

// jsonID is the --json output shape for a single KSUID.
type jsonID struct {
	KSUID     string `json:"ksuid"`
	Time      string `json:"time"`
	Timestamp uint32 `json:"timestamp"`
	Payload   string `json:"payload"`
}

func toJSONID(id ksuid.KSUID) jsonID {
	return jsonID{
		KSUID:     id.String(),
		Time:      id.Timestamp().UTC().Format(time.RFC3339),
		Timestamp: id.RawTimestamp(),
		Payload:   fmt.Sprintf("%X", id.Payload()),
	}
}

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	g := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate KSUIDs",
		Long: `Generate one or more KSUIDs.

Formats:
  string     27-character base62 text (default)
  inspect    multi-line breakdown of each ID
  time       timestamp as RFC 3339
  timestamp  raw KSUID timestamp (seconds since the KSUID epoch)
  payload    payload as hex
  raw        all 20 bytes as hex
  json       one JSON object per line`,
		Example: `  ksuid generate
  ksuid generate -n 5 -f inspect
  ksuid generate -n 1000 --batch
  ksuid generate --seed 42 --time 2021-05-21T20:04:03Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g.seeded = cmd.Flags().Changed("seed")
			return runGenerate(cmd.Context(), opts, g)
		},
	}

	cmd.Flags().IntVarP(&g.count, "count", "n", 1, "Number of KSUIDs to generate")
	cmd.Flags().StringVarP(&g.format, "format", "f", "string", "Output format: string, inspect, time, timestamp, payload, raw, json")
	cmd.Flags().BoolVar(&g.asJSON, "json", false, "Output as a JSON array")
	cmd.Flags().BoolVar(&g.batch, "batch", false, "Generate all IDs in one batch sharing a timestamp")
	cmd.Flags().Uint64Var(&g.seed, "seed", 0, "Seed a deterministic random source (not for production IDs)")
	cmd.Flags().StringVar(&g.timeArg, "time", "", "Fixed RFC 3339 time to stamp IDs with")

	return cmd
}

func runGenerate(ctx context.Context, opts *cliOptions, g *generateOptions) error {
	if g.count < 1 {
		return fmt.Errorf("count must be positive, got %d", g.count)
	}
	if err := checkFormat(g.format); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := ksuid.DefaultConfig()
	cfg.Logger = opts.logger
	if g.seeded {
		cfg.Rand = ksuid.SourceReader(rand.NewPCG(g.seed, g.seed))
	}
	if g.timeArg != "" {
		fixed, err := time.Parse(time.RFC3339, g.timeArg)
		if err != nil {
			return fmt.Errorf("invalid --time: %w", err)
		}
		cfg.Clock = func() time.Time { return fixed }
	}

	gen, err := ksuid.NewGenerator(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	var ids []ksuid.KSUID
	if g.batch {
		ids, err = gen.GenerateBatch(ctx, g.count)
		if err != nil {
			return fmt.Errorf("batch generation failed after %d IDs: %w", len(ids), err)
		}
	} else {
		ids = make([]ksuid.KSUID, 0, g.count)
		for i := 0; i < g.count; i++ {
			id, err := gen.New()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}
	opts.logger.Debug("generated ksuids",
		"count", len(ids),
		"batch", g.batch,
		"seeded", g.seeded,
		"elapsed", time.Since(start))

	if g.asJSON {
		out := make([]jsonID, len(ids))
		for i, id := range ids {
			out[i] = toJSONID(id)
		}
		enc := json.NewEncoder(opts.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, id := range ids {
		s, err := formatID(id, g.format)
		if err != nil {
			return err
		}
		if g.format == "inspect" && i > 0 {
			fmt.Fprintln(opts.out)
		}
		fmt.Fprintln(opts.out, s)
	}
	return nil
}
