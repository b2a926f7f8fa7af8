// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"protectionpro/internal/cache"
	"protectionpro/internal/options"
	"protectionpro/internal/store"
)

var optionsCmd = &cobra.Command{
	Use:     "options",
	Short:   "Export or import the site options record",
	GroupID: "data",
}

var optionsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print every site option as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		opts, err := store.NewOptionsStore(db).Load(cmd.Context())
		if err != nil {
			return err
		}
		out, err := encodeOptions(opts)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var optionsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the site options record from a YAML file",
	Long: "Replace the site options record from a YAML file. Like a save from the\n" +
		"admin form, the whole record is overwritten: options missing from the\n" +
		"file are stored empty.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read options file: %w", err)
		}
		opts, unknown, err := decodeOptions(raw)
		if err != nil {
			return err
		}
		for _, k := range unknown {
			slog.Warn("ignoring unknown option", "key", k)
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.NewOptionsStore(db).Replace(cmd.Context(), opts); err != nil {
			return err
		}
		flushPageCache(cmd.Context())
		slog.Info("site options imported", "file", args[0])
		return nil
	},
}

func init() {
	optionsCmd.AddCommand(optionsExportCmd, optionsImportCmd)
	rootCmd.AddCommand(optionsCmd)
}

// encodeOptions renders the full record, every schema key included, as YAML
// with keys in sorted order.
func encodeOptions(opts options.SiteOptions) ([]byte, error) {
	out, err := yaml.Marshal(map[string]string(opts.Complete()))
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return out, nil
}

// decodeOptions parses a YAML mapping of option keys to strings into a
// complete record. Keys outside the schema are returned separately.
func decodeOptions(raw []byte) (options.SiteOptions, []string, error) {
	var m map[string]string
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("parse options: %w", err)
	}
	var unknown []string
	for k := range m {
		if _, ok := options.Lookup(k); !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return options.SiteOptions(m).Complete(), unknown, nil
}

// flushPageCache clears cached pages after an offline change. A missing
// cache only earns a warning; pages expire on their own.
func flushPageCache(ctx context.Context) {
	client, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("page cache not cleared", "error", err)
		return
	}
	defer client.Close()
	cache.NewPageCache(client, cfg.PageCacheTTL).InvalidateAll(ctx)
}
