// Command vcompress compresses files of posting lists into posting blobs and back.
//
// Usage:
//
//	vcompress codecs
//	vcompress compress [codec-id] [input] [output] [--compression zstd] [--workers 8] [-v]
//	vcompress decompress [input] [output] [--limit n] [-v]
//
// Input and decompressed output files hold little-endian uint32 records: num, id_1 .. id_num.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "vcompress",
		Short:         "Compress posting lists with VSEncoding and friends",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "show progress and partition statistics")

	cmd.AddCommand(
		newCodecsCmd(),
		newCompressCmd(opts),
		newDecompressCmd(opts),
	)

	return cmd
}
