package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/arloliu/intpack/blob"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/internal/pool"
)

type decompressOptions struct {
	*rootOptions
	limit int
}

func newDecompressCmd(root *rootOptions) *cobra.Command {
	opts := &decompressOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "decompress [input] [output]",
		Short: "Decompress a posting blob back into a posting list file",
		Long: "Decompress writes the lists of a posting blob as little-endian records\n" +
			"(num, id_1 .. id_num). The output defaults to input with its suffix replaced by .dec.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".dec"
			if len(args) == 2 {
				output = args[1]
			}

			return runDecompress(cmd, opts, args[0], output)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "decompress only the first n lists (0 means all)")

	return cmd
}

func runDecompress(cmd *cobra.Command, opts *decompressOptions, input, output string) error {
	if opts.limit < 0 {
		return fmt.Errorf("%w: limit %d", errs.ErrInvalidArgument, opts.limit)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	start := time.Now()
	decoder, err := blob.NewPostingDecoder(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	count := decoder.ListCount()
	if opts.limit > 0 {
		count = min(count, opts.limit)
	}

	var bar *progressbar.ProgressBar
	if opts.verbose {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("decoding"),
			progressbar.OptionShowCount(),
		)
	}

	buf := pool.GetPostingBuffer()
	defer pool.PutPostingBuffer(buf)

	var ints uint64
	for i := range count {
		list, err := decoder.List(i)
		if err != nil {
			return fmt.Errorf("list %d: %w", i, err)
		}

		buf.B = appendList(buf.B, list)
		ints += uint64(len(list))

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil { //nolint: gosec
		return err
	}

	stats := decoder.Stats()
	opts.logger.Info("decompressed",
		"codec", stats.Codec.String(),
		"compression", stats.Compression.String(),
		"lists", humanize.Comma(int64(count)),
		"ints", humanize.Comma(int64(ints)), //nolint: gosec
		"input", humanize.Bytes(stats.BlobBytes),
		"output", humanize.Bytes(uint64(buf.Len())), //nolint: gosec
		"elapsed", time.Since(start).Round(time.Millisecond),
		"file", output,
	)

	return nil
}
