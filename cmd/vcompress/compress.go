package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/arloliu/intpack/blob"
	"github.com/arloliu/intpack/codec"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/partition"
)

// batchSize is the number of lists handed to AddLists at a time, one progress step each.
const batchSize = 1024

type compressOptions struct {
	*rootOptions
	compression string
	workers     int
}

func newCompressCmd(root *rootOptions) *cobra.Command {
	opts := &compressOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "compress [codec-id] [input] [output]",
		Short: "Compress a posting list file into a posting blob",
		Long: "Compress reads little-endian records (num, id_1 .. id_num) from input and writes a\n" +
			"posting blob. The output defaults to input plus the codec suffix.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCodec(args[0])
			if err != nil {
				return err
			}

			output := args[1] + id.Suffix()
			if len(args) == 3 {
				output = args[2]
			}

			return runCompress(cmd.Context(), cmd, opts, id, args[1], output)
		},
	}

	cmd.Flags().StringVarP(&opts.compression, "compression", "c", "none", "payload compression: none, zstd, s2 or lz4")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.GOMAXPROCS(0), "lists encoded in parallel")

	return cmd
}

// partitionTally accumulates partitioner statistics across concurrent encodes.
type partitionTally struct {
	calls       atomic.Int64
	positions   atomic.Int64
	blocks      atomic.Int64
	transitions atomic.Uint64
}

func (p *partitionTally) observe(s partition.Stats) {
	p.calls.Add(1)
	p.positions.Add(int64(s.Positions))
	p.blocks.Add(int64(s.Blocks))
	p.transitions.Add(s.Transitions)
}

func isVSEncoding(id format.CodecID) bool {
	return id == format.CodecVSEncodingDP || id == format.CodecVSEncodingOP || id == format.CodecVSEncodingBlocks
}

func runCompress(ctx context.Context, cmd *cobra.Command, opts *compressOptions, id format.CodecID, input, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	comp, err := parseCompression(opts.compression)
	if err != nil {
		return err
	}

	lists, inputSize, err := readLists(input)
	if err != nil {
		return err
	}

	encOpts := []blob.PostingEncoderOption{
		blob.WithCodec(id),
		blob.WithPayloadCompression(comp),
		blob.WithConcurrency(opts.workers),
	}

	tally := &partitionTally{}
	if opts.verbose && isVSEncoding(id) {
		encOpts = append(encOpts, blob.WithVSEncodingOptions(codec.WithPartitionObserver(tally.observe)))
	}

	encoder, err := blob.NewPostingEncoder(encOpts...)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if opts.verbose {
		bar = progressbar.NewOptions(len(lists),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("encoding"),
			progressbar.OptionShowCount(),
		)
	}

	start := time.Now()
	for lo := 0; lo < len(lists); lo += batchSize {
		hi := min(lo+batchSize, len(lists))
		if err := encoder.AddLists(ctx, lists[lo:hi]); err != nil {
			return fmt.Errorf("lists %d-%d: %w", lo, hi-1, err)
		}

		if bar != nil {
			_ = bar.Add(hi - lo)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	posting, err := encoder.Finish()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := os.WriteFile(output, posting.Bytes(), 0o644); err != nil { //nolint: gosec
		return err
	}

	stats := posting.Stats()
	opts.logger.Info("compressed",
		"codec", id.String(),
		"compression", comp.String(),
		"lists", humanize.Comma(int64(stats.Lists)),
		"ints", humanize.Comma(int64(stats.Values)), //nolint: gosec
		"input", humanize.Bytes(uint64(inputSize)), //nolint: gosec
		"output", humanize.Bytes(stats.BlobBytes),
		"bits_per_int", fmt.Sprintf("%.3f", stats.BitsPerInt()),
		"elapsed", elapsed.Round(time.Millisecond),
		"file", output,
	)

	if tally.calls.Load() > 0 {
		opts.logger.Debug("partition",
			"sequences", humanize.Comma(tally.calls.Load()),
			"blocks", humanize.Comma(tally.blocks.Load()),
			"avg_block_len", fmt.Sprintf("%.2f", float64(tally.positions.Load())/float64(tally.blocks.Load())),
			"transitions", humanize.Comma(int64(tally.transitions.Load())), //nolint: gosec
		)
	}

	return nil
}
