package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

func newCodecsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codecs",
		Short: "List codec IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tName\tSuffix")
			fmt.Fprintln(out, "---")
			for _, id := range format.Codecs {
				fmt.Fprintf(out, "%d\t%s\t%s\n", id, id, id.Suffix())
			}

			return nil
		},
	}
}

// parseCodec accepts a numeric codec ID or a case-insensitive codec name.
func parseCodec(s string) (format.CodecID, error) {
	if n, err := strconv.Atoi(s); err == nil {
		id := format.CodecID(n) //nolint: gosec
		if n < 0 || n > 0xFF || !id.Valid() {
			return 0, fmt.Errorf("%w: %s", errs.ErrUnknownCodec, s)
		}

		return id, nil
	}

	for _, id := range format.Codecs {
		if strings.EqualFold(id.String(), s) {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", errs.ErrUnknownCodec, s)
}

func parseCompression(s string) (format.CompressionType, error) {
	for _, c := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidArgument, s)
}
