package main

import (
	"fmt"
	"os"

	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
)

// List files are a flat little-endian uint32 sequence of records: num, id_1 .. id_num.

func parseLists(data []byte) ([][]uint32, error) {
	words, err := endian.Words(endian.GetLittleEndianEngine(), data)
	if err != nil {
		return nil, err
	}

	var lists [][]uint32
	for pos := 0; pos < len(words); {
		num := int(words[pos])
		pos++

		if num == 0 {
			return nil, fmt.Errorf("%w: empty list at word %d", errs.ErrFormatMismatch, pos-1)
		}
		if num > len(words)-pos {
			return nil, fmt.Errorf("%w: list at word %d needs %d IDs, %d words left",
				errs.ErrFormatMismatch, pos-1, num, len(words)-pos)
		}

		lists = append(lists, words[pos:pos+num:pos+num])
		pos += num
	}

	return lists, nil
}

func appendList(dst []byte, list []uint32) []byte {
	engine := endian.GetLittleEndianEngine()
	dst = engine.AppendUint32(dst, uint32(len(list))) //nolint: gosec

	return endian.AppendWords(engine, dst, list)
}

func readLists(path string) ([][]uint32, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	lists, err := parseLists(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return lists, len(data), nil
}
