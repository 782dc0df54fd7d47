package track

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Track caches hold one fully-parsed batch as a zstd-compressed msgpack
// stream. Re-running the pipeline over a large batch then only pays the
// CSV parsing cost once.

// WriteCache writes samples to a cache file at path, replacing any
// existing file.
func WriteCache(path string, samples []PositionSample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("failed to init cache compressor: %w", err)
	}

	if err := msgpack.NewEncoder(zw).Encode(samples); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	return nil
}

// ReadCache loads a batch previously written with WriteCache.
func ReadCache(path string) ([]PositionSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache file: %w", err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to init cache decompressor: %w", err)
	}
	defer zr.Close()

	var samples []PositionSample
	if err := msgpack.NewDecoder(zr).Decode(&samples); err != nil {
		return nil, fmt.Errorf("failed to decode cache %s: %w", path, err)
	}
	return samples, nil
}
