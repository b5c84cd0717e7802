// SPDX-License-Identifier: MIT
// Package: xychain/grid
//
// options.go — functional options for Decode.

package grid

// DecodeOption customizes Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strictCells bool
}

func newDecodeConfig(opts ...DecodeOption) decodeConfig {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrictCells controls whether cell positions may hold link symbols.
// Encode draws gap bridges through empty cells, so the default (false)
// accepts them and treats them as empty. With strict set, a link symbol in a
// cell position fails with ErrMalformedLink.
func WithStrictCells(strict bool) DecodeOption {
	return func(c *decodeConfig) { c.strictCells = strict }
}
