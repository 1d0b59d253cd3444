// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Command decafctl is a small command-line front end for the decaf377
// package's byte-level encode, decode, and Elligator hash-to-group
// operations, standing in for the "byte-level (de)serialization adapter"
// named as an external collaborator in SPEC_FULL.md §6.
package main

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	decaf377 "github.com/decaf377/decaf377-go"
)

var logger zerolog.Logger

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "decafctl",
		Short: "Inspect and exercise the decaf377 group from the command line",
	}

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newElligatorCmd())

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <hex-x> <hex-y>",
		Short: "Encode an affine basepoint-curve point to its canonical 32-byte hex form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xBytes, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Wrap(err, "decoding x hex")
			}
			yBytes, err := hex.DecodeString(args[1])
			if err != nil {
				return errors.Wrap(err, "decoding y hex")
			}

			x, err := decaf377.FqFromLEBytes(leftPad32(xBytes))
			if err != nil {
				return errors.Wrap(err, "parsing x")
			}
			y, err := decaf377.FqFromLEBytes(leftPad32(yBytes))
			if err != nil {
				return errors.Wrap(err, "parsing y")
			}

			point := decaf377.AffineElement{X: x, Y: y}.ToExtended()
			out := point.Encode()

			logger.Info().Str("encoded", hex.EncodeToString(out[:])).Msg("encoded point")
			cmd.Println(hex.EncodeToString(out[:]))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex-32-bytes>",
		Short: "Decode a canonical 32-byte hex encoding to a group element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Wrap(err, "decoding hex")
			}
			if len(raw) != 32 {
				return errors.Errorf("expected 32 bytes, got %d", len(raw))
			}
			var buf [32]byte
			copy(buf[:], raw)

			el, err := decaf377.Decode(buf)
			if err != nil {
				logger.Warn().Err(err).Msg("decode failed")
				return errors.Wrap(err, "decoding element")
			}

			x, y := el.ToAffine()
			xb := x.ToLEBytes()
			yb := y.ToLEBytes()
			cmd.Printf("x=%s y=%s\n", hex.EncodeToString(xb[:]), hex.EncodeToString(yb[:]))
			return nil
		},
	}
}

func newElligatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elligator <hex-64-bytes>",
		Short: "Hash a 64-byte uniform input to a group element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Wrap(err, "decoding hex")
			}
			if len(raw) != 64 {
				return errors.Errorf("expected 64 bytes, got %d", len(raw))
			}
			var buf [64]byte
			copy(buf[:], raw)

			el := decaf377.HashToGroup(buf)
			out := el.Encode()
			logger.Info().Str("encoded", hex.EncodeToString(out[:])).Msg("hashed to group")
			cmd.Println(hex.EncodeToString(out[:]))
			return nil
		},
	}
}

// leftPad32 right-pads (little-endian) b to exactly 32 bytes, for CLI
// convenience when a user supplies a shorter hex literal.
func leftPad32(b []byte) []byte {
	out := make([]byte, 32)
	copy(out, b)
	return out
}
