// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lindelctl exercises the Hilbert and Morton codecs from the
// command line, standing in for the SQL host boundary that the
// library itself never speaks.
package main

import (
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsnet/lindel/lindel"
	"github.com/dsnet/lindel/internal/benchmark"
	"github.com/dsnet/lindel/internal/bitops"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lindelctl",
		Short: "Encode, decode, and benchmark lindel space-filling-curve codes",
	}

	var (
		kindStr  string
		width    uint
		signed   bool
		isFloat  bool
		monotone bool
	)

	encodeCmd := &cobra.Command{
		Use:   "encode VALUES...",
		Short: "Encode a tuple of lane values into a single code word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindStr)
			if err != nil {
				return err
			}
			lanes, err := parseLanes(args, width, signed, isFloat)
			if err != nil {
				return err
			}
			repr := lindel.UInt
			switch {
			case isFloat:
				repr = lindel.Float
			case signed:
				repr = lindel.SInt
			}
			if monotone {
				for i, v := range lanes {
					lanes[i] = bitops.PromoteToUnsigned(v, width, repr)
				}
			}
			d, err := lindel.BindEncode(kind, width, uint(len(lanes)), repr)
			if err != nil {
				return err
			}
			code, err := d.Encode(lanes)
			if err != nil {
				return err
			}
			fmt.Printf("code = %s (hex %s)\n", formatCode(code), code.String())
			return nil
		},
	}
	encodeCmd.Flags().StringVar(&kindStr, "kind", "hilbert", "hilbert or morton")
	encodeCmd.Flags().UintVar(&width, "width", 32, "lane width in bits: 8, 16, 32, or 64")
	encodeCmd.Flags().BoolVar(&signed, "signed", false, "interpret VALUES as signed integers")
	encodeCmd.Flags().BoolVar(&isFloat, "float", false, "interpret VALUES as IEEE-754 floats")
	encodeCmd.Flags().BoolVar(&monotone, "order-preserving", false,
		"reorder signed/float lanes into unsigned space so code-word order matches numeric order")

	var (
		codeWidth      uint
		laneCount      uint
		returnFloat    bool
		returnUnsigned bool
		decMonotone    bool
	)

	decodeCmd := &cobra.Command{
		Use:   "decode CODE",
		Short: "Decode a single code word into its tuple of lane values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindStr)
			if err != nil {
				return err
			}
			code, err := parseCode(args[0], codeWidth)
			if err != nil {
				return err
			}
			d, err := lindel.BindDecode(kind, codeWidth, laneCount, returnFloat, returnUnsigned)
			if err != nil {
				return err
			}
			lanes, err := d.Decode(code)
			if err != nil {
				return err
			}
			if decMonotone {
				for i, v := range lanes {
					lanes[i] = bitops.DemoteFromUnsigned(v, d.LaneWidth(), d.ElementRepr())
				}
			}
			strs := make([]string, len(lanes))
			for i, v := range lanes {
				strs[i] = formatLane(v, d.LaneWidth(), d.ElementRepr())
			}
			fmt.Println(strings.Join(strs, ", "))
			return nil
		},
	}
	decodeCmd.Flags().StringVar(&kindStr, "kind", "hilbert", "hilbert or morton")
	decodeCmd.Flags().UintVar(&codeWidth, "width", 64, "code word width in bits")
	decodeCmd.Flags().UintVar(&laneCount, "count", 2, "number of lanes")
	decodeCmd.Flags().BoolVar(&returnFloat, "float", false, "return lanes reinterpreted as IEEE-754 floats")
	decodeCmd.Flags().BoolVar(&returnUnsigned, "unsigned", false, "return lanes as unsigned integers")
	decodeCmd.Flags().BoolVar(&decMonotone, "order-preserving", false,
		"undo the order-preserving reordering applied by encode --order-preserving")

	var (
		benchN       int
		benchWorkers int
	)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time Hilbert vs. Morton encode/decode throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []benchmark.Result
			var err error
			if benchWorkers > 1 {
				results, err = benchmark.RunParallel(nil, benchN, benchWorkers)
			} else {
				results, err = benchmark.Run(nil, benchN)
			}
			if err != nil {
				return err
			}
			fmt.Print(benchmark.FormatTable(results))
			return nil
		},
	}
	benchCmd.Flags().IntVar(&benchN, "n", 10000, "number of tuples per case")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 1, "number of concurrent encode/decode goroutines")

	rootCmd.AddCommand(encodeCmd, decodeCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseKind(s string) (lindel.Kind, error) {
	switch strings.ToLower(s) {
	case "hilbert":
		return lindel.Hilbert, nil
	case "morton":
		return lindel.Morton, nil
	default:
		return 0, fmt.Errorf("unknown kind %q: want hilbert or morton", s)
	}
}

func parseLanes(args []string, width uint, signed, isFloat bool) ([]uint64, error) {
	lanes := make([]uint64, len(args))
	for i, a := range args {
		switch {
		case isFloat && width == 32:
			f, err := strconv.ParseFloat(a, 32)
			if err != nil {
				return nil, fmt.Errorf("value %q: %w", a, err)
			}
			lanes[i] = uint64(math.Float32bits(float32(f)))
		case isFloat && width == 64:
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("value %q: %w", a, err)
			}
			lanes[i] = math.Float64bits(f)
		case signed:
			v, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("value %q: %w", a, err)
			}
			lanes[i] = uint64(v)
		default:
			v, err := strconv.ParseUint(a, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("value %q: %w", a, err)
			}
			lanes[i] = v
		}
	}
	return lanes, nil
}

// parseCode parses a decimal code word of up to 128 bits.
func parseCode(s string, codeWidth uint) (lindel.U128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > int(codeWidth) {
		return lindel.U128{}, fmt.Errorf("invalid %d-bit code word %q", codeWidth, s)
	}
	var lo, hi big.Int
	lo.And(v, new(big.Int).SetUint64(^uint64(0)))
	hi.Rsh(v, 64)
	return lindel.U128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// formatCode renders a code word in decimal, whatever its width.
func formatCode(code lindel.U128) string {
	v := new(big.Int).SetUint64(code.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(code.Lo))
	return v.String()
}

// formatLane renders one decoded lane according to the descriptor's
// element representation.
func formatLane(v uint64, w uint, repr lindel.ElementRepr) string {
	switch repr {
	case lindel.Float:
		if w == 32 {
			return strconv.FormatFloat(float64(math.Float32frombits(uint32(v))), 'g', -1, 32)
		}
		return strconv.FormatFloat(math.Float64frombits(v), 'g', -1, 64)
	case lindel.SInt:
		// Sign-extend the low w bits.
		shift := 64 - w
		return strconv.FormatInt(int64(v<<shift)>>shift, 10)
	default:
		return strconv.FormatUint(v, 10)
	}
}
