package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/shortstring/alphanumeric"
)

// encodeCmd converts integers to strings
var encodeCmd = &cobra.Command{
	Use:   "encode [int]...",
	Short: "Print the string for each integer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEncode,
}

// decodeCmd converts strings to integers
var decodeCmd = &cobra.Command{
	Use:   "decode [string]...",
	Short: "Print the integer for each string",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

// checkCmd reports whether strings are convertible
var checkCmd = &cobra.Command{
	Use:   "check [string]...",
	Short: "Print ok or the rejection reason for each string",
	Long: `Checks each string against the selected width. Rejections are one of:

  empty              the string is empty
  sign-only          the string is a lone sign
  length             the string is too long for the width
  illegal-character  a character, or the sign, is not allowed here
  leading-zero       the string has a leading zero
  boundary           the string is past the last value of the width`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// classifyCmd prints the classifier category
var classifyCmd = &cobra.Command{
	Use:   "classify [string]...",
	Short: "Print the classifier category for each string",
	Long: `Prints the category of each string:

  nu   numeric unsigned
  ns   numeric signed
  lpu  letter-prefixed unsigned
  lps  letter-prefixed signed
  dpu  digit-prefixed unsigned
  dps  digit-prefixed signed`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

// blocksCmd prints the block table
var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Print the code blocks of the selected width",
	Args:  cobra.NoArgs,
	RunE:  runBlocks,
}

func runEncode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		s, err := conv.Encode(arg)
		if err != nil {
			return fmt.Errorf("encode %q: %w", arg, err)
		}

		logger.Debug("Encoded", zap.String("value", arg), zap.String("string", s))
		fmt.Fprintln(out, s)
	}

	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		v, err := conv.Decode(arg)
		if err != nil {
			return fmt.Errorf("decode %q: %w", arg, err)
		}

		logger.Debug("Decoded", zap.String("string", arg), zap.Int64("value", v))
		fmt.Fprintln(out, v)
	}

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		err := conv.Check(arg)
		if err != nil {
			logger.Debug("Rejected", zap.String("string", arg), zap.Error(err))
		}

		fmt.Fprintf(out, "%q\t%s\n", arg, reason(err))
	}

	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		fmt.Fprintf(out, "%q\t%s\n", arg, alphanumeric.Classify(arg))
	}

	return nil
}

func runBlocks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-24s %20s %20s %15s %15s\n", "NAME", "START", "LENGTH", "FIRST", "LAST")

	for _, b := range conv.Blocks() {
		first := conv.Name(int64(b.Start))
		last := conv.Name(int64(b.End() - 1))

		fmt.Fprintf(out, "%-24s %20d %20d %15s %15s\n", b.Name, b.Start, b.Length, first, last)
	}

	logger.Debug("Listed blocks", zap.Int("width", conv.Bits()))

	return nil
}
