package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MoAlkhateeb/image-pdf-combiner/internal/assemble"
	"github.com/MoAlkhateeb/image-pdf-combiner/pkg/types"
)

func runCombine(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	dpi, _ := cmd.Flags().GetInt("dpi")
	if dpi == 0 {
		dpi = viper.GetInt("dpi")
	}
	if dpi == 0 {
		dpi = types.DefaultDPI
	}

	// Flags win only when both are present; otherwise both paths are
	// prompted for, mirroring the two-state front-end.
	if input == "" || output == "" {
		var err error
		input, output, err = promptPaths(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	savePath, err := assemble.Combine(input, output, types.CombineConfig{DPI: dpi}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "PDF created successfully: %s\n", savePath)
	return nil
}

// promptPaths reads the input directory and output path interactively.
func promptPaths(in io.Reader, out io.Writer) (input, output string, err error) {
	reader := bufio.NewReader(in)

	input, err = promptLine(reader, out, "Input directory Path: ")
	if err != nil {
		return "", "", err
	}
	output, err = promptLine(reader, out, "Output PDF Path: ")
	if err != nil {
		return "", "", err
	}
	return input, output, nil
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
