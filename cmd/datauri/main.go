package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamwojs/data-uri/pkg/config"
	"github.com/adamwojs/data-uri/pkg/datauri"
	"github.com/adamwojs/data-uri/pkg/logger"
)

var (
	flagStrict bool
	flagMode   string
)

func main() {
	if cfg, err := config.Load(); err == nil {
		logger.SetLevel(cfg.LogLevel)
	}
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "datauri",
		Short:         "Inspect and move data: URI payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flagStrict, "strict", false, "enforce protocol length limits")
	root.PersistentFlags().StringVar(&flagMode, "mode", "taglen", "length limit mode: litlen, attsplen or taglen")
	root.AddCommand(infoCmd(), fetchCmd(), writeCmd())
	return root
}

func parseMode(name string) (datauri.LengthMode, error) {
	switch strings.ToLower(name) {
	case "litlen":
		return datauri.LITLEN, nil
	case "attsplen":
		return datauri.ATTSPLEN, nil
	case "taglen":
		return datauri.TAGLEN, nil
	}
	return datauri.TAGLEN, fmt.Errorf("unknown length mode %q", name)
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Read a local file and describe its data: URI object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(flagMode)
			if err != nil {
				return err
			}
			d, err := datauri.FromFile(args[0], flagStrict, mode)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func fetchCmd() *cobra.Command {
	var (
		out      string
		appendTo bool
	)
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a remote resource into a data: URI object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(flagMode)
			if err != nil {
				return err
			}
			d, err := datauri.FromURL(args[0], flagStrict, mode)
			if err != nil {
				return err
			}
			if out == "" {
				printInfo(cmd.OutOrStdout(), d)
				return nil
			}
			// Write requires an existing target, so touch it first.
			f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE, 0644)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			f.Close()
			w, err := d.Write(out, !appendTo)
			if err != nil {
				return err
			}
			defer w.Close()
			logger.InfoCF("cli", "payload written", map[string]interface{}{
				"path":  out,
				"bytes": d.Len(),
			})
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the payload to this file")
	cmd.Flags().BoolVar(&appendTo, "append", false, "append to the output file instead of replacing it")
	return cmd
}

func writeCmd() *cobra.Command {
	var appendTo bool
	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Write stdin as a data: URI payload into an existing file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			mode, err := parseMode(flagMode)
			if err != nil {
				return err
			}
			d, err := datauri.New(payload, "", nil, flagStrict, mode)
			if err != nil {
				return err
			}
			f, err := d.Write(args[0], !appendTo)
			if err != nil {
				return err
			}
			defer f.Close()
			logger.InfoCF("cli", "payload written", map[string]interface{}{
				"path":  args[0],
				"bytes": d.Len(),
			})
			return nil
		},
	}
	cmd.Flags().BoolVar(&appendTo, "append", false, "append to the file instead of replacing it")
	return cmd
}

func printInfo(w io.Writer, d *datauri.Data) {
	fmt.Fprintf(w, "mime type: %s\n", d.GetMimeType())
	fmt.Fprintf(w, "size:      %d bytes\n", d.Len())
	fmt.Fprintf(w, "binary:    %v\n", d.IsBinaryData())
	if d.GetParameters().Len() > 0 {
		fmt.Fprintln(w, "parameters:")
		for k, v := range d.GetParameters().All() {
			fmt.Fprintf(w, "  %s=%s\n", k, v)
		}
	}
}
