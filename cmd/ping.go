package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the service accepts your key",
	Long:  `Call pingService and print the service's reply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimple(cmd, func(ctx context.Context, a *app) (json.RawMessage, error) {
			return a.client.Ping(ctx)
		})
	},
}

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the service description",
	Long:  `Call getServiceDescription and print the methods the service offers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimple(cmd, func(ctx context.Context, a *app) (json.RawMessage, error) {
			return a.client.ServiceDescription(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(describeCmd)
}

// runSimple runs one anonymous call and prints its JSON reply
func runSimple(cmd *cobra.Command, call func(context.Context, *app) (json.RawMessage, error)) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer a.shutdown(ctx)

	raw, err := call(ctx, a)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), raw)
}

// printJSON writes raw indented, falling back to the bytes as received
func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}
