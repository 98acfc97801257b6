package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/spf13/cobra"
)

var callLogin bool

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <method> [params-json]",
	Short: "Invoke any remote method and print the raw reply",
	Long: `Invoke a remote method by name with optional JSON parameters and print
the full reply, including any service faults.

Examples:
  sharkfin call getCountry
  sharkfin call getSongsInfo '{"songIDs":[1,2]}'
  sharkfin call --login getUserInfo`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params grooveshark.Params
		if len(args) == 2 {
			p, err := parseParams(args[1])
			if err != nil {
				return err
			}
			params = p
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		defer a.shutdown(ctx)

		if callLogin {
			if err := a.requireLogin(ctx); err != nil {
				return err
			}
		}

		raw, err := a.client.Invoke(ctx, args[0], params)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), raw)
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().BoolVar(&callLogin, "login", false, "Authenticate before the call")
}

// parseParams decodes a JSON object of call parameters
func parseParams(s string) (grooveshark.Params, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var params grooveshark.Params
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("params must be a JSON object: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("params must be a single JSON object")
	}
	return params, nil
}
