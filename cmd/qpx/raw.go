package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRawCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <file.json|->",
		Short: "Send a complete request body as is",
		Long: `Send a request body already in QPX Express wire format. The file is
forwarded without any change. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.RawQuery(cmd.Context(), body)
			if err != nil {
				return err
			}

			return opts.printResponse(cmd.OutOrStdout(), resp)
		},
	}
}

func readBody(stdin io.Reader, path string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%s does not contain valid JSON", path)
	}
	return json.RawMessage(data), nil
}
