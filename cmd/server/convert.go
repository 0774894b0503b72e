package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/opr-tts-api/internal/orchestrators/armylist"
)

var (
	convertSave   bool
	convertOut    string
	convertPretty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <share-link-or-id>",
	Short: "Convert an Army Forge list and print the shareable output",
	Long: `Fetch a list from Army Forge and print the JSON bundle the tabletop mod
loads. With --save the bundle is also stored in Redis and its id printed to
stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertSave, "save", false, "store the result in Redis")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "write the JSON to a file instead of stdout")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "indent the JSON output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(convertSave)
	if err != nil {
		return err
	}
	defer d.Close()

	out, err := d.service.Convert(cmd.Context(), &armylist.ConvertInput{
		ShareLink: args[0],
		Save:      convertSave,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if convertOut != "" {
		f, err := os.Create(convertOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", convertOut, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	enc := json.NewEncoder(w)
	if convertPretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out.Output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if out.SharedList != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "saved list id: %s\n", out.SharedList.ID)
	}
	return nil
}
