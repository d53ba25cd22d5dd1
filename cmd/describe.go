package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rtsyn/synapse-sim/plugin"
	// Register built-in node kinds.
	_ "github.com/rtsyn/synapse-sim/synapse"
)

var describeKind string // Node kind to describe; empty lists all kinds

// describeCmd prints the wire-format description a host would receive when
// binding a node kind. The describe entry points are kind constants, so a
// nil handle is enough.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the metadata and port lists of a registered node kind",
	Run: func(cmd *cobra.Command, args []string) {
		if describeKind == "" {
			for _, kind := range plugin.Kinds() {
				fmt.Println(kind)
			}
			return
		}

		api, ok := plugin.Lookup(describeKind)
		if !ok {
			logrus.Fatalf("Unknown node kind %q (registered: %v)", describeKind, plugin.Kinds())
		}

		fmt.Printf("meta    : %s\n", api.MetaJSON(nil))
		fmt.Printf("inputs  : %s\n", api.InputsJSON(nil))
		fmt.Printf("outputs : %s\n", api.OutputsJSON(nil))
	},
}

func init() {
	describeCmd.Flags().StringVar(&describeKind, "kind", "", "Node kind to describe (omit to list registered kinds)")

	rootCmd.AddCommand(describeCmd)
}
