package bench

import (
	"github.com/openziti/objectpool/cmd/objectpool/objectpool"
	"github.com/spf13/cobra"
)

func init() {
	benchCmd.PersistentFlags().IntVarP(&count, "count", "c", 1000, "Allocation count for each pass")
	benchCmd.PersistentFlags().IntVarP(&capacity, "capacity", "n", 0, "Pool capacity (defaults to count)")
	benchCmd.PersistentFlags().StringVarP(&strategy, "strategy", "s", "array", "Pool strategy (array, multiset)")
	benchCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "", "Bench profile path")
	benchCmd.PersistentFlags().StringVarP(&resultsRoot, "results", "m", "", "Write timing datasets under this root")
	objectpool.RootCmd.AddCommand(benchCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare stack, heap, and pool allocation",
}
var count int
var capacity int
var strategy string
var configPath string
var resultsRoot string
