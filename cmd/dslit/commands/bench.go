package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dslit/simulation"
)

var benchMaxWorkers int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "按 worker 数扫描测量加速比",
	Long: `用同一份参数分别以 1, 2, 4, ... 个 worker 完整跑一遍模拟，
打印每个规模的耗时和相对串行的加速比。`,
	Run: func(cmd *cobra.Command, args []string) {
		par := loadParameters()

		var base time.Duration
		fmt.Printf("%-8s %-14s %s\n", "workers", "elapsed", "speedup")
		for w := 1; w <= benchMaxWorkers; w *= 2 {
			par.Workers = w
			sim := simulation.NewSimulator(par)
			elapsed := sim.Run()
			sim.Close()

			if w == 1 {
				base = elapsed
			}
			fmt.Printf("%-8d %-14v %.2f\n", w, elapsed, float64(base)/float64(elapsed))
		}
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchMaxWorkers, "max-workers", 8, "扫描的最大 worker 数")
	rootCmd.AddCommand(benchCmd)
}
