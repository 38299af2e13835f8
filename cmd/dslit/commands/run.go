package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dslit/simulation"
)

var runWorkers int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "在本机运行模拟直到 TEnd",
	Run: func(cmd *cobra.Command, args []string) {
		par := loadParameters()
		if runWorkers > 0 {
			par.Workers = runWorkers
		}
		sim := simulation.NewSimulator(par)
		defer sim.Close()

		elapsed := sim.Run()
		log.WithFields(log.Fields{
			"N":       par.N,
			"steps":   sim.Step(),
			"workers": par.Workers,
			"elapsed": elapsed,
		}).Info("运行完成")
	},
}

func init() {
	runCmd.Flags().IntVarP(&runWorkers, "workers", "w", 0, "worker 数，0 表示使用配置值")
	rootCmd.AddCommand(runCmd)
}
