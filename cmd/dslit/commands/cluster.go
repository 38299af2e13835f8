package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dslit/cluster"
)

var clusterRanks int

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "在单进程内模拟 P 个分区的分布式运行",
	Long: `把网格按行块划分成 P 个分区，每个分区一个执行体，
分区之间通过进程内链路交换 halo 行。主要用于验证分布式
分解的正确性，不需要真实的多机环境。`,
	Run: func(cmd *cobra.Command, args []string) {
		par := loadParameters()
		_, reports, err := cluster.RunLocal(par, clusterRanks)
		if err != nil {
			log.WithError(err).Fatal("分布式运行失败")
		}
		for _, r := range reports {
			log.WithFields(log.Fields{
				"rank":    r.Rank,
				"steps":   r.Steps,
				"elapsed": r.Elapsed,
			}).Info("分区耗时")
		}
	},
}

func init() {
	clusterCmd.Flags().IntVarP(&clusterRanks, "ranks", "p", 2, "分区数，必须整除 N")
	rootCmd.AddCommand(clusterCmd)
}
