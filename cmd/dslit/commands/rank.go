package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dslit/cluster"
	"dslit/exchange"
	"dslit/simulation"
)

var (
	rankID    int
	rankAddrs string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "以环上一个分区的身份参与分布式运行",
	Long: `每个进程负责一个行块分区，通过 websocket 与环形邻居
交换 halo 行。所有分区用同一份配置和同一份地址表启动，例如：

  dslit rank --rank 0 --addrs localhost:9101,localhost:9102
  dslit rank --rank 1 --addrs localhost:9101,localhost:9102`,
	Run: func(cmd *cobra.Command, args []string) {
		par := loadParameters()
		addrs := strings.Split(rankAddrs, ",")
		if rankID < 0 || rankID >= len(addrs) {
			log.Fatalf("rank %d 超出地址表范围 (共 %d 个)", rankID, len(addrs))
		}

		layout, err := simulation.NewLayout(par.N, len(addrs))
		if err != nil {
			log.WithError(err).Fatal("分区划分失败")
		}
		part := layout.Partition(rankID)

		var prev, next exchange.Link
		if len(addrs) > 1 {
			prev, next, err = exchange.Ring(rankID, addrs)
			if err != nil {
				log.WithError(err).Fatal("环形链路建立失败")
			}
			defer prev.Close()
			defer next.Close()
		}

		if _, _, err := cluster.RunRank(par, part, prev, next); err != nil {
			log.WithError(err).Fatal("分区运行失败")
		}
	},
}

func init() {
	rankCmd.Flags().IntVar(&rankID, "rank", 0, "本分区在环上的编号")
	rankCmd.Flags().StringVar(&rankAddrs, "addrs", "localhost:9101", "全部分区的监听地址，按 rank 顺序逗号分隔")
	rootCmd.AddCommand(rankCmd)
}
