package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dslit/server"
	"dslit/simulation"
)

var servePushEvery int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 websocket 推送服务",
	Long: `监听配置中的地址，客户端通过 /ws 接入后发送
{"type":"start"} 启动计算，场快照会按 PushStride 降采样后
持续推送给所有客户端。`,
	Run: func(cmd *cobra.Command, args []string) {
		par := loadParameters()
		cfg := simulation.LoadConfig(cfgPath)

		sim := simulation.NewSimulator(par)
		sim.PushEvery = servePushEvery
		sim.PushStride = cfg.PushStride
		defer sim.Close()

		hub := server.NewHub(sim)
		srv := server.NewServer(cfg.Addr, hub)
		if err := srv.Serve(); err != nil {
			log.WithError(err).Fatal("推送服务退出")
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePushEvery, "push-every", 10, "每隔多少步推送一帧")
	rootCmd.AddCommand(serveCmd)
}
