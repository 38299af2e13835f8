package commands

import (
	"os"

	"dslit/simulation"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dslit",
	Short: "双缝屏障上的二维波动方程模拟器",
	Long: `dslit 在带双缝障碍的正方形网格上积分二维标量波动方程。
支持串行、共享内存并行和按行块划分的分布式三种运行模式。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "conf/config.ini", "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
}

func loadParameters() simulation.Parameters {
	cfg := simulation.LoadConfig(cfgPath)
	par, err := simulation.NewParameters(cfg)
	if err != nil {
		log.WithError(err).Fatal("参数校验失败")
	}
	return par
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
