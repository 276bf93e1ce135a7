// Package cmd command line entry of the service
// Package cmd 服务的命令行入口
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configDefault embedded default config.yaml, written on first run
// configDefault 内嵌的默认配置，首次运行时写入磁盘
var configDefault string

var rootCmd = &cobra.Command{
	Use:   "pim-service",
	Short: "Personal Information Manager service",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute(c string) {
	configDefault = c
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
