// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口: 读取配置，设置日志和统计，然后交给插件的命令
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/dice/common/log"
	"github.com/33cn/dice/metrics"
	"github.com/33cn/dice/pluginmgr"
	"github.com/33cn/dice/types"
	"github.com/spf13/cobra"
)

// NewRootCmd 根命令, 插件的命令挂在下面
func NewRootCmd(defaultConf string) *cobra.Command {
	stop := func() {}
	rootCmd := &cobra.Command{
		Use:   "dice",
		Short: "dice game on a local executor node",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("conf")
			cfg, err := types.LoadCfg(path)
			if err != nil {
				return err
			}
			log.SetFileLog(cfg.Log)
			stop = metrics.StartMetrics(cfg.Metrics)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			stop()
		},
	}
	rootCmd.PersistentFlags().String("conf", defaultConf, "config file, empty for defaults")
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

//Run :
func Run(defaultConf string) {
	if err := NewRootCmd(defaultConf).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
