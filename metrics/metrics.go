// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 输出执行器和 dice 的统计数据 (go-metrics 默认 registry)
package metrics

import (
	"io"
	"os"
	"sort"
	"time"

	"github.com/33cn/dice/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	mlog = log.New("module", "metrics")
	// stderr 模式的输出
	output io.Writer = os.Stderr
)

// StartMetrics 根据配置启动统计输出，返回的函数在程序退出前调用
//
//	log:    每隔 Duration 秒打印到日志，退出时再打印一次
//	stderr: 退出时打印到标准错误
func StartMetrics(cfg *types.Metrics) (stop func()) {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Debug("Metrics data is not enabled to emit")
		return func() {}
	}
	r := go_metrics.DefaultRegistry
	switch cfg.DataEmitMode {
	case "log":
		done := make(chan struct{})
		go logLoop(r, time.Duration(cfg.Duration)*time.Second, done)
		return func() {
			close(done)
			Report(r)
		}
	case "stderr":
		return func() {
			go_metrics.WriteOnce(r, output)
		}
	default:
		mlog.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
		return func() {}
	}
}

func logLoop(r go_metrics.Registry, freq time.Duration, done <-chan struct{}) {
	if freq <= 0 {
		freq = time.Minute
	}
	ticker := time.NewTicker(freq)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			Report(r)
		case <-done:
			return
		}
	}
}

// Report 把 registry 中每一项打印到日志，按名字排序
func Report(r go_metrics.Registry) {
	all := r.GetAll()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		values := all[name]
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ctx := []interface{}{"name", name}
		for _, k := range keys {
			ctx = append(ctx, k, values[k])
		}
		mlog.Info("metrics", ctx...)
	}
}
