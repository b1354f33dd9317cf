// Package metrics serves the runtime debug/statsviz endpoint every
// teacher main.go starts in its own goroutine, and logs periodic
// process gauges gathered with gopsutil.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/arl/statsviz"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"riichiscore/internal/logging"
)

// Serve registers the statsviz handlers on a dedicated mux and blocks
// serving HTTP on addr, mirroring the teacher's "go func() {
// metrics.Serve(...) }()" startup pattern.
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return fmt.Errorf("register statsviz: %w", err)
	}
	logging.Info("metrics listening, url: http://%s/debug/statsviz/", addr)
	return http.ListenAndServe(addr, mux)
}

// ReportPeriodically logs coarse CPU/memory gauges every interval until
// stop is closed, for operators without a statsviz dashboard open.
func ReportPeriodically(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			report()
		}
	}
}

func report() {
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		logging.Warn("cpu.Percent failed: %v", err)
		return
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		logging.Warn("mem.VirtualMemory failed: %v", err)
		return
	}
	logging.Info("cpu=%.1f%% mem_used=%.1f%%", percents[0], vm.UsedPercent)
}
