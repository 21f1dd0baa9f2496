package cmd

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// defaultWorkers returns the number of logical CPUs
func defaultWorkers() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		logger.Warningf("could not count CPUs, falling back to GOMAXPROCS: %v", err)
		return runtime.GOMAXPROCS(0)
	}
	return count
}

func logHostInfo() {
	model := "unknown CPU"
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		model = info[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Infof("host: %s, %d GiB RAM", model, vm.Total>>30)
		return
	}
	logger.Infof("host: %s", model)
}
