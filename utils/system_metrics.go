package utils

import (
	"log"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// UpdateSystemMetrics refreshes the CPU and memory gauges. The maintenance
// scheduler calls this periodically.
func UpdateSystemMetrics() {
	if percentages, err := cpu.Percent(0, false); err != nil {
		log.Printf("Error getting CPU usage: %v", err)
	} else if len(percentages) > 0 {
		SystemCPUUsage.Set(percentages[0])
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		log.Printf("Error getting memory usage: %v", err)
	} else {
		SystemMemoryUsage.Set(vm.UsedPercent)
	}
}
