package metrics

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

type Sample struct {
	CapturedAt        time.Time `json:"capturedAt"`
	ProcessRSSBytes   int64     `json:"processRssBytes"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `json:"diskTotalBytes"`
	DiskUsedBytes     int64     `json:"diskUsedBytes"`
	ProcessCpuLoad    float64   `json:"processCpuLoad"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
}

func Capture(diskPath string) Sample {
	proc, _ := process.NewProcess(int32(os.Getpid()))
	memStat, _ := mem.VirtualMemory()
	diskStat, err := disk.Usage(diskPath)
	if err != nil {
		diskStat, _ = disk.Usage("/")
	}
	processRSS := int64(0)
	processCPU := float64(0)
	if proc != nil {
		rss, _ := proc.MemoryInfo()
		if rss != nil {
			processRSS = int64(rss.RSS)
		}
		cpuPerc, _ := proc.CPUPercent()
		processCPU = cpuPerc / 100.0
	}
	sysCPU, _ := cpu.Percent(0, false)
	sysCPUValue := 0.0
	if len(sysCPU) > 0 {
		sysCPUValue = sysCPU[0] / 100.0
	}
	sample := Sample{
		CapturedAt:      time.Now().UTC(),
		ProcessRSSBytes: processRSS,
		ProcessCpuLoad:  processCPU,
		SystemCpuLoad:   sysCPUValue,
	}
	if memStat != nil {
		sample.SystemMemoryTotal = int64(memStat.Total)
		sample.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}
	if diskStat != nil {
		sample.DiskTotalBytes = int64(diskStat.Total)
		sample.DiskUsedBytes = int64(diskStat.Used)
	}
	return sample
}

const historyLimit = 60

// Recorder keeps a bounded in-memory window of samples for the health panel.
type Recorder struct {
	diskPath string
	interval time.Duration

	mu      sync.Mutex
	samples []Sample
}

func NewRecorder(diskPath string, interval time.Duration) *Recorder {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Recorder{diskPath: diskPath, interval: interval}
}

func (r *Recorder) Run(ctx context.Context) {
	r.record()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.record()
		case <-ctx.Done():
			return
		}
	}
}

func (r *Recorder) record() {
	sample := Capture(r.diskPath)
	r.mu.Lock()
	r.samples = append(r.samples, sample)
	if len(r.samples) > historyLimit {
		r.samples = r.samples[len(r.samples)-historyLimit:]
	}
	r.mu.Unlock()
}

// History returns the recorded window, oldest first.
func (r *Recorder) History() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}
