package api_router

import (
	"os"
	"runtime"
	"time"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	pkgapp "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// SystemHandler 系统信息处理器
type SystemHandler struct {
	*Handler
}

func NewSystemHandler(a *app.App) *SystemHandler {
	return &SystemHandler{Handler: NewHandler(a)}
}

// SystemInfo 系统信息
type SystemInfo struct {
	StartTime time.Time   `json:"startTime"` // Start time // 启动时间
	Uptime    float64     `json:"uptime"`    // Uptime (seconds) // 运行时间（秒）
	Runtime   RuntimeInfo `json:"runtime"`   // Go runtime status // Go 运行时状态
	CPU       CPUInfo     `json:"cpu"`
	Memory    MemoryInfo  `json:"memory"`
	Host      HostInfo    `json:"host"`
	Process   ProcessInfo `json:"process"`
}

type CPUInfo struct {
	ModelName     string    `json:"modelName"`
	PhysicalCores int       `json:"physicalCores"`
	LogicalCores  int       `json:"logicalCores"`
	Percent       float64   `json:"percent"` // Overall usage // 总使用率
	LoadAvg       *LoadInfo `json:"loadAvg,omitempty"`
}

type LoadInfo struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

type MemoryInfo struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"usedPercent"`
}

type HostInfo struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	OSPretty      string `json:"osPretty"` // Detailed OS name // 详细操作系统名称
	Platform      string `json:"platform"`
	Arch          string `json:"arch"`
	KernelVersion string `json:"kernelVersion"`
	Uptime        uint64 `json:"uptime"`
	TimeZone      string `json:"timezone"`
}

type ProcessInfo struct {
	PID           int32   `json:"pid"`
	Name          string  `json:"name"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float32 `json:"memoryPercent"`
}

type RuntimeInfo struct {
	GoVersion    string `json:"goVersion"`
	NumGoroutine int    `json:"numGoroutine"`
	MemAlloc     uint64 `json:"memAlloc"` // Allocated heap bytes // 已分配堆内存（字节）
	MemSys       uint64 `json:"memSys"`
	NumGC        uint32 `json:"numGc"`
}

// Info host, cpu, memory and process information
// Probe failures leave the matching section at its zero value
// 探测失败时对应部分保持零值
// @Summary System information
// @Tags System
// @Produce json
// @Security UserAuthToken
// @Success 200 {object} pkgapp.Res{data=SystemInfo} "Success"
// @Failure 403 {object} pkgapp.Res "Not Administrator"
// @Router /api/admin/system [get]
func (h *SystemHandler) Info(c *gin.Context) {
	ctx := c.Request.Context()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	data := SystemInfo{
		StartTime: h.App.StartTime(),
		Uptime:    h.App.Uptime().Seconds(),
		Runtime: RuntimeInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     m.Alloc,
			MemSys:       m.Sys,
			NumGC:        m.NumGC,
		},
		Host: HostInfo{
			OS:       runtime.GOOS,
			OSPretty: util.GetOSPrettyName(),
			Arch:     runtime.GOARCH,
			TimeZone: time.Now().Location().String(),
		},
	}

	// CPU
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		data.CPU.ModelName = infos[0].ModelName
	}
	data.CPU.PhysicalCores, _ = cpu.CountsWithContext(ctx, false)
	data.CPU.LogicalCores, _ = cpu.CountsWithContext(ctx, true)
	if percents, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percents) > 0 {
		data.CPU.Percent = percents[0]
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		data.CPU.LoadAvg = &LoadInfo{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}
	}

	// Memory
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		data.Memory = MemoryInfo{
			Total:       vm.Total,
			Available:   vm.Available,
			Used:        vm.Used,
			UsedPercent: vm.UsedPercent,
		}
	}

	// Host
	if hi, err := host.InfoWithContext(ctx); err == nil {
		data.Host.Hostname = hi.Hostname
		data.Host.Platform = hi.Platform
		data.Host.KernelVersion = hi.KernelVersion
		data.Host.Uptime = hi.Uptime
	}

	// Process
	if p, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		data.Process.PID = p.Pid
		data.Process.Name, _ = p.NameWithContext(ctx)
		data.Process.CPUPercent, _ = p.CPUPercentWithContext(ctx)
		data.Process.MemoryPercent, _ = p.MemoryPercentWithContext(ctx)
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(data))
}
