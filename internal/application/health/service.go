package health

import (
	"context"
	"encoding/json"
	"os"
	"runtime"
	"strconv"
	"time"

	"carmarket-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

// DBPinger is optional. If nil, the database is reported as disconnected.
type DBPinger interface {
	Ping() error
}

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusDisabled     = "disabled"
	StatusError        = "error"
)

// CollectResult is the body of /health/json.
type CollectResult struct {
	Status       string               `json:"status"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Traffic      TrafficInfo          `json:"traffic"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type RuntimeInfo struct {
	UptimeSeconds int64      `json:"uptimeSeconds"`
	Memory        MemoryInfo `json:"memory"`
	CPU           CPUInfo    `json:"cpu"`
	Goroutines    int        `json:"goroutines"`
	Platform      string     `json:"platform"`
	GoVersion     string     `json:"goVersion"`
}

type MemoryInfo struct {
	RSSMB      int `json:"rssMb"`
	AllocMB    int `json:"allocMb"`
	HeapUsedMB int `json:"heapUsedMb"`
}

type CPUInfo struct {
	LoadAvg []string `json:"loadAvg"`
}

type TrafficInfo struct {
	TotalRequests   int         `json:"totalRequests"`
	SuccessCount    int         `json:"successCount"`
	FailedCount     int         `json:"failedCount"`
	SuccessRate     string      `json:"successRate"`
	AvgResponseTime interface{} `json:"avgResponseTime"`
	LastRequest     interface{} `json:"lastRequest"`
}

type DepStatus struct {
	Status string `json:"status"`
	PingMs *int64 `json:"pingMs"`
}

var processStart = time.Now()

// CollectHealth pings the database and Redis and reads the traffic counters kept by
// the HealthMarker middleware. Redis is optional: a nil client is reported as disabled
// and does not degrade the overall status.
func CollectHealth(ctx context.Context, rdb *redis.Client, db DBPinger) CollectResult {
	result := CollectResult{Dependencies: make(map[string]DepStatus)}

	dbStatus := DepStatus{Status: StatusDisconnected}
	if db != nil {
		start := time.Now()
		if err := db.Ping(); err == nil {
			ms := time.Since(start).Milliseconds()
			dbStatus = DepStatus{Status: StatusConnected, PingMs: &ms}
		} else {
			dbStatus.Status = StatusError
		}
	}
	result.Dependencies["database"] = dbStatus

	traffic := TrafficInfo{AvgResponseTime: 0, SuccessRate: "100"}
	startMs := processStart.UnixMilli()
	redisStatus := DepStatus{Status: StatusDisabled}
	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisStatus = DepStatus{Status: StatusConnected, PingMs: &ms}
			startMs = readTraffic(ctx, rdb, &traffic, startMs)
		} else {
			redisStatus.Status = StatusError
		}
	}
	result.Dependencies["redis"] = redisStatus
	result.Traffic = traffic

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptime := (time.Now().UnixMilli() - startMs) / 1000
	if uptime < 0 {
		uptime = 0
	}
	result.Runtime = RuntimeInfo{
		UptimeSeconds: uptime,
		Memory:        MemoryInfo{RSSMB: rssMB(ctx), AllocMB: int(m.Alloc / 1024 / 1024), HeapUsedMB: int(m.HeapInuse / 1024 / 1024)},
		CPU:           CPUInfo{LoadAvg: loadAvg(ctx)},
		Goroutines:    runtime.NumGoroutine(),
		Platform:      runtime.GOOS + " (" + runtime.GOARCH + ")",
		GoVersion:     runtime.Version(),
	}

	result.Status = "ok"
	if dbStatus.Status != StatusConnected || redisStatus.Status == StatusError {
		result.Status = "issue"
	}
	return result
}

// readTraffic fills t from the health counters and returns the recorded start time.
func readTraffic(ctx context.Context, rdb *redis.Client, t *TrafficInfo, startMs int64) int64 {
	vals, err := rdb.MGet(ctx,
		middleware.KeyReqTotal, middleware.KeyReqErrors, middleware.KeyResTime,
		middleware.KeyResCount, middleware.KeyStartTime, middleware.KeyLastReq,
	).Result()
	if err != nil {
		return startMs
	}
	str := func(i int) string {
		s, _ := vals[i].(string)
		return s
	}

	if s := str(4); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			startMs = v
		}
	} else {
		rdb.Set(ctx, middleware.KeyStartTime, startMs, 0)
	}

	t.TotalRequests, _ = strconv.Atoi(str(0))
	t.FailedCount, _ = strconv.Atoi(str(1))
	t.SuccessCount = t.TotalRequests - t.FailedCount
	if t.TotalRequests > 0 {
		t.SuccessRate = strconv.FormatFloat(float64(t.SuccessCount)/float64(t.TotalRequests)*100, 'f', 1, 64)
	}
	timeSum, _ := strconv.ParseFloat(str(2), 64)
	if count, _ := strconv.Atoi(str(3)); count > 0 {
		t.AvgResponseTime = strconv.FormatFloat(timeSum/float64(count), 'f', 2, 64)
	}
	if s := str(5); s != "" {
		var last map[string]interface{}
		if json.Unmarshal([]byte(s), &last) == nil {
			t.LastRequest = last
		}
	}
	return startMs
}

// loadAvg returns the 1, 5 and 15 minute load averages, zeros where the platform has none.
func loadAvg(ctx context.Context) []string {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return []string{"0.00", "0.00", "0.00"}
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return []string{f(avg.Load1), f(avg.Load5), f(avg.Load15)}
}

func rssMB(ctx context.Context) int {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return 0
	}
	mi, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0
	}
	return int(mi.RSS / 1024 / 1024)
}
