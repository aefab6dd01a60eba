package debug

import (
	"runtime"
	"time"

	"gamekit/internal/logger"
)

// updateInterval: only compute and log FPS/Mem every N frames to keep the
// collector off the frame's hot path.
const updateInterval = 120

// Stats samples frame rate and heap use and reports them through the runtime
// log. All sampling is off until enabled.
type Stats struct {
	ShowFPS      bool
	ShowMemAlloc bool

	log        *logger.Logger
	frameCount uint32
	lastSample time.Time
	memStats   runtime.MemStats
}

// New returns a Stats collector with all sampling disabled.
func New(log *logger.Logger) *Stats {
	return &Stats{log: log}
}

// SetShowFPS sets whether frame rate is sampled and logged.
func (s *Stats) SetShowFPS(show bool) {
	s.ShowFPS = show
}

// SetShowMemAlloc sets whether heap allocation is sampled and logged.
func (s *Stats) SetShowMemAlloc(show bool) {
	s.ShowMemAlloc = show
}

// Frame records one rendered frame. Call once per loop iteration after
// present. Every updateInterval frames the enabled samples are written to
// the log as a single line.
func (s *Stats) Frame() {
	if !s.ShowFPS && !s.ShowMemAlloc {
		return
	}
	if s.lastSample.IsZero() {
		s.lastSample = time.Now()
	}
	s.frameCount++
	if s.frameCount%updateInterval != 0 {
		return
	}

	now := time.Now()
	elapsed := now.Sub(s.lastSample)
	s.lastSample = now

	if s.ShowFPS && elapsed > 0 {
		fps := float64(updateInterval) / elapsed.Seconds()
		s.log.Logf("stats: %.1f fps", fps)
	}
	if s.ShowMemAlloc {
		runtime.ReadMemStats(&s.memStats)
		mb := float64(s.memStats.Alloc) / (1024 * 1024)
		s.log.Logf("stats: heap %.2f MiB", mb)
	}
}
