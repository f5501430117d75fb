package arenaserver

import (
	"sync/atomic"
	"time"

	"github.com/bytearena/gridarena/common/utils"
)

type counter struct {
	count int64
}

func (c *counter) Add(n int) {
	atomic.AddInt64(&c.count, int64(n))
}

func (c *counter) GetAndReset() int {
	return int(atomic.SwapInt64(&c.count, 0))
}

// monitoring logs the tick and kill rates every freq until stop is closed.
func (s *Simulation) monitoring(stop <-chan struct{}, freq time.Duration) {
	ticker := time.NewTicker(freq)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			utils.Debug("monitoring",
				"-- MONITORING -- "+
					itoa(s.tickCounter.GetAndReset())+" ticks per "+freq.String()+"; "+
					itoa(s.killCounter.GetAndReset())+" kills per "+freq.String(),
			)
		}
	}
}
