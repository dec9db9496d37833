package service

import (
	"sync"

	"kyc-webhook-simulator/internal/core/domain"
	"kyc-webhook-simulator/internal/core/ports"
)

// historyCap bounds retained attempts; older entries are dropped first.
const historyCap = 1000

// statsRecentWindow is how many attempts Stats embeds as recent history.
const statsRecentWindow = 10

// memoryDeliveryTracker implements ports.DeliveryTracker with a bounded
// in-memory history. Aggregates cover every attempt ever recorded, not just
// the retained window.
type memoryDeliveryTracker struct {
	mu       sync.RWMutex
	attempts []domain.DeliveryAttempt

	total      int64
	successful int64
	latencySum float64
	perProv    map[domain.Provider]*providerAccum
}

type providerAccum struct {
	total      int64
	successful int64
	latencySum float64
}

// NewMemoryDeliveryTracker creates an empty delivery tracker.
func NewMemoryDeliveryTracker() ports.DeliveryTracker {
	return &memoryDeliveryTracker{
		perProv: make(map[domain.Provider]*providerAccum),
	}
}

// Record stores one attempt and folds it into the running aggregates.
func (t *memoryDeliveryTracker) Record(attempt domain.DeliveryAttempt) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.attempts = append(t.attempts, attempt)
	if len(t.attempts) > historyCap {
		t.attempts = t.attempts[len(t.attempts)-historyCap:]
	}

	latencyMs := float64(attempt.Latency.Microseconds()) / 1000.0

	t.total++
	t.latencySum += latencyMs
	if attempt.Success {
		t.successful++
	}

	acc := t.perProv[attempt.Provider]
	if acc == nil {
		acc = &providerAccum{}
		t.perProv[attempt.Provider] = acc
	}
	acc.total++
	acc.latencySum += latencyMs
	if attempt.Success {
		acc.successful++
	}
}

// Stats returns aggregates, optionally narrowed to one provider.
func (t *memoryDeliveryTracker) Stats(provider *domain.Provider) domain.DeliveryStatistics {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := domain.DeliveryStatistics{
		ProviderStats:    make(map[domain.Provider]domain.ProviderDeliveryStats),
		RecentDeliveries: t.recentLocked(statsRecentWindow, provider),
	}

	if provider != nil {
		acc := t.perProv[*provider]
		if acc != nil {
			stats.TotalDeliveries = acc.total
			stats.SuccessfulDeliveries = acc.successful
			stats.FailedDeliveries = acc.total - acc.successful
			stats.SuccessRate = rate(acc.successful, acc.total)
			stats.AvgLatencyMs = avg(acc.latencySum, acc.total)
			stats.ProviderStats[*provider] = providerStats(acc)
		}
		return stats
	}

	stats.TotalDeliveries = t.total
	stats.SuccessfulDeliveries = t.successful
	stats.FailedDeliveries = t.total - t.successful
	stats.SuccessRate = rate(t.successful, t.total)
	stats.AvgLatencyMs = avg(t.latencySum, t.total)
	for p, acc := range t.perProv {
		stats.ProviderStats[p] = providerStats(acc)
	}
	return stats
}

// Recent returns up to n most recent attempts, newest first.
func (t *memoryDeliveryTracker) Recent(n int) []domain.DeliveryAttempt {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.recentLocked(n, nil)
}

func (t *memoryDeliveryTracker) recentLocked(n int, provider *domain.Provider) []domain.DeliveryAttempt {
	if n <= 0 {
		return nil
	}
	out := make([]domain.DeliveryAttempt, 0, n)
	for i := len(t.attempts) - 1; i >= 0 && len(out) < n; i-- {
		if provider != nil && t.attempts[i].Provider != *provider {
			continue
		}
		out = append(out, t.attempts[i])
	}
	return out
}

// Clear resets history and aggregates.
func (t *memoryDeliveryTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempts = nil
	t.total = 0
	t.successful = 0
	t.latencySum = 0
	t.perProv = make(map[domain.Provider]*providerAccum)
}

func providerStats(acc *providerAccum) domain.ProviderDeliveryStats {
	return domain.ProviderDeliveryStats{
		Total:        acc.total,
		Successful:   acc.successful,
		Failed:       acc.total - acc.successful,
		SuccessRate:  rate(acc.successful, acc.total),
		AvgLatencyMs: avg(acc.latencySum, acc.total),
	}
}

func rate(successful, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(successful) / float64(total)
}

func avg(sum float64, total int64) float64 {
	if total == 0 {
		return 0
	}
	return sum / float64(total)
}
