package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumUsers        int
	NumAuctions     int
	BidsPerUser     int
	ReadRatio       int
	MaxBidIncrement int
	Burst           bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupService creates a bidding service over a fresh store with numAuctions open auctions
func setupService(b *testing.B, numAuctions int) *bidding.BiddingService {
	svc := bidding.NewBiddingService(repository.NewMemoryRepo(), allPaid{})
	for i := 0; i < numAuctions; i++ {
		a := newAuction(fmt.Sprintf("auction_%d", i))
		a.BasePrice = 100
		if _, err := svc.CreateAuction(a); err != nil {
			b.Fatalf("failed to create auction: %v", err)
		}
	}
	return svc
}

// Benchmark_Load_BiddingSystem runs multiple scenarios
func Benchmark_Load_BiddingSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 10, 0, 50, false},
		{"High-Contention-WriteHeavy", 500, 10, 20, 0, 20, false},
		{"Mixed-Workload", 300, 50, 15, 7, 30, false},
		{"ReadHeavy", 200, 50, 5, 9, 20, false},
		{"Edge-Case-SingleAuction", 100, 1, 10, 5, 10, false},
		{"Peak-Burst", 500, 50, 50, 0, 20, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc := setupService(b, s.NumAuctions)

	var totalOps, successfulBids, failedBids, totalReads int64
	auctionSuccess := make([]int64, s.NumAuctions)
	// per-auction price floor so most writers bid above the current highest
	floors := make([]int64, s.NumAuctions)
	for i := range floors {
		floors[i] = 100
	}
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			idx := rnd.Intn(s.NumAuctions)
			auctionID := fmt.Sprintf("auction_%d", idx)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.GetAuction(auctionID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				bidAmount := atomic.AddInt64(&floors[idx], int64(1+rnd.Intn(s.MaxBidIncrement)))
				userID := fmt.Sprintf("user_%d", rnd.Intn(s.NumUsers))
				if _, err := svc.PlaceBid(auctionID, userID, float64(bidAmount)); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
					atomic.AddInt64(&auctionSuccess[idx], 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulBids, failedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range auctionSuccess {
		if v > 0 {
			b.Logf("Auction %d successful bids: %d", i, v)
		}
	}
}

// TestConcurrentBids_HighestAcceptedWins races many bidders on one auction; the
// accepted bids must form a strictly rising sequence ending at the winning bid.
func TestConcurrentBids_HighestAcceptedWins(t *testing.T) {
	svc := bidding.NewBiddingService(repository.NewMemoryRepo(), allPaid{})
	_, err := svc.CreateAuction(newAuction("race"))
	require.NoError(t, err)

	var (
		mu       sync.Mutex
		accepted []float64
		floor    int64 = 50
	)
	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				amount := float64(atomic.AddInt64(&floor, 1))
				bid, err := svc.PlaceBid("race", fmt.Sprintf("user_%d_%d", w, i), amount)
				if err != nil {
					continue
				}
				mu.Lock()
				accepted = append(accepted, bid.Amount)
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NotEmpty(t, accepted)

	bids, err := svc.GetBidsForAuction("race")
	require.NoError(t, err)
	require.Len(t, bids, len(accepted))

	highest := accepted[0]
	for _, a := range accepted {
		highest = max(highest, a)
	}
	winning, err := svc.GetWinningBid("race")
	require.NoError(t, err)
	require.Equal(t, highest, winning.Amount)

	a, err := svc.GetAuction("race")
	require.NoError(t, err)
	require.Equal(t, highest, a.CurrentBid)
	require.Equal(t, len(accepted), a.BidCount)
}
