package partition

import (
	"fmt"
	"math"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/internal/options"
	"github.com/arloliu/intpack/internal/pool"
)

const (
	DefaultEpsilon1  = 0.03
	DefaultEpsilon2  = 0.3
	DefaultFixedCost = 64
)

// Approximate is the windowed partitioner over unrestricted block lengths.
//
// It minimizes Σ(K*B) + fixedCost*m. Candidate blocks are grouped by cost into windows
// whose ceilings grow geometrically from fixedCost up to a pruning cap. For each start
// position every window keeps the longest block whose cost stays within its ceiling, so
// only O(windows) candidates are evaluated per position.
//
// ε1 is the total error budget: half of it goes to pruning blocks above the cap and the
// rest to the window growth factor, which is also capped by ε2. The result costs at most
// (1+ε1) times the optimum.
type Approximate struct {
	eps1      float64
	eps2      float64
	fixedCost uint64
	observer  Observer
}

var _ Partitioner = (*Approximate)(nil)

// ApproximateOption configures an Approximate partitioner.
type ApproximateOption = options.Option[*Approximate]

// WithEpsilon sets the error bound ε1, in (0, 1), and the cap ε2 > 0 on the window growth factor.
func WithEpsilon(eps1, eps2 float64) ApproximateOption {
	return options.New(func(a *Approximate) error {
		if !(eps1 > 0 && eps1 < 1) || !(eps2 > 0) || math.IsInf(eps2, 0) {
			return fmt.Errorf("%w: epsilon pair (%v, %v) out of range", errs.ErrInvalidArgument, eps1, eps2)
		}
		a.eps1 = eps1
		a.eps2 = eps2

		return nil
	})
}

// WithFixedCost sets the per-block overhead in bits. It must be at least 1.
func WithFixedCost(bits uint64) ApproximateOption {
	return options.New(func(a *Approximate) error {
		if bits == 0 {
			return fmt.Errorf("%w: fixed cost must be positive", errs.ErrInvalidArgument)
		}
		a.fixedCost = bits

		return nil
	})
}

// WithObserver registers a callback that receives Stats after each call.
func WithObserver(fn Observer) ApproximateOption {
	return options.NoError(func(a *Approximate) {
		a.observer = fn
	})
}

// NewApproximate creates a windowed partitioner.
//
// Defaults: ε1 = 0.03, ε2 = 0.3, fixedCost = 64.
func NewApproximate(opts ...ApproximateOption) (*Approximate, error) {
	a := &Approximate{
		eps1:      DefaultEpsilon1,
		eps2:      DefaultEpsilon2,
		fixedCost: DefaultFixedCost,
	}

	if err := options.Apply(a, opts...); err != nil {
		return nil, err
	}

	return a, nil
}

// FixedCost returns the per-block overhead used by the cost model.
func (a *Approximate) FixedCost() uint64 {
	return a.fixedCost
}

// budget splits ε1 into the pruning and growth factors, with (1+prune)(1+growth) <= 1+ε1.
func (a *Approximate) budget() (prune, growth float64) {
	prune = a.eps1 / 2
	growth = min(a.eps2, prune/(1+prune))

	return prune, growth
}

// ceilings returns the window ceilings for a sequence of n values.
//
// The last ceiling covers either every block of the sequence or the pruning cap
// fixedCost/prune + fixedCost + 32. Blocks costing more than the cap are split.
func (a *Approximate) ceilings(n int) []float64 {
	prune, growth := a.budget()
	fixed := float64(a.fixedCost)
	upper := fixed/prune + fixed + 32
	maxCost := float64(n)*32 + fixed

	var cs []float64
	for c := fixed; ; c *= 1 + growth {
		cs = append(cs, c)
		if c >= upper || c >= maxCost {
			break
		}
	}

	return cs
}

// Partition implements Partitioner.
func (a *Approximate) Partition(values []uint32) (Partition, error) {
	n := len(values)
	if n == 0 {
		return Partition{}, fmt.Errorf("%w: empty sequence", errs.ErrInvalidArgument)
	}

	units, releaseUnits := pool.GetUint32Slice(n)
	defer releaseUnits()
	costUnits(units, values)

	minCost, releaseCost := pool.GetUint64Slice(n + 1)
	defer releaseCost()
	path, releasePath := pool.GetIntSlice(n + 1)
	defer releasePath()
	widths, releaseWidths := pool.GetUint32Slice(n + 1)
	defer releaseWidths()

	for i := 1; i <= n; i++ {
		minCost[i] = math.MaxUint64
	}

	ceilings := a.ceilings(n)
	windows := make([]*costWindow, len(ceilings))
	for k, c := range ceilings {
		windows[k] = newCostWindow(units, c)
	}

	var transitions uint64
	for i := range n {
		for _, w := range windows {
			for w.end < n {
				cost := uint64(w.size()+1)*uint64(w.extendedMax()) + a.fixedCost //nolint: gosec
				if float64(cost) > w.ceiling {
					break
				}
				w.advanceEnd()
			}

			// an empty view or an unreached start adds no edge
			if w.end == i || minCost[i] == math.MaxUint64 {
				continue
			}

			b := w.maxUnit()
			cost := uint64(w.size())*uint64(b) + a.fixedCost //nolint: gosec
			transitions++

			if minCost[i]+cost < minCost[w.end] {
				minCost[w.end] = minCost[i] + cost
				path[w.end] = i
				widths[w.end] = b
			}
		}

		for _, w := range windows {
			w.advanceStart()
		}
	}

	p := buildPartition(path, widths, n, minCost[n])
	if a.observer != nil {
		a.observer(Stats{
			Positions:   n,
			Windows:     len(windows),
			Transitions: transitions,
			Blocks:      p.Blocks(),
			Cost:        p.Cost,
		})
	}

	return p, nil
}
