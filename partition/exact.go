package partition

import (
	"fmt"
	"slices"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/internal/options"
	"github.com/arloliu/intpack/internal/pool"
)

// Exact is the shortest-path partitioner over a fixed menu of block lengths.
//
// Blocks that contain a non-zero value take their length from lens. Runs of zeros take
// their length from zlens when it is configured, and from lens otherwise. Among
// equal-cost layouts the one found last wins: the scan for position i walks candidate
// starts from i-1 downward and replaces on ties, so the longer final block is kept.
type Exact struct {
	lens        []int
	zlens       []int
	maxBlockLen int
	fixedCost   uint64
	aligned     bool
	observer    Observer
}

var _ Partitioner = (*Exact)(nil)

// ExactOption configures an Exact partitioner.
type ExactOption = options.Option[*Exact]

// WithAligned charges each block ceil(K*B/32) words instead of K*B bits.
func WithAligned() ExactOption {
	return options.NoError(func(e *Exact) {
		e.aligned = true
	})
}

// WithExactFixedCost sets the per-block overhead added to every candidate block.
func WithExactFixedCost(cost uint64) ExactOption {
	return options.NoError(func(e *Exact) {
		e.fixedCost = cost
	})
}

// WithExactObserver registers a callback that receives Stats after each call.
func WithExactObserver(fn Observer) ExactOption {
	return options.NoError(func(e *Exact) {
		e.observer = fn
	})
}

// NewExact creates an exact partitioner.
//
// Parameters:
//   - lens: allowed block lengths, strictly increasing and starting at 1
//   - zlens: allowed lengths for all-zero runs, same rules, or nil to use lens for them
//   - opts: optional configuration
//
// Returns an error wrapping errs.ErrInvalidArgument when a menu is malformed.
func NewExact(lens, zlens []int, opts ...ExactOption) (*Exact, error) {
	if err := validateMenu("lens", lens); err != nil {
		return nil, err
	}
	if zlens != nil {
		if err := validateMenu("zlens", zlens); err != nil {
			return nil, err
		}
	}

	e := &Exact{
		lens:  slices.Clone(lens),
		zlens: slices.Clone(zlens),
	}
	e.maxBlockLen = lens[len(lens)-1]
	if len(zlens) > 0 {
		e.maxBlockLen = max(e.maxBlockLen, zlens[len(zlens)-1])
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

func validateMenu(name string, menu []int) error {
	if len(menu) == 0 || menu[0] != 1 {
		return fmt.Errorf("%w: %s must start at 1", errs.ErrInvalidArgument, name)
	}

	for i := 1; i < len(menu); i++ {
		if menu[i] <= menu[i-1] {
			return fmt.Errorf("%w: %s must be strictly increasing", errs.ErrInvalidArgument, name)
		}
	}

	return nil
}

// MaxBlockLen returns the longest block the menus allow.
func (e *Exact) MaxBlockLen() int {
	return e.maxBlockLen
}

func (e *Exact) blockCost(k int, b uint32) uint64 {
	payload := uint64(k) * uint64(b) //nolint: gosec
	if e.aligned {
		payload = (payload + 31) / 32
	}

	return payload + e.fixedCost
}

// Partition implements Partitioner.
func (e *Exact) Partition(values []uint32) (Partition, error) {
	n := len(values)
	if n == 0 {
		return Partition{}, fmt.Errorf("%w: empty sequence", errs.ErrInvalidArgument)
	}

	units, releaseUnits := pool.GetUint32Slice(n)
	defer releaseUnits()
	costUnits(units, values)

	costs, releaseCost := pool.GetUint64Slice(n + 1)
	defer releaseCost()
	path, releasePath := pool.GetIntSlice(n + 1)
	defer releasePath()
	widths, releaseWidths := pool.GetUint32Slice(n + 1)
	defer releaseWidths()

	var transitions uint64
	for i := 1; i <= n; i++ {
		mleft := max(0, i-e.maxBlockLen)
		found := false
		var maxB uint32
		l, g := 0, 0

		for j := i - 1; j >= mleft; j-- {
			maxB = max(maxB, units[j])
			k := i - j

			if e.zlens == nil || maxB != 0 {
				if l >= len(e.lens) {
					break
				}
				if k != e.lens[l] {
					continue
				}
				l++
			} else {
				if l < len(e.lens) && k == e.lens[l] {
					l++
				}
				if g >= len(e.zlens) || k != e.zlens[g] {
					continue
				}
				g++
			}

			transitions++
			ccost := costs[j] + e.blockCost(k, maxB)
			if !found || ccost <= costs[i] {
				costs[i] = ccost
				path[i] = j
				widths[i] = maxB
				found = true
			}
		}
	}

	p := buildPartition(path, widths, n, costs[n])
	if e.observer != nil {
		e.observer(Stats{
			Positions:   n,
			Transitions: transitions,
			Blocks:      p.Blocks(),
			Cost:        p.Cost,
		})
	}

	return p, nil
}
