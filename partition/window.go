package partition

// costWindow is a view [start, end) over a cost-unit sequence with a cost ceiling.
//
// The running maximum is kept in a monotone deque of indices whose units are strictly
// decreasing from head to tail, so both ends can move in amortized O(1) and maxUnit is
// always the exact maximum of the current view.
type costWindow struct {
	units   []uint32
	ceiling float64
	start   int
	end     int
	deque   []int
	head    int
}

func newCostWindow(units []uint32, ceiling float64) *costWindow {
	return &costWindow{
		units:   units,
		ceiling: ceiling,
		deque:   make([]int, 0, 16),
	}
}

func (w *costWindow) size() int {
	return w.end - w.start
}

func (w *costWindow) maxUnit() uint32 {
	if w.head == len(w.deque) {
		return 0
	}

	return w.units[w.deque[w.head]]
}

// extendedMax returns the view maximum after a hypothetical advanceEnd.
func (w *costWindow) extendedMax() uint32 {
	return max(w.maxUnit(), w.units[w.end])
}

func (w *costWindow) advanceEnd() {
	v := w.units[w.end]
	for len(w.deque) > w.head && w.units[w.deque[len(w.deque)-1]] <= v {
		w.deque = w.deque[:len(w.deque)-1]
	}
	w.deque = append(w.deque, w.end)
	w.end++
}

// advanceStart drops the first unit of the view. An empty view moves as a whole.
func (w *costWindow) advanceStart() {
	if w.end == w.start {
		w.start++
		w.end++

		return
	}

	if w.head < len(w.deque) && w.deque[w.head] == w.start {
		w.head++
	}
	w.start++

	if w.head >= 64 && 2*w.head >= len(w.deque) {
		n := copy(w.deque, w.deque[w.head:])
		w.deque = w.deque[:n]
		w.head = 0
	}
}
