package panel

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"envpanel/types"
)

// recDisplay records every call as a short op string.
type recDisplay struct {
	mu      sync.Mutex
	width   int
	ops     []string
	flushes int
	failErr error

	// failAt is the 1-based flush number that fails; 0 never fails.
	failAt int
	// onFlush runs on every flush attempt, e.g. to model render time.
	onFlush func()
}

func newRecDisplay() *recDisplay { return &recDisplay{width: 128} }

func (d *recDisplay) Width() int { return d.width }
func (d *recDisplay) Clear()     { d.rec("clear") }
func (d *recDisplay) DrawText(row int, text string) {
	d.rec("text:" + strconv.Itoa(row) + ":" + text)
}
func (d *recDisplay) DrawMarker(x, y, size int) {
	d.rec("marker:" + strconv.Itoa(x) + "," + strconv.Itoa(y) + "," + strconv.Itoa(size))
}

func (d *recDisplay) Flush() error {
	if d.onFlush != nil {
		d.onFlush()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flushes++
	d.ops = append(d.ops, "flush")
	if d.failAt != 0 && d.flushes == d.failAt {
		return d.failErr
	}
	return nil
}

func (d *recDisplay) rec(op string) {
	d.mu.Lock()
	d.ops = append(d.ops, op)
	d.mu.Unlock()
}

func (d *recDisplay) Ops() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.ops...)
}

// markers returns the x of every marker drawn, in order.
func (d *recDisplay) markers() []int {
	var xs []int
	for _, op := range d.Ops() {
		if rest, ok := strings.CutPrefix(op, "marker:"); ok {
			x, _ := strconv.Atoi(rest[:strings.IndexByte(rest, ',')])
			xs = append(xs, x)
		}
	}
	return xs
}

func (d *recDisplay) has(op string) bool {
	for _, o := range d.Ops() {
		if o == op {
			return true
		}
	}
	return false
}

type sensorResult struct {
	r   types.Reading
	err error
}

// scriptSensor replays results in order, then repeats the last one.
type scriptSensor struct {
	mu      sync.Mutex
	results []sensorResult
	calls   int
	onRead  func(call int)
}

func (s *scriptSensor) ReadOnce() (types.Reading, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	res := s.results[len(s.results)-1]
	if n <= len(s.results) {
		res = s.results[n-1]
	}
	hook := s.onRead
	s.mu.Unlock()
	if hook != nil {
		hook(n)
	}
	return res.r, res.err
}

var errChecksum = errors.New("checksum mismatch")
