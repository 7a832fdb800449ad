package arena

// SizeInUse returns the number of bytes currently handed out, including
// internal fragmentation due to alignment padding.
func (a *Arena) SizeInUse() int {
	return a.cursor
}

// Capacity returns the size of the backing block in bytes. The block
// itself may not be allocated yet.
func (a *Arena) Capacity() int {
	return a.capacity
}

// Remaining returns the bytes still available before exhaustion.
func (a *Arena) Remaining() int {
	return a.capacity - a.cursor
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.cursor) / float64(a.capacity)
}

// Metrics is a point-in-time snapshot of arena statistics.
type Metrics struct {
	SizeInUse   int
	Capacity    int
	Remaining   int
	Utilization float64
}

func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
	}
}
