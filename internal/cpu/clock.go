package cpu

// Clock accumulates elapsed machine cycles. It only ever moves forward;
// there is no way to rewind or reset it other than creating a new CPU.
type Clock struct {
	m uint64
	t uint64
}

// tick commits n M-cycles. Each M-cycle is 4 T-cycles.
func (c *Clock) tick(n uint8) {
	c.m += uint64(n)
	c.t += uint64(n) * 4
}

// M returns the elapsed M-cycles.
func (c Clock) M() uint64 {
	return c.m
}

// T returns the elapsed T-cycles (clock ticks).
func (c Clock) T() uint64 {
	return c.t
}
