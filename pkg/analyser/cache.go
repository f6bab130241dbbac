package analyser

type cacheState uint8

const (
	uncomputed cacheState = iota
	absent
	present
)

// cached holds one memoised result. It moves out of the uncomputed state at
// most once and is never reset.
type cached[T any] struct {
	state cacheState
	value T
}

// peek returns the stored value without computing it. resolved is false
// while the cache is still uncomputed.
func (c *cached[T]) peek() (value T, ok, resolved bool) {
	return c.value, c.state == present, c.state != uncomputed
}

// get returns the stored value, running compute on the first call only.
// compute reports ok == false for a valid but absent result.
func (c *cached[T]) get(compute func() (T, bool)) (T, bool) {
	if c.state == uncomputed {
		value, ok := compute()
		if ok {
			c.value, c.state = value, present
		} else {
			c.state = absent
		}
	}
	return c.value, c.state == present
}
