package exam

// Countdown gates the one-second tick stream driving the quiz timer. Ticks
// are scheduled one ahead from the update loop and arrive tagged with the
// epoch they were armed under; a tick whose epoch no longer matches is stale
// (the quiz it belonged to has ended or restarted) and must be dropped
// instead of decrementing a timer it no longer owns.
type Countdown struct {
	epoch int
	armed bool
}

// Arm starts a new tick stream and returns its epoch. Any tick still in
// flight from a previous stream becomes stale.
func (c *Countdown) Arm() int {
	c.epoch++
	c.armed = true
	return c.epoch
}

// Cancel stops the stream. In-flight ticks with the old epoch are rejected
// by Accepts.
func (c *Countdown) Cancel() {
	c.epoch++
	c.armed = false
}

// Epoch returns the current epoch, used to tag the next scheduled tick.
func (c *Countdown) Epoch() int { return c.epoch }

// Accepts reports whether a tick tagged with epoch belongs to the live
// stream.
func (c *Countdown) Accepts(epoch int) bool {
	return c.armed && epoch == c.epoch
}
