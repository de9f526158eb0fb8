package domain

import "time"

const (
	// CarouselStep is the scroll distance applied by the prev/next controls.
	CarouselStep = 300
	// CarouselEndTolerance absorbs sub-pixel rounding at the end of a track.
	CarouselEndTolerance = 10
	// CarouselSettleDelay is how long to wait after a content change before
	// recomputing control state, letting layout settle.
	CarouselSettleDelay = 100 * time.Millisecond
)

type CarouselFreshness string

const (
	CarouselFresh CarouselFreshness = "fresh"
	CarouselStale CarouselFreshness = "stale"
)

// CarouselState mirrors one horizontally scrollable track. Offset, extent
// and viewport are reported by the browser shim; control enablement is
// recomputed here after every report.
type CarouselState struct {
	Offset    float64
	Extent    float64
	Viewport  float64
	freshness CarouselFreshness
}

func NewCarouselState() *CarouselState {
	return &CarouselState{freshness: CarouselFresh}
}

func (c *CarouselState) maxScroll() float64 {
	max := c.Extent - c.Viewport
	if max < 0 {
		return 0
	}
	return max
}

// Sync records a layout report (scroll event or resize).
func (c *CarouselState) Sync(offset, extent, viewport float64) {
	if offset < 0 {
		offset = 0
	}
	c.Offset = offset
	c.Extent = extent
	c.Viewport = viewport
	if max := c.maxScroll(); c.Offset > max {
		c.Offset = max
	}
}

// CanPrev reports whether the previous control is enabled.
func (c *CarouselState) CanPrev() bool {
	return c.Offset > 0
}

// CanNext reports whether the next control is enabled. Within the end
// tolerance of the scrollable extent the control is disabled.
func (c *CarouselState) CanNext() bool {
	return c.Offset < c.maxScroll()-CarouselEndTolerance
}

// Next returns the target offset after a next-control activation.
func (c *CarouselState) Next() float64 {
	target := c.Offset + CarouselStep
	if max := c.maxScroll(); target > max {
		target = max
	}
	return target
}

// Prev returns the target offset after a previous-control activation.
func (c *CarouselState) Prev() float64 {
	target := c.Offset - CarouselStep
	if target < 0 {
		target = 0
	}
	return target
}

// MarkStale flags the track as needing a control recompute because its
// content set changed. Reports whether this call made it stale, so
// repeated content changes inside one settle window coalesce.
func (c *CarouselState) MarkStale() bool {
	if c.freshness == CarouselStale {
		return false
	}
	c.freshness = CarouselStale
	return true
}

// Refresh completes the stale -> fresh transition, reporting whether the
// track actually was stale.
func (c *CarouselState) Refresh() bool {
	if c.freshness != CarouselStale {
		return false
	}
	c.freshness = CarouselFresh
	return true
}

func (c *CarouselState) Freshness() CarouselFreshness { return c.freshness }
