package composer

// Region is anything the pointer can be over. Contains must report true for
// the region itself and for every region nested inside it.
type Region interface {
	Contains(other Region) bool
}

// DragTracker derives the "drag active" flag from enter/leave pairs.
//
// Nested regions fire their own enter/leave events as the pointer moves
// between children; the flag only drops when the pointer leaves the drop zone
// entirely, i.e. when the related target (the region being entered) is not
// inside the zone.
type DragTracker struct {
	zone   Region
	active bool
}

// SetZone sets the outer drop zone.
func (d *DragTracker) SetZone(zone Region) {
	d.zone = zone
}

// Enter marks the drag active. target is the region the pointer entered; it is
// ignored when it lies outside the zone.
func (d *DragTracker) Enter(target Region) bool {
	if d.zone != nil && target != nil && !d.zone.Contains(target) {
		return false
	}
	if d.active {
		return false
	}
	d.active = true
	return true
}

// Leave handles the pointer leaving some region for related (nil when the
// pointer left the window). Returns true if the flag changed.
func (d *DragTracker) Leave(related Region) bool {
	if !d.active {
		return false
	}
	if related != nil && d.zone != nil && d.zone.Contains(related) {
		return false
	}
	d.active = false
	return true
}

// Clear drops the flag unconditionally (drop, cancel). Returns true if the
// flag changed.
func (d *DragTracker) Clear() bool {
	changed := d.active
	d.active = false
	return changed
}

// Active reports whether a drag is over the zone.
func (d *DragTracker) Active() bool {
	return d.active
}
