package physics

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec3
}

// Overlaps reports whether the two boxes intersect. The test compares the
// min/max intervals on each axis, so it is symmetric by construction:
// Overlaps(a, b) == Overlaps(b, a) for any pair of boxes.
func Overlaps(a, b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Intersects reports whether the bounding boxes of two transforms overlap.
func Intersects(a, b *Transform) bool {
	return Overlaps(a.AABB(), b.AABB())
}
