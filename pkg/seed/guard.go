package seed

import "github.com/flowboardhq/flowboard/pkg/scene"

// Seed marker: a single metadata key/value stamped into every descriptor
// the layout generator emits. Its presence on any existing shape is the
// sole idempotency signal - it is never removed or updated, and no other
// descriptor in the system may carry it.
const (
	// Tag is the metadata key for the seed marker.
	Tag = "seedTag"

	// TagValue is the sentinel value identifying the onboarding layout.
	TagValue = "flowboard-onboarding"
)

// AlreadySeeded reports whether any shape in the snapshot carries the seed
// marker. Shapes without a metadata map are treated as not seeded.
// The scan has no side effects.
func AlreadySeeded(shapes []scene.Shape) bool {
	for _, s := range shapes {
		if s.MetaValue(Tag) == TagValue {
			return true
		}
	}
	return false
}
