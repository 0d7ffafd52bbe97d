package resource

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

var (
	// ErrOutOfBounds is returned when a write would cross the end of a buffer's storage.
	ErrOutOfBounds = errors.New("range out of bounds")

	// ErrReleased is returned when an operation targets a released resource.
	ErrReleased = errors.New("resource released")

	// ErrAlreadyMapped is returned by Map on a buffer that is still mapped.
	ErrAlreadyMapped = errors.New("buffer already mapped")

	// ErrNotMapped is returned by Unmap on a buffer that is not mapped.
	ErrNotMapped = errors.New("buffer not mapped")

	// ErrMapFailed is returned when the device refuses a mapping.
	ErrMapFailed = errors.New("buffer map failed")

	// ErrEmptyLayout is returned when a layout is built without attributes.
	ErrEmptyLayout = errors.New("attribute layout has no attributes")

	// ErrNoLayout is returned when a vertex buffer is used before its layout is set.
	ErrNoLayout = errors.New("vertex buffer has no attribute layout")

	// ErrNoAttachment is returned when querying a render target slot that was never attached.
	ErrNoAttachment = errors.New("no attachment at slot")

	// ErrIncomplete is matched by every *IncompleteError.
	ErrIncomplete = errors.New("render target incomplete")
)

// IncompleteError describes why a render target failed its completeness check.
type IncompleteError struct {
	// Missing lists the required attachment kinds that no attachment provides.
	Missing []device.AttachmentKind
	// Mismatched lists slots holding a surface whose format does not fit the slot.
	Mismatched []device.AttachmentSlot
	// Status is the device verdict for the framebuffer.
	Status device.FramebufferStatus
}

func (e *IncompleteError) Error() string {
	parts := make([]string, 0, 3)
	if len(e.Missing) > 0 {
		kinds := make([]string, len(e.Missing))
		for i, k := range e.Missing {
			kinds[i] = k.String()
		}
		parts = append(parts, "missing "+strings.Join(kinds, ", "))
	}
	if len(e.Mismatched) > 0 {
		slots := make([]string, len(e.Mismatched))
		for i, s := range e.Mismatched {
			slots[i] = s.String()
		}
		parts = append(parts, "format mismatch at "+strings.Join(slots, ", "))
	}
	if e.Status != device.FramebufferComplete {
		parts = append(parts, "device status "+e.Status.String())
	}
	return fmt.Sprintf("%s: %s", ErrIncomplete, strings.Join(parts, "; "))
}

// Is reports ErrIncomplete as a match so callers can use errors.Is.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}
