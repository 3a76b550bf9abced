// Package platform brings up the panel a setup describes on the current
// target. Each provider lives behind build tags; machine imports never
// leak into host builds.
//
// The providers stop at handing the external display library an
// initialized bus and control pins. Command sequencing, rendering and
// font rasterization are that library's job.
package platform

// Panel is the minimal handle Attach returns. What hangs off it is
// provider-specific; see the build-tagged files.
type Panel interface {
	// Size is the logical panel size in pixels.
	Size() (w, h int16)
	// Close releases bus resources and drops the backlight if this
	// setup software-controls one.
	Close() error
}
