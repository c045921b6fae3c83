// Package systems holds the per-frame behaviours of the demo scenes. Each is
// a component attached to a scene's "Systems" object and reaches the rest of
// the scene through its WorldAccess, so a missing player, camera or window
// simply skips the frame.
package systems
