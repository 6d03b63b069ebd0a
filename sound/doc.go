// Package sound plays a short click when the player box hits something.
//
// Audio is optional. Open initializes the speaker; when it fails (no audio
// device, headless CI) the cue stays silent and Hit becomes a no-op, so the
// sandbox never depends on audio being available.
package sound
