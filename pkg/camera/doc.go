// Package camera groups the frame sources a capture session can read from.
//
// Provided cameras:
//   - pushcam: frames pushed by a client (a browser page POSTing camera frames).
//   - dircam: frames played back from image files in a directory.
package camera
