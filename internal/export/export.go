// Package export implements the screenshot download: the camera is reset right away and
// the viewport is captured once a fixed delay has passed, so the reset has been drawn
// before the pixels are read back.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/hack-pad/hackpadfs"
	"github.com/sirupsen/logrus"
)

const (
	// FileName is the name of every exported image.
	FileName = "screenshot.png"
	// DefaultDelay lets the camera reset settle across rendered frames before capture.
	DefaultDelay = 1500 * time.Millisecond
)

// ErrNoImage is returned when the capturer has nothing to read back.
var ErrNoImage = errors.New("no image captured")

// Capturer reads the current viewport pixels.
type Capturer interface {
	Capture() (image.Image, error)
}

// CameraResetter puts the camera back to its initial orientation.
type CameraResetter interface {
	Reset()
}

// Result describes one finished export.
type Result struct {
	Path string
	Err  error
}

// Exporter schedules captures. It is polled from the frame loop; nothing blocks, and a
// triggered export cannot be cancelled.
type Exporter struct {
	camera  CameraResetter
	capture Capturer
	fs      hackpadfs.FS
	dir     string
	delay   time.Duration
	log     *logrus.Entry

	pending []time.Time
}

// Options configure an Exporter. Dir is a path inside FS using forward slashes and no
// leading slash, as hackpadfs expects.
type Options struct {
	FS    hackpadfs.FS
	Dir   string
	Delay time.Duration
}

// New returns an exporter writing into opts.Dir on opts.FS.
func New(camera CameraResetter, capture Capturer, opts Options, log *logrus.Entry) *Exporter {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &Exporter{
		camera:  camera,
		capture: capture,
		fs:      opts.FS,
		dir:     opts.Dir,
		delay:   opts.Delay,
		log:     log,
	}
}

// Trigger resets the camera and schedules a capture at now + delay.
func (e *Exporter) Trigger(now time.Time) {
	e.camera.Reset()
	due := now.Add(e.delay)
	e.pending = append(e.pending, due)
	e.log.WithField("due", due.Format(time.StampMilli)).Info("export scheduled")
}

// Pending returns how many captures are waiting.
func (e *Exporter) Pending() int {
	return len(e.pending)
}

// Poll captures and writes every export whose delay has elapsed by now.
func (e *Exporter) Poll(now time.Time) []Result {
	var results []Result
	kept := e.pending[:0]
	for _, due := range e.pending {
		if now.Before(due) {
			kept = append(kept, due)
			continue
		}
		p, err := e.save()
		if err != nil {
			e.log.WithError(err).Error("export failed")
		} else {
			e.log.WithField("path", p).Info("screenshot saved")
		}
		results = append(results, Result{Path: p, Err: err})
	}
	e.pending = kept
	return results
}

// Path returns where screenshots are written inside the filesystem.
func (e *Exporter) Path() string {
	return path.Join(e.dir, FileName)
}

func (e *Exporter) save() (string, error) {
	img, err := e.capture.Capture()
	if err != nil {
		return "", fmt.Errorf("export: capture: %w", err)
	}
	if img == nil || img.Bounds().Empty() {
		return "", fmt.Errorf("export: %w", ErrNoImage)
	}
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return "", fmt.Errorf("export: encode: %w", err)
	}
	if e.dir != "." {
		if err := hackpadfs.MkdirAll(e.fs, e.dir, 0o755); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
	}
	p := e.Path()
	if err := hackpadfs.WriteFullFile(e.fs, p, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", p, err)
	}
	return p, nil
}
