package fbdev

import (
	"fmt"
	"image"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/mjl-/glide"
)

// struct input_absinfo
type absInfo struct {
	Value, Minimum, Maximum, Fuzz, Flat, Resolution int32
}

// eviocgabs is EVIOCGABS(abs), _IOR('E', 0x40+abs, struct input_absinfo).
func eviocgabs(abs uintptr) uintptr {
	return 2<<30 | unsafe.Sizeof(absInfo{})<<16 | 'E'<<8 | (0x40 + abs)
}

func axis(fd int, codes ...uintptr) (Axis, error) {
	var err error
	for _, c := range codes {
		var ai absInfo
		if err = ioctl(fd, eviocgabs(c), unsafe.Pointer(&ai)); err == nil && ai.Maximum > ai.Minimum {
			return Axis{ai.Minimum, ai.Maximum}, nil
		}
	}
	if err == nil {
		err = fmt.Errorf("no range")
	}
	return Axis{}, err
}

// Touchscreen reads an evdev device, e.g. /dev/input/event0.
type Touchscreen struct {
	f   *os.File
	dec Decoder
}

// OpenTouch opens the evdev device at path, scaling its coordinates to a screen of size.
func OpenTouch(path string, screen image.Point) (*Touchscreen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fd := int(f.Fd())
	x, err := axis(fd, absMTPositionX, absX)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: x axis: %w", path, err)
	}
	y, err := axis(fd, absMTPositionY, absY)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: y axis: %w", path, err)
	}
	ts := &Touchscreen{
		f:   f,
		dec: Decoder{X: x, Y: y, Screen: screen},
	}
	return ts, nil
}

// Start reads events and sends touches to inputs until the device fails or is closed.
// A read error is sent as InputError.
func (ts *Touchscreen) Start(inputs chan<- glide.Input) {
	tvSize := int(unsafe.Sizeof(unix.Timeval{}))
	size := tvSize + 8
	go func() {
		buf := make([]byte, 64*size)
		for {
			n, err := ts.f.Read(buf)
			if err != nil {
				inputs <- glide.Input{Type: glide.InputError, Error: fmt.Errorf("reading touchscreen: %w", err)}
				return
			}
			for o := 0; o+size <= n; o += size {
				e, err := ParseEvent(buf[o:o+size], tvSize)
				if err != nil {
					continue
				}
				if t, ok := ts.dec.Event(e); ok {
					inputs <- glide.Input{Type: glide.InputTouch, Touch: t}
				}
			}
		}
	}()
}

func (ts *Touchscreen) Close() error {
	return ts.f.Close()
}
