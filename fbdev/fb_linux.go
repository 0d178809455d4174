package fbdev

import (
	"fmt"
	"image"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/mjl-/glide"
)

const (
	fbiogetVScreeninfo = 0x4600
	fbiogetFScreeninfo = 0x4602
)

type fbBitfield struct {
	Offset, Length, MsbRight uint32
}

// fb_var_screeninfo
type varScreeninfo struct {
	Xres, Yres, XresVirtual, YresVirtual, Xoffset, Yoffset uint32
	BitsPerPixel, Grayscale                                uint32
	Red, Green, Blue, Transp                               fbBitfield
	Nonstd, Activate, Height, Width, AccelFlags            uint32
	Pixclock, LeftMargin, RightMargin, UpperMargin         uint32
	LowerMargin, HsyncLen, VsyncLen, Sync, Vmode           uint32
	Rotate, Colorspace                                     uint32
	Reserved                                               [4]uint32
}

// fb_fix_screeninfo
type fixScreeninfo struct {
	ID                            [16]byte
	SmemStart                     uintptr
	SmemLen, Type, TypeAux        uint32
	Visual                        uint32
	XPanStep, YPanStep, YWrapStep uint16
	LineLength                    uint32
	MmioStart                     uintptr
	MmioLen, Accel                uint32
	Capabilities                  uint16
	Reserved                      [2]uint16
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Framebuffer is a memory mapped /dev/fb device, implementing glide.Display.
type Framebuffer struct {
	f      *os.File
	mem    []byte
	size   image.Point
	stride int
	format PixelFormat
}

var _ glide.Display = &Framebuffer{}

// Open maps the framebuffer device at path, e.g. /dev/fb0.
func Open(path string) (*Framebuffer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	fd := int(f.Fd())
	var vinfo varScreeninfo
	if err := ioctl(fd, fbiogetVScreeninfo, unsafe.Pointer(&vinfo)); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: get variable screen info: %w", path, err)
	}
	var finfo fixScreeninfo
	if err := ioctl(fd, fbiogetFScreeninfo, unsafe.Pointer(&finfo)); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: get fixed screen info: %w", path, err)
	}
	format := PixelFormat{
		BitsPerPixel: int(vinfo.BitsPerPixel),
		Red:          Bitfield{vinfo.Red.Offset, vinfo.Red.Length},
		Green:        Bitfield{vinfo.Green.Offset, vinfo.Green.Length},
		Blue:         Bitfield{vinfo.Blue.Offset, vinfo.Blue.Length},
	}
	if err := format.check(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	mem, err := unix.Mmap(fd, 0, int(finfo.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: mmap: %w", path, err)
	}
	fb := &Framebuffer{
		f:      f,
		mem:    mem,
		size:   image.Pt(int(vinfo.Xres), int(vinfo.Yres)),
		stride: int(finfo.LineLength),
		format: format,
	}
	return fb, nil
}

func (fb *Framebuffer) Size() image.Point {
	return fb.size
}

func (fb *Framebuffer) Format() PixelFormat {
	return fb.format
}

func (fb *Framebuffer) Flush(img *image.RGBA, r image.Rectangle) error {
	fb.format.Convert(fb.mem, fb.stride, img, r.Intersect(rect(fb.size)))
	return nil
}

func (fb *Framebuffer) Close() error {
	err := unix.Munmap(fb.mem)
	if xerr := fb.f.Close(); err == nil {
		err = xerr
	}
	return err
}

func rect(size image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, size}
}
