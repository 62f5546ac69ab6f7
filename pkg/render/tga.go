package render

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrBadImage is returned when a TGA stream is truncated or uses an
// unsupported layout.
var ErrBadImage = errors.New("bad tga image")

// TGA image type codes.
const (
	tgaTrueColor    = 2
	tgaGrayscale    = 3
	tgaTrueColorRLE = 10
	tgaGrayscaleRLE = 11
)

// Image descriptor bits.
const (
	tgaRightToLeft = 0x10
	tgaTopToBottom = 0x20
)

const tgaMaxPacket = 128

var tgaFooterSignature = []byte("TRUEVISION-XFILE.\x00")

// tgaHeader is the 18-byte little-endian TGA file header.
type tgaHeader struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapOrigin  uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	BitsPerPixel    uint8
	ImageDescriptor uint8
}

// EncodeTGA writes s to w as a TGA image, RLE compressed when rle is set.
// Pixels are stored B,G,R(,A) on disk with a top-left origin.
func EncodeTGA(w io.Writer, s *Surface, rle bool) error {
	if s.width > 0xFFFF || s.height > 0xFFFF {
		return fmt.Errorf("encode tga: %dx%d exceeds 65535", s.width, s.height)
	}
	h := tgaHeader{
		Width:           uint16(s.width),
		Height:          uint16(s.height),
		BitsPerPixel:    uint8(s.format) * 8,
		ImageDescriptor: tgaTopToBottom,
	}
	switch s.format {
	case FormatGrayscale:
		h.ImageType = tgaGrayscale
	default:
		h.ImageType = tgaTrueColor
	}
	if s.format == FormatRGBA {
		h.ImageDescriptor |= 8
	}
	if rle {
		h.ImageType += 8
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("write tga header: %w", err)
	}

	disk := swapRB(s.data, int(s.format))
	var err error
	if rle {
		err = writeRLE(bw, disk, int(s.format))
	} else {
		_, err = bw.Write(disk)
	}
	if err != nil {
		return fmt.Errorf("write tga pixels: %w", err)
	}

	// Developer area offset and extension area offset, both absent.
	var footer [8]byte
	if _, err := bw.Write(footer[:]); err != nil {
		return fmt.Errorf("write tga footer: %w", err)
	}
	if _, err := bw.Write(tgaFooterSignature); err != nil {
		return fmt.Errorf("write tga footer: %w", err)
	}
	return bw.Flush()
}

// DecodeTGA reads a grayscale, RGB or RGBA TGA image, raw or RLE
// compressed. The result has row 0 at the top of the image.
func DecodeTGA(r io.Reader) (*Surface, error) {
	br := bufio.NewReader(r)
	var h tgaHeader
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrBadImage, err)
	}
	if h.ColorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped images are not supported", ErrBadImage)
	}

	format := Format(h.BitsPerPixel / 8)
	if h.BitsPerPixel%8 != 0 || !format.Valid() {
		return nil, fmt.Errorf("%w: unsupported depth %d", ErrBadImage, h.BitsPerPixel)
	}
	switch h.ImageType {
	case tgaGrayscale, tgaGrayscaleRLE:
		if format != FormatGrayscale {
			return nil, fmt.Errorf("%w: grayscale image with depth %d", ErrBadImage, h.BitsPerPixel)
		}
	case tgaTrueColor, tgaTrueColorRLE:
		// Any supported depth; 8 bits is read as grayscale.
	default:
		return nil, fmt.Errorf("%w: unsupported image type %d", ErrBadImage, h.ImageType)
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrBadImage, h.Width, h.Height)
	}
	if _, err := br.Discard(int(h.IDLength)); err != nil {
		return nil, fmt.Errorf("%w: read image id: %w", ErrBadImage, err)
	}

	s := NewSurface(int(h.Width), int(h.Height), format)
	var err error
	if h.ImageType == tgaTrueColorRLE || h.ImageType == tgaGrayscaleRLE {
		err = readRLE(br, s.data, int(format))
	} else {
		_, err = io.ReadFull(br, s.data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read pixels: %w", ErrBadImage, err)
	}
	s.data = swapRB(s.data, int(format))

	if h.ImageDescriptor&tgaTopToBottom == 0 {
		s.FlipVertically()
	}
	if h.ImageDescriptor&tgaRightToLeft != 0 {
		s.FlipHorizontally()
	}
	return s, nil
}

// WriteTGA writes s to path. A partially written file is removed on error.
func (s *Surface) WriteTGA(path string, rle bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return EncodeTGA(f, s, rle)
}

// ReadTGA loads a TGA file.
func ReadTGA(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeTGA(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}

// swapRB returns a copy of p with the first and third channel of every pixel
// exchanged. Grayscale data is copied unchanged.
func swapRB(p []byte, bpp int) []byte {
	out := bytes.Clone(p)
	if bpp < 3 {
		return out
	}
	for i := 0; i+2 < len(out); i += bpp {
		out[i], out[i+2] = out[i+2], out[i]
	}
	return out
}

// writeRLE emits run-length packets. A repeat packet covers 2..128 equal
// pixels; a raw packet covers 1..128 pixels and stops where a run begins.
func writeRLE(w io.Writer, p []byte, bpp int) error {
	n := len(p) / bpp
	px := func(i int) []byte { return p[i*bpp : (i+1)*bpp] }
	same := func(i, j int) bool { return bytes.Equal(px(i), px(j)) }

	for i := 0; i < n; {
		run := 1
		for i+run < n && run < tgaMaxPacket && same(i, i+run) {
			run++
		}
		if run > 1 {
			if _, err := w.Write([]byte{0x80 | byte(run-1)}); err != nil {
				return err
			}
			if _, err := w.Write(px(i)); err != nil {
				return err
			}
			i += run
			continue
		}

		raw := 1
		for i+raw < n && raw < tgaMaxPacket {
			if i+raw+1 < n && same(i+raw, i+raw+1) {
				break
			}
			raw++
		}
		if _, err := w.Write([]byte{byte(raw - 1)}); err != nil {
			return err
		}
		if _, err := w.Write(p[i*bpp : (i+raw)*bpp]); err != nil {
			return err
		}
		i += raw
	}
	return nil
}

// readRLE decodes packets into dst until it is full.
func readRLE(r *bufio.Reader, dst []byte, bpp int) error {
	total := len(dst) / bpp
	pixel := make([]byte, bpp)
	for cur := 0; cur < total; {
		head, err := r.ReadByte()
		if err != nil {
			return err
		}
		count := int(head&0x7F) + 1
		if cur+count > total {
			return fmt.Errorf("packet of %d pixels overruns image at pixel %d", count, cur)
		}
		if head&0x80 != 0 {
			if _, err := io.ReadFull(r, pixel); err != nil {
				return err
			}
			for range count {
				copy(dst[cur*bpp:], pixel)
				cur++
			}
			continue
		}
		if _, err := io.ReadFull(r, dst[cur*bpp:(cur+count)*bpp]); err != nil {
			return err
		}
		cur += count
	}
	return nil
}
