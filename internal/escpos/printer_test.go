package escpos_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"receiptomatic/internal/domain"
	"receiptomatic/internal/escpos"
)

// fakePort is an in-memory stand-in for the serial device.
type fakePort struct {
	bytes.Buffer
	closed int
}

func (f *fakePort) Read(p []byte) (int, error) { return 0, io.EOF }

func (f *fakePort) Close() error {
	f.closed++
	return nil
}

func openFake(port *fakePort) escpos.PortOpener {
	return func(device string) (io.ReadWriteCloser, error) {
		return port, nil
	}
}

func openedPrinter(t *testing.T) (*escpos.Printer, *fakePort) {
	t.Helper()
	port := &fakePort{}
	p := escpos.NewWithOpener("/dev/test", openFake(port))
	if err := p.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	port.Reset() // drop the init sequence; tests assert per-command bytes
	return p, port
}

func TestPrinter_Open_SendsInit(t *testing.T) {
	port := &fakePort{}
	p := escpos.NewWithOpener("/dev/test", openFake(port))

	if err := p.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got, want := port.Bytes(), []byte{0x1B, '@'}; !bytes.Equal(got, want) {
		t.Errorf("init bytes = % X, want % X", got, want)
	}
	if err := p.Open(); err == nil {
		t.Error("second Open succeeded, want error")
	}
}

func TestPrinter_Open_DialFailure(t *testing.T) {
	dialErr := errors.New("no such device")
	p := escpos.NewWithOpener("/dev/missing", func(string) (io.ReadWriteCloser, error) {
		return nil, dialErr
	})

	if err := p.Open(); !errors.Is(err, dialErr) {
		t.Fatalf("Open error = %v, want wrapped dial error", err)
	}
	if err := p.Text("x"); !errors.Is(err, escpos.ErrNotOpen) {
		t.Errorf("Text after failed Open = %v, want ErrNotOpen", err)
	}
}

func TestPrinter_RequiresOpen(t *testing.T) {
	p := escpos.New("/dev/test")
	if err := p.Text("hello"); !errors.Is(err, escpos.ErrNotOpen) {
		t.Errorf("Text = %v, want ErrNotOpen", err)
	}
	if err := p.Cut(); !errors.Is(err, escpos.ErrNotOpen) {
		t.Errorf("Cut = %v, want ErrNotOpen", err)
	}
}

func TestPrinter_SetStyle(t *testing.T) {
	cases := []struct {
		name    string
		align   domain.Alignment
		doubled bool
		want    []byte
	}{
		{"left normal", domain.AlignLeft, false, []byte{0x1B, 'a', 0, 0x1D, '!', 0x00}},
		{"center normal", domain.AlignCenter, false, []byte{0x1B, 'a', 1, 0x1D, '!', 0x00}},
		{"left doubled", domain.AlignLeft, true, []byte{0x1B, 'a', 0, 0x1D, '!', 0x11}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, port := openedPrinter(t)
			if err := p.SetStyle(c.align, c.doubled); err != nil {
				t.Fatalf("SetStyle: %v", err)
			}
			if got := port.Bytes(); !bytes.Equal(got, c.want) {
				t.Errorf("bytes = % X, want % X", got, c.want)
			}
		})
	}
}

func TestPrinter_TextWritesVerbatim(t *testing.T) {
	p, port := openedPrinter(t)
	if err := p.Text("Cost:   $1.10\n"); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got := port.String(); got != "Cost:   $1.10\n" {
		t.Errorf("bytes = %q", got)
	}
}

func TestPrinter_Cut_FeedsThenCuts(t *testing.T) {
	p, port := openedPrinter(t)
	if err := p.Cut(); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	want := []byte{0x1B, 'd', 4, 0x1D, 'V', 0x00}
	if got := port.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("bytes = % X, want % X", got, want)
	}
}

func TestPrinter_Close_ReleasesPort(t *testing.T) {
	p, port := openedPrinter(t)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if port.closed != 1 {
		t.Errorf("port closed %d times, want 1", port.closed)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if port.closed != 1 {
		t.Errorf("close of a closed printer touched the port")
	}
	if err := p.Open(); err != nil {
		t.Errorf("reopen after Close: %v", err)
	}
}

// writeLogo writes a 3x2 test image: row 0 is ink, transparent, ink;
// row 1 is paper, ink, paper.
func writeLogo(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{A: 0xFF})
	img.Set(1, 0, color.RGBA{})
	img.Set(2, 0, color.RGBA{A: 0xFF})
	img.Set(0, 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	img.Set(1, 1, color.RGBA{A: 0xFF})
	img.Set(2, 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create logo: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode logo: %v", err)
	}
	return path
}

func TestPrinter_Image_EmitsRaster(t *testing.T) {
	p, port := openedPrinter(t)

	if err := p.Image(writeLogo(t)); err != nil {
		t.Fatalf("Image: %v", err)
	}
	want := []byte{
		0x1D, 'v', '0', 0x00, // raster command, normal density
		0x01, 0x00, // 1 byte per row
		0x02, 0x00, // 2 rows
		0xA0, // row 0: pixels 0 and 2 inked
		0x40, // row 1: pixel 1 inked
	}
	if got := port.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("bytes = % X, want % X", got, want)
	}
}

func TestPrinter_Image_MissingFile(t *testing.T) {
	p, _ := openedPrinter(t)
	if err := p.Image(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("Image succeeded for a missing file")
	}
}
