package escpos

import (
	"errors"
	"fmt"
	"io"

	"go.bug.st/serial"

	"receiptomatic/internal/domain"
)

const (
	esc = 0x1B
	gs  = 0x1D
)

// feedLines is how far the paper advances before the cut so the last printed
// line clears the blade.
const feedLines = 4

// ErrNotOpen is returned when a print method is called before Open.
var ErrNotOpen = errors.New("escpos: printer not open")

// PortOpener dials the printer device. Production uses the serial opener
// below; tests substitute an in-memory port.
type PortOpener func(device string) (io.ReadWriteCloser, error)

// Printer writes ESC/POS commands to a serial receipt printer. It holds the
// port only between Open and Close; the dispatcher cycles it per job.
type Printer struct {
	device string
	open   PortOpener
	port   io.ReadWriteCloser
}

var _ domain.Sink = (*Printer)(nil)

// New returns a Printer for the serial device at the given path.
func New(device string) *Printer {
	return &Printer{device: device, open: openSerialPort}
}

// NewWithOpener returns a Printer dialing through open instead of the
// serial line.
func NewWithOpener(device string, open PortOpener) *Printer {
	return &Printer{device: device, open: open}
}

// openSerialPort opens the device at the printer's fixed line settings,
// 9600 baud 8N1.
func openSerialPort(device string) (io.ReadWriteCloser, error) {
	mode := &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	return serial.Open(device, mode)
}

// Open dials the device and initialises the printer.
func (p *Printer) Open() error {
	if p.port != nil {
		return errors.New("escpos: printer already open")
	}
	port, err := p.open(p.device)
	if err != nil {
		return fmt.Errorf("open %s: %w", p.device, err)
	}
	if _, err := port.Write([]byte{esc, '@'}); err != nil {
		port.Close()
		return fmt.Errorf("initialise printer: %w", err)
	}
	p.port = port
	return nil
}

// Close releases the device. Closing an unopened printer is a no-op.
func (p *Printer) Close() error {
	if p.port == nil {
		return nil
	}
	err := p.port.Close()
	p.port = nil
	if err != nil {
		return fmt.Errorf("close %s: %w", p.device, err)
	}
	return nil
}

func (p *Printer) raw(b []byte) error {
	if p.port == nil {
		return ErrNotOpen
	}
	if _, err := p.port.Write(b); err != nil {
		return fmt.Errorf("write to printer: %w", err)
	}
	return nil
}

// SetStyle selects alignment and character size for subsequent text.
func (p *Printer) SetStyle(align domain.Alignment, doubled bool) error {
	var n byte
	if align == domain.AlignCenter {
		n = 1
	}
	var size byte
	if doubled {
		size = 0x11
	}
	return p.raw([]byte{esc, 'a', n, gs, '!', size})
}

// Text prints s verbatim. Newlines advance the paper.
func (p *Printer) Text(s string) error {
	return p.raw([]byte(s))
}

// Image rasterises the image file at path and prints it at the current
// alignment.
func (p *Printer) Image(path string) error {
	bits, err := rasterizeFile(path)
	if err != nil {
		return err
	}
	stride := (bits.width + 7) / 8
	cmd := []byte{
		gs, 'v', '0', 0x00,
		byte(stride), byte(stride >> 8),
		byte(bits.height), byte(bits.height >> 8),
	}
	if err := p.raw(cmd); err != nil {
		return err
	}
	return p.raw(bits.data)
}

// Cut feeds the printed receipt past the blade and cuts it.
func (p *Printer) Cut() error {
	return p.raw([]byte{esc, 'd', feedLines, gs, 'V', 0x00})
}
