package ec

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/clevofan/clevofan/internal/util"
)

const (
	portPath = "/dev/port"

	scPort   = 0x66
	dataPort = 0x62

	fanControlCmd  = 0x99
	fanControlPort = 0x01

	// bit position of the "input buffer full" flag in the status port
	ibfFlag = 1

	maxStatusQueries    = 100
	statusQueryInterval = time.Millisecond
)

// PortWriter sets the fan duty by driving the EC command/data
// handshake over the raw x86 I/O port device. Requires root.
type PortWriter struct {
	file *os.File
}

func NewPortWriter() (*PortWriter, error) {
	file, err := os.OpenFile(portPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", portPath, err)
	}
	return &PortWriter{
		file: file,
	}, nil
}

func (w *PortWriter) WriteDuty(percent float64) error {
	raw := byte(math.Round(util.Coerce(percent, 0, 100) / 100 * 255))
	return w.write(fanControlCmd, fanControlPort, raw)
}

// write sends a command followed by two data bytes. The EC accepts the
// next byte only once the input buffer full flag has cleared.
func (w *PortWriter) write(cmd byte, port byte, value byte) error {
	if err := w.waitInputClear(); err != nil {
		return err
	}
	if err := w.writeByte(scPort, cmd); err != nil {
		return err
	}

	if err := w.waitInputClear(); err != nil {
		return err
	}
	if err := w.writeByte(dataPort, port); err != nil {
		return err
	}

	if err := w.waitInputClear(); err != nil {
		return err
	}
	if err := w.writeByte(dataPort, value); err != nil {
		return err
	}

	return w.waitInputClear()
}

func (w *PortWriter) waitInputClear() error {
	for i := 0; i < maxStatusQueries; i++ {
		status, err := w.readByte(scPort)
		if err != nil {
			return err
		}
		if (status>>ibfFlag)&1 == 0 {
			return nil
		}
		time.Sleep(statusQueryInterval)
	}
	return errors.New("EC input buffer did not clear")
}

func (w *PortWriter) readByte(offset int64) (byte, error) {
	buf := make([]byte, 1)
	if _, err := w.file.ReadAt(buf, offset); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (w *PortWriter) writeByte(offset int64, value byte) error {
	_, err := w.file.WriteAt([]byte{value}, offset)
	return err
}

func (w *PortWriter) Close() error {
	return w.file.Close()
}
