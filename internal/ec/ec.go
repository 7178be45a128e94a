package ec

import (
	"fmt"
	"io"
	"os"
)

const (
	// DefaultPath is the kernel's debugfs representation of the EC
	// register space.
	DefaultPath = "/sys/kernel/debug/ec/ec0/io"

	regSize     = 0x100
	regCPUTemp  = 0x07
	regGPUTemp  = 0xCD
	regFanDuty  = 0xCE
	regFanRpmHi = 0xD0
	regFanRpmLo = 0xD1

	// See https://github.com/SkyLandTW/clevo-indicator/blob/master/src/clevo-indicator.c#L562
	rpmMagic = 2156220
)

// Registers is a decoded snapshot of the EC register space.
type Registers struct {
	// CPUTemp is the CPU core temperature, in °C.
	CPUTemp float64 `json:"cpuTemp"`
	// GPUTemp is the GPU temperature, in °C. GPU temperature reporting
	// via the EC is often unreliable, if it works at all.
	GPUTemp float64 `json:"gpuTemp"`
	// FanDuty is the current fan duty, in percent.
	FanDuty float64 `json:"fanDuty"`
	// FanSpeed is the current fan speed, in RPM.
	FanSpeed int `json:"fanSpeed"`
}

func decodeRegisters(buf []byte) Registers {
	return Registers{
		CPUTemp:  float64(buf[regCPUTemp]),
		GPUTemp:  float64(buf[regGPUTemp]),
		FanDuty:  float64(buf[regFanDuty]) / 255 * 100,
		FanSpeed: decodeRpm(buf[regFanRpmLo], buf[regFanRpmHi]),
	}
}

func decodeRpm(lo byte, hi byte) int {
	raw := int(hi)<<8 + int(lo)
	if raw <= 0 {
		return 0
	}
	return rpmMagic / raw
}

// TemperatureReader is the input side of the hardware collaborator
// used by the control loop.
type TemperatureReader interface {
	// ReadTemperature returns the current CPU core temperature in °C.
	ReadTemperature() (float64, error)
}

// DutyWriter is the output side of the hardware collaborator used by
// the control loop.
type DutyWriter interface {
	// WriteDuty applies the given fan duty, in percent [0..100].
	// Callers are responsible for clamping the value beforehand.
	WriteDuty(percent float64) error
}

// FileReader reads the EC registers through the kernel interface.
// Using the kernel's representation instead of the raw I/O ports is
// safer regarding concurrent accesses to the same ports.
type FileReader struct {
	file *os.File
}

func NewFileReader(path string) (*FileReader, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot open EC interface %s: %w", path, err)
	}
	return &FileReader{
		file: file,
	}, nil
}

// ReadRegisters takes a fresh snapshot of the whole register space.
func (r *FileReader) ReadRegisters() (Registers, error) {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return Registers{}, err
	}
	buf := make([]byte, regSize)
	if _, err := io.ReadFull(r.file, buf); err != nil {
		return Registers{}, err
	}
	return decodeRegisters(buf), nil
}

func (r *FileReader) ReadTemperature() (float64, error) {
	registers, err := r.ReadRegisters()
	if err != nil {
		return 0, err
	}
	return registers.CPUTemp, nil
}

func (r *FileReader) Close() error {
	return r.file.Close()
}
