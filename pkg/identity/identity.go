package identity

import (
	"fmt"
	"strings"

	"github.com/benmeehan/journal-client/pkg/file"
)

// DeviceInfoInterface defines methods for reading the device identity.
type DeviceInfoInterface interface {
	LoadDeviceInfo() error
	GetDeviceIdentifier() string
}

// DeviceInfo reads the device identifier from a local file.
type DeviceInfo struct {
	DeviceInfoFile string
	identifier     string
	fileOps        file.FileOperations
}

// NewDeviceInfo initializes a new DeviceInfo instance.
func NewDeviceInfo(filePath string, fileOps file.FileOperations) DeviceInfoInterface {
	return &DeviceInfo{
		DeviceInfoFile: filePath,
		fileOps:        fileOps,
	}
}

// LoadDeviceInfo reads the identifier file and stores its trimmed content.
func (d *DeviceInfo) LoadDeviceInfo() error {
	exists, err := d.fileOps.IsFileExists(d.DeviceInfoFile)
	if err != nil {
		return fmt.Errorf("failed to stat device identifier file %s: %w", d.DeviceInfoFile, err)
	}
	if !exists {
		return fmt.Errorf("device identifier file %s does not exist", d.DeviceInfoFile)
	}

	data, err := d.fileOps.ReadFile(d.DeviceInfoFile)
	if err != nil {
		return fmt.Errorf("failed to read device identifier from %s: %w", d.DeviceInfoFile, err)
	}

	d.identifier = strings.TrimSpace(data)
	return nil
}

// GetDeviceIdentifier returns the identifier read by LoadDeviceInfo.
func (d *DeviceInfo) GetDeviceIdentifier() string {
	return d.identifier
}
