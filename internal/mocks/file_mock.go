package mocks

import (
	"github.com/stretchr/testify/mock"
)

// FileOperations is a mock implementation of the file.FileOperations interface
type FileOperations struct {
	mock.Mock
}

func (m *FileOperations) IsFileExists(filePath string) (bool, error) {
	args := m.Called(filePath)
	return args.Bool(0), args.Error(1)
}

func (m *FileOperations) ReadFile(filePath string) (string, error) {
	args := m.Called(filePath)
	return args.String(0), args.Error(1)
}
