package mocks

import (
	"io"
	"io/fs"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of savefile.Store
type Store struct {
	mock.Mock
}

func (m *Store) Open(name string) (io.ReadCloser, error) {
	args := m.Called(name)
	if r, ok := args.Get(0).(io.ReadCloser); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Create(name string) (io.WriteCloser, error) {
	args := m.Called(name)
	if w, ok := args.Get(0).(io.WriteCloser); ok {
		return w, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	if info, ok := args.Get(0).(fs.FileInfo); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}
