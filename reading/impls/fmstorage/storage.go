package fmstorage

import (
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/liblightfit/reading"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

const defaultFileName = "readings.json"

func NewFMStorage(root string, storage stg.FileStorage) reading.Storage {
	return NewFMStorageEx(root, storage, defaultFileName, false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) reading.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	if fileName == "" {
		fileName = defaultFileName
	}

	return &fmStorageImpl{
		readingStorage: mwf.NewMemWithFile[[]reading.Reading, mwf.Serial, mwf.Lock](
			make([]reading.Reading, 0), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	readingStorage *mwf.MemWithFile[[]reading.Reading, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Append(r reading.Reading) error {
	return impl.readingStorage.Change(func(oldV []reading.Reading) ([]reading.Reading, error) {
		newV := make([]reading.Reading, 0, len(oldV)+1)
		newV = append(newV, oldV...)

		return append(newV, r.Clone()), nil
	})
}

func (impl *fmStorageImpl) Load() (rs []reading.Reading, _ error) {
	impl.readingStorage.Read(func(v []reading.Reading) {
		rs = make([]reading.Reading, 0, len(v))

		for _, r := range v {
			rs = append(rs, r.Clone())
		}
	})

	return
}

func (impl *fmStorageImpl) Count() (n int, _ error) {
	impl.readingStorage.Read(func(v []reading.Reading) {
		n = len(v)
	})

	return
}
