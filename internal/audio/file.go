package audio

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteWAVFile encodes samples into path. The file only appears at path once
// it is complete.
func WriteWAVFile(path string, samples []int16) error {
	return writeAtomic(path, func(f *os.File) error {
		return EncodeWAV(f, samples)
	})
}

// WriteFile writes raw bytes to path with the same guarantee as WriteWAVFile.
func WriteFile(path string, data []byte) error {
	return writeAtomic(path, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	})
}

// ReadWAVFile decodes a WAV file from disk.
func ReadWAVFile(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeWAV(f)
}

func writeAtomic(path string, fill func(f *os.File) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
