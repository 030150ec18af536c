package storage

import (
	"fmt"
	json "github.com/goccy/go-json"
	"mindcare/internal/providers"
	"mindcare/internal/storage/interfaces"
	"os"
	"path/filepath"
)

// FileManager writes database snapshots as zstd-compressed JSON.
type FileManager struct {
	db         *Database
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, db *Database, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		db:         db,
		logger:     logger,
	}
}

// SaveToFile replaces fileName atomically through a temporary file.
func (f *FileManager) SaveToFile(fileName string) error {
	jsonData, err := json.Marshal(f.db.Snapshot())
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile restores the database. A missing file leaves it empty.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Infof(providers.TypeApp, "No snapshot at %s, starting empty", fileName)
			return nil
		}
		return err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(decompressed, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	f.db.Load(&snapshot)
	f.logger.Infof(providers.TypeApp, "Restored snapshot taken at %s", snapshot.TakenAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
