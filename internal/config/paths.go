package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
)

// expandPaths resolves a leading "~" in the file-system settings.
func (cfg *StructuredConfig) expandPaths() error {
	for _, p := range []*string{&cfg.Storage.Files.DataDir, &cfg.Storage.Files.BackupDir} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
		}
		*p = expanded
	}
	return nil
}
