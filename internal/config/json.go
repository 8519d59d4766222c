package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LogLevel      string   `json:"log_level"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			DataDir        string `json:"data_dir"`
			BackupDir      string `json:"backup_dir"`
			DisableBackups bool   `json:"disable_backups"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Vaults struct {
		DefaultSize        int      `json:"default_size"`
		SaveThrottle       Duration `json:"save_throttle"`
		RenameRetryDelay   Duration `json:"rename_retry_delay"`
		FailureJournalSize int      `json:"failure_journal_size"`
	} `json:"vaults,omitempty"`

	Policy struct {
		BlockedTypes          []string `json:"blocked_types"`
		BlockedEnchantments   []string `json:"blocked_enchantments"`
		BlockWithModelData    bool     `json:"block_with_model_data"`
		BlockWithoutModelData bool     `json:"block_without_model_data"`
	} `json:"policy,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PersistWorkers int `json:"persist_workers"`
		QueueSize      int `json:"queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			LogLevel:      jsonCfg.App.LogLevel,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			Files: Files{
				DataDir:        jsonCfg.Storage.Files.DataDir,
				BackupDir:      jsonCfg.Storage.Files.BackupDir,
				DisableBackups: jsonCfg.Storage.Files.DisableBackups,
			},
		},
		Vaults: Vaults{
			DefaultSize:        jsonCfg.Vaults.DefaultSize,
			SaveThrottle:       time.Duration(jsonCfg.Vaults.SaveThrottle),
			RenameRetryDelay:   time.Duration(jsonCfg.Vaults.RenameRetryDelay),
			FailureJournalSize: jsonCfg.Vaults.FailureJournalSize,
		},
		Policy: Policy{
			BlockedTypes:          jsonCfg.Policy.BlockedTypes,
			BlockedEnchantments:   jsonCfg.Policy.BlockedEnchantments,
			BlockWithModelData:    jsonCfg.Policy.BlockWithModelData,
			BlockWithoutModelData: jsonCfg.Policy.BlockWithoutModelData,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PersistWorkers: jsonCfg.Workers.PersistWorkers,
			QueueSize:      jsonCfg.Workers.QueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
