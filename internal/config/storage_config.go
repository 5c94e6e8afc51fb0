package config

// StorageConfig defines configuration for snapshot storage backends
type StorageConfig struct {
	AzureStorageAccount   string `json:"azure_storage_account,omitempty" yaml:"azure_storage_account,omitempty"`
	AzureStorageAccessKey string `json:"azure_storage_access_key,omitempty" yaml:"azure_storage_access_key,omitempty"`
	AzureStorageSASToken  string `json:"azure_storage_sas_token,omitempty" yaml:"azure_storage_sas_token,omitempty"`
	AzureStorageContainer string `json:"azure_storage_container,omitempty" yaml:"azure_storage_container,omitempty"`
	BlobNamePrefix        string `json:"blob_name_prefix,omitempty" yaml:"blob_name_prefix,omitempty"`
	SnapshotDir           string `json:"snapshot_dir,omitempty" yaml:"snapshot_dir,omitempty"`
	SQLitePath            string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		AzureStorageContainer: DefaultAzureContainer,
		BlobNamePrefix:        DefaultBlobNamePrefix,
		SnapshotDir:           DefaultSnapshotDir,
	}
}

// AzureConfigured reports whether Azure Blob credentials are present
func (sc StorageConfig) AzureConfigured() bool {
	return sc.AzureStorageAccount != "" && (sc.AzureStorageAccessKey != "" || sc.AzureStorageSASToken != "")
}
