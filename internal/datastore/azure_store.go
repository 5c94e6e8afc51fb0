package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"djwatch/internal/common"
	"djwatch/internal/config"
	"djwatch/internal/models"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/rs/zerolog"
)

const snapshotContentType = "application/json"

// AzureBlobStore persists snapshots as JSON blobs in an Azure Storage
// container, one blob per target named {prefix}_{targetKey}.json.
type AzureBlobStore struct {
	client    *azblob.Client
	container string
	prefix    string
	logger    zerolog.Logger
}

// NewAzureBlobStore builds a blob-backed snapshot store from storage
// configuration. A shared key is preferred; a SAS token is used when no key
// is configured. The container is created if it does not exist.
func NewAzureBlobStore(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (*AzureBlobStore, error) {
	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", cfg.AzureStorageAccount)

	client, err := newBlobClient(serviceURL, cfg)
	if err != nil {
		return nil, err
	}

	store := &AzureBlobStore{
		client:    client,
		container: cfg.AzureStorageContainer,
		prefix:    cfg.BlobNamePrefix,
		logger:    logger.With().Str("component", "AzureBlobStore").Logger(),
	}

	if err := store.ensureContainer(ctx); err != nil {
		return nil, err
	}

	store.logger.Info().
		Str("account", cfg.AzureStorageAccount).
		Str("container", cfg.AzureStorageContainer).
		Msg("Azure blob snapshot store initialized")
	return store, nil
}

// newBlobClient constructs the service client for the configured credentials
func newBlobClient(serviceURL string, cfg config.StorageConfig) (*azblob.Client, error) {
	if cfg.AzureStorageAccessKey != "" {
		cred, err := azblob.NewSharedKeyCredential(cfg.AzureStorageAccount, cfg.AzureStorageAccessKey)
		if err != nil {
			return nil, common.WrapError(err, "failed to build Azure shared key credential")
		}
		client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
		if err != nil {
			return nil, common.WrapError(err, "failed to create Azure blob client")
		}
		return client, nil
	}

	sasURL := serviceURL + "?" + strings.TrimPrefix(cfg.AzureStorageSASToken, "?")
	client, err := azblob.NewClientWithNoCredential(sasURL, nil)
	if err != nil {
		return nil, common.WrapError(err, "failed to create Azure blob client from SAS token")
	}
	return client, nil
}

// ensureContainer creates the container, tolerating one that already exists
func (abs *AzureBlobStore) ensureContainer(ctx context.Context) error {
	_, err := abs.client.CreateContainer(ctx, abs.container, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return common.WrapError(err, "failed to ensure blob container: "+abs.container)
	}
	return nil
}

// blobName returns the blob name for a target key
func (abs *AzureBlobStore) blobName(targetKey string) string {
	return fmt.Sprintf("%s_%s.json", abs.prefix, targetKey)
}

// Load downloads the snapshot blob for a target key. A missing blob maps to
// models.ErrSnapshotNotFound.
func (abs *AzureBlobStore) Load(ctx context.Context, targetKey string) (models.Snapshot, error) {
	name := abs.blobName(targetKey)

	resp, err := abs.client.DownloadStream(ctx, abs.container, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			abs.logger.Debug().Str("blob", name).Msg("No snapshot blob yet")
			return models.NewSnapshot(nil), models.ErrSnapshotNotFound
		}
		return models.Snapshot{}, common.NewStoreError("load", targetKey, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Snapshot{}, common.NewStoreError("load", targetKey, err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return models.Snapshot{}, common.NewStoreError("load", targetKey, err)
	}

	return snapshot, nil
}

// Save uploads the snapshot blob for a target key, replacing any previous one
func (abs *AzureBlobStore) Save(ctx context.Context, targetKey string, snapshot models.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return common.NewStoreError("save", targetKey, err)
	}

	contentType := snapshotContentType
	_, err = abs.client.UploadBuffer(ctx, abs.container, abs.blobName(targetKey), data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return common.NewStoreError("save", targetKey, err)
	}

	abs.logger.Debug().
		Str("blob", abs.blobName(targetKey)).
		Int("records", snapshot.Records.Len()).
		Msg("Uploaded snapshot blob")
	return nil
}
