package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpeconf/service/internal/config"
	"github.com/stretchr/testify/require"
)

func validFile() *config.File {
	return &config.File{
		Storage: &config.StorageCredentials{
			Endpoint:  "http://minio:9000",
			Region:    "us-east-1",
			AccessKey: "access",
			SecretKey: "secret",
		},
	}
}

func TestResolveStorageSettingsCredentials(t *testing.T) {
	t.Parallel()

	s, err := config.ResolveStorageSettings(validFile())
	require.NoError(t, err)
	require.Equal(t, "http://minio:9000", s.Endpoint)
	require.Equal(t, "us-east-1", s.Region)
	require.Equal(t, "access", s.AccessKey)
	require.Equal(t, "secret", s.SecretKey)

	// No configs bucket: no error, empty bucket and prefix.
	require.Empty(t, s.Bucket)
	require.Empty(t, s.Prefix)
}

func TestResolveStorageSettingsLastConfigsBucketWins(t *testing.T) {
	t.Parallel()

	f := validFile()
	f.AvailableBuckets = []config.BucketDescriptor{
		{Type: "configs", Bucket: "first", Prefix: "one"},
		{Type: "firmware", Bucket: "fw", Prefix: "images"},
		{Type: "configs", Bucket: "second", Prefix: "two"},
		{Type: "backups", Bucket: "bk"},
	}

	s, err := config.ResolveStorageSettings(f)
	require.NoError(t, err)
	require.Equal(t, "second", s.Bucket)
	require.Equal(t, "two/", s.Prefix)
}

func TestResolveStorageSettingsWithoutPrefix(t *testing.T) {
	t.Parallel()

	f := validFile()
	f.AvailableBuckets = []config.BucketDescriptor{
		{Type: "configs", Bucket: "first", Prefix: "one"},
		{Type: "configs", Bucket: "second"},
	}

	s, err := config.ResolveStorageSettings(f)
	require.NoError(t, err)
	require.Equal(t, "second", s.Bucket)
	require.Empty(t, s.Prefix, "a later descriptor without prefix resets it")
}

func TestResolveStorageSettingsMissingCredentials(t *testing.T) {
	t.Parallel()

	_, err := config.ResolveStorageSettings(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.ResolveStorageSettings(&config.File{})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	for _, mutate := range []func(*config.StorageCredentials){
		func(c *config.StorageCredentials) { c.Endpoint = "" },
		func(c *config.StorageCredentials) { c.Region = "" },
		func(c *config.StorageCredentials) { c.AccessKey = "" },
		func(c *config.StorageCredentials) { c.SecretKey = "" },
	} {
		f := validFile()
		mutate(f.Storage)
		_, err := config.ResolveStorageSettings(f)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
storage:
  endpoint: https://s3.example.com
  region: eu-west-1
  access_key: AK
  secret_key: SK
available_buckets:
  - type: configs
    bucket: cpe-configs
    prefix: configs
  - type: logs
    bucket: cpe-logs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.AvailableBuckets, 2)

	s, err := config.ResolveStorageSettings(f)
	require.NoError(t, err)
	require.Equal(t, "https://s3.example.com", s.Endpoint)
	require.Equal(t, "cpe-configs", s.Bucket)
	require.Equal(t, "configs/", s.Prefix)
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := config.LoadFile(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("storage: [unterminated"), 0o600))
	_, err = config.LoadFile(broken)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
