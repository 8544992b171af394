package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigsBucketType tags the bucket descriptor that receives uploaded config files.
const ConfigsBucketType = "configs"

// ErrInvalidConfig is returned when the storage configuration is malformed
// or lacks required credentials.
var ErrInvalidConfig = errors.New("invalid storage configuration")

// File mirrors the YAML configuration file.
type File struct {
	Storage          *StorageCredentials `yaml:"storage"`
	AvailableBuckets []BucketDescriptor  `yaml:"available_buckets"`
}

// StorageCredentials is the connection section of the configuration file.
type StorageCredentials struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// BucketDescriptor describes one bucket known to the deployment.
type BucketDescriptor struct {
	Type   string `yaml:"type"`
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix,omitempty"`
}

// StorageSettings is everything the upload path needs to reach the configs bucket.
// Bucket is empty when no "configs" descriptor exists.
type StorageSettings struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
}

// LoadFile reads and parses the YAML configuration file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrInvalidConfig, path, err)
	}
	return &f, nil
}

// ResolveStorageSettings extracts connection parameters and selects the configs bucket.
// When several descriptors are tagged "configs", the last one wins.
func ResolveStorageSettings(f *File) (StorageSettings, error) {
	if f == nil || f.Storage == nil {
		return StorageSettings{}, fmt.Errorf("%w: storage section is missing", ErrInvalidConfig)
	}

	creds := f.Storage
	required := []struct{ name, value string }{
		{"endpoint", creds.Endpoint},
		{"region", creds.Region},
		{"access_key", creds.AccessKey},
		{"secret_key", creds.SecretKey},
	}
	for _, field := range required {
		if field.value == "" {
			return StorageSettings{}, fmt.Errorf("%w: storage.%s is required", ErrInvalidConfig, field.name)
		}
	}

	s := StorageSettings{
		Endpoint:  creds.Endpoint,
		Region:    creds.Region,
		AccessKey: creds.AccessKey,
		SecretKey: creds.SecretKey,
	}

	for _, b := range f.AvailableBuckets {
		if b.Type != ConfigsBucketType {
			continue
		}
		s.Bucket = b.Bucket
		s.Prefix = ""
		if b.Prefix != "" {
			s.Prefix = b.Prefix + "/"
		}
	}

	return s, nil
}
