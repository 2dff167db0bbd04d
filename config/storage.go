package config

import "os"

type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

// GetStorageConfig reads the S3-compatible bucket settings used for
// review image uploads.
func GetStorageConfig() *StorageConfig {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}
	return &StorageConfig{
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("S3_BUCKET_NAME"),
		PublicURL:       os.Getenv("S3_PUBLIC_URL"),
		Region:          region,
	}
}
