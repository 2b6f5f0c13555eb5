package entity

import "time"

// BucketInfo is one entry of the bucket listing.
type BucketInfo struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creationDate"`
}

// ObjectInfo is one entry of a per-bucket object listing. Only the provider's
// default page is surfaced; there is no truncation indicator.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	ETag         string    `json:"etag"`
}

// UploadResult describes where the store placed an uploaded object.
type UploadResult struct {
	Bucket   string `json:"bucket"`
	Key      string `json:"key"`
	Location string `json:"location"`
	ETag     string `json:"etag"`
	Size     int64  `json:"size"`
}
