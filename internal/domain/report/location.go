package report

import (
	"net/url"
	"strings"
)

// Location addresses one object in a bucket.
type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

// ParseLocation accepts "s3://bucket/key..." or the "bucket/key..." shorthand.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, NewFetchError(ReasonLocationMissing, raw, nil)
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme != "s3" {
			return Location{}, NewFetchError(ReasonLocationMalformed, raw, err)
		}
		return newLocation(raw, u.Host, strings.TrimPrefix(u.Path, "/"))
	}

	bucket, key, _ := strings.Cut(strings.TrimPrefix(raw, "/"), "/")
	return newLocation(raw, bucket, key)
}

func newLocation(raw, bucket, key string) (Location, error) {
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, NewFetchError(ReasonLocationMalformed, raw, nil)
	}
	return Location{Bucket: bucket, Key: key}, nil
}
