package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBucket string
		wantKey    string
		wantReason Reason
	}{
		{name: "s3 uri", raw: "s3://saas-reports/2024/REQ-1.json", wantBucket: "saas-reports", wantKey: "2024/REQ-1.json"},
		{name: "shorthand", raw: "saas-reports/REQ-1.json", wantBucket: "saas-reports", wantKey: "REQ-1.json"},
		{name: "surrounding space", raw: "  s3://b/k.json ", wantBucket: "b", wantKey: "k.json"},
		{name: "empty", raw: "", wantReason: ReasonLocationMissing},
		{name: "blank", raw: "   ", wantReason: ReasonLocationMissing},
		{name: "bucket only", raw: "s3://saas-reports", wantReason: ReasonLocationMalformed},
		{name: "bucket with slash", raw: "s3://saas-reports/", wantReason: ReasonLocationMalformed},
		{name: "no key shorthand", raw: "saas-reports", wantReason: ReasonLocationMalformed},
		{name: "empty bucket", raw: "s3:///key.json", wantReason: ReasonLocationMalformed},
		{name: "other scheme", raw: "https://example.com/key.json", wantReason: ReasonLocationMalformed},
		{name: "prefix key", raw: "bucket/folder/", wantReason: ReasonLocationMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocation(tt.raw)
			if tt.wantReason != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, ReasonOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, loc.Bucket)
			assert.Equal(t, tt.wantKey, loc.Key)
		})
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "s3://b/k.json", Location{Bucket: "b", Key: "k.json"}.String())
}
