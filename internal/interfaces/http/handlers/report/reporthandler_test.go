package report

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/application/report/usecases"
	"github.com/saase/requesthub/internal/domain/report"
	"github.com/saase/requesthub/internal/interfaces/http/handlers/testutil"
	"github.com/saase/requesthub/internal/shared/errors"
)

type mockFetchUC struct {
	got    usecases.FetchReportQuery
	result *report.Report
	err    error
}

func (m *mockFetchUC) Execute(ctx context.Context, query usecases.FetchReportQuery) (*report.Report, error) {
	m.got = query
	return m.result, m.err
}

type staticHealth struct {
	result *dto.StorageHealthDTO
}

func (s staticHealth) Execute() *dto.StorageHealthDTO { return s.result }

func TestReportHandler_Fetch(t *testing.T) {
	fallback := report.Fallback()

	tests := []struct {
		name       string
		result     *report.Report
		err        error
		wantCode   int
		wantReason string
	}{
		{
			name:     "success",
			result:   &fallback,
			wantCode: http.StatusOK,
		},
		{
			name:       "invalid location",
			err:        errors.NewRemoteFetchError(http.StatusBadRequest, "invalid report location", string(report.ReasonLocationMalformed)),
			wantCode:   http.StatusBadRequest,
			wantReason: string(report.ReasonLocationMalformed),
		},
		{
			name:       "object missing",
			err:        errors.NewRemoteFetchError(http.StatusNotFound, "report not found", string(report.ReasonObjectNotFound)),
			wantCode:   http.StatusNotFound,
			wantReason: string(report.ReasonObjectNotFound),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockFetchUC{result: tt.result, err: tt.err}
			h := NewReportHandler(uc, staticHealth{})

			c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/reports/fetch", map[string]string{
				"s3_location": "s3://reports/a.json",
			})
			h.Fetch(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "s3://reports/a.json", uc.got.Location)

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			if tt.wantReason != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantReason, resp.Error.Details)
				return
			}
			var got report.Report
			require.NoError(t, json.Unmarshal(resp.Data, &got))
			assert.Equal(t, report.StatusSuccess, got.Status)
		})
	}
}

func TestReportHandler_Health(t *testing.T) {
	h := NewReportHandler(&mockFetchUC{}, staticHealth{result: &dto.StorageHealthDTO{Region: "ap-southeast-1", HasCredentials: true}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/reports/health", nil)
	h.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got dto.StorageHealthDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "ap-southeast-1", got.Region)
	assert.True(t, got.HasCredentials)
}
