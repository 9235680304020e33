package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordExternalCall(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(ExternalCallsTotal.WithLabelValues(ServiceBookCatalog, OutcomeError))
	RecordExternalCall(ServiceBookCatalog, time.Now(), errors.New("down"))
	after := testutil.ToFloat64(ExternalCallsTotal.WithLabelValues(ServiceBookCatalog, OutcomeError))
	assert.Equal(t, before+1, after)
}

func TestSetCatalogEntries(t *testing.T) {
	t.Parallel()

	SetCatalogEntries(42)
	assert.Equal(t, float64(42), testutil.ToFloat64(CatalogEntries))
}

func TestRecordHTTPRequest(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/posts/create", "201"))
	RecordHTTPRequest("POST", "/api/posts/create", "201", 10*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/posts/create", "201"))
	assert.Equal(t, before+1, after)
}
