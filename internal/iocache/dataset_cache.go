package iocache

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/observability"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/jonboulle/clockwork"
)

// DeriveFunc turns raw store rows into derived records.
type DeriveFunc func([]schema.RawRecord) schema.DeriveResult

// DatasetCache memoizes the derived dataset between runs.
// Readers never see a partially built dataset: a rebuild publishes a new pointer.
type DatasetCache struct {
	reader  contract.RecordReader
	derive  DeriveFunc
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock

	current atomic.Pointer[schema.Dataset]
}

var _ contract.DatasetProvider = &DatasetCache{} // Compile-time check

// NewDatasetCache creates an empty cache over reader.
func NewDatasetCache(
	reader contract.RecordReader,
	derive DeriveFunc,
	logger *slog.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) *DatasetCache {
	return &DatasetCache{
		reader:  reader,
		derive:  derive,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// Get returns the cached dataset, building it when forceReload is set or nothing is cached yet.
// A failed store read yields an empty dataset and leaves the cached one in place.
func (c *DatasetCache) Get(ctx context.Context, forceReload bool) *schema.Dataset {
	reason := "forced"
	if !forceReload {
		if ds := c.current.Load(); ds != nil {
			return ds
		}
		reason = "initial"
	}

	raw, err := c.reader.FetchAll(ctx)
	if err != nil {
		c.logger.Warn("record store unavailable, continuing with empty dataset", "error", err)
		c.metrics.StoreReadErrors.Inc()
		return &schema.Dataset{BuiltAt: c.clock.Now()}
	}

	result := c.derive(raw)
	ds := &schema.Dataset{
		Records:  result.Records,
		Rejected: result.Rejected,
		BuiltAt:  c.clock.Now(),
	}
	for _, rej := range ds.Rejected {
		c.logger.Warn("dropped malformed record", "id", rej.ID, "reason", rej.Reason)
	}

	c.current.Store(ds)
	c.metrics.DatasetBuilds.WithLabelValues(reason).Inc()
	c.metrics.DatasetRecords.Set(float64(ds.Len()))
	c.metrics.RecordsRejected.Add(float64(len(ds.Rejected)))
	c.logger.Debug("dataset built", "records", ds.Len(), "rejected", len(ds.Rejected), "reason", reason)
	return ds
}
