package dataprocessing

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"fedspend/internal/analytics"
	"fedspend/internal/config"
	"fedspend/internal/dataset"
	pipeerr "fedspend/internal/errors"
	"fedspend/pkg/contracts/domain"
)

// RawBatch is one raw record batch handed in by the collector, together
// with its provenance.
type RawBatch struct {
	Name    string
	Source  domain.SourceKind
	Period  string
	Keyword string
	Records dataset.Table
}

// ProcessorConfig contains the pipeline tunables.
type ProcessorConfig struct {
	TopNRecipients  int
	ClusterCount    int
	ClusterSeed     int64
	PolicySplitDate string
	CacheSize       int
	// CacheTTL bounds the age of cached reports; zero disables expiry.
	CacheTTL time.Duration
}

// DefaultProcessorConfig returns the built-in tunables.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		TopNRecipients:  config.DefaultTopNRecipients,
		ClusterCount:    5,
		ClusterSeed:     42,
		PolicySplitDate: "2022-08-16",
		CacheSize:       32,
		CacheTTL:        time.Hour,
	}
}

// Processor sequences the pipeline stages and owns the bounded result
// cache. All stage transformations are pure; the cache is the only shared
// mutable state and is guarded by a mutex plus a single-flight group so
// concurrent callers computing the same key observe at-most-once work.
type Processor struct {
	logger      *slog.Logger
	cfg         ProcessorConfig
	normalizer  *Normalizer
	dedup       *Deduplicator
	categorizer *Categorizer
	validate    *validator.Validate

	mu         sync.Mutex
	cache      map[string]cacheEntry
	cacheOrder []string
	flight     singleflight.Group
}

// cacheEntry pairs a cached report with its storage time for TTL expiry.
type cacheEntry struct {
	report   *domain.ComprehensiveReport
	storedAt time.Time
}

// NewProcessor creates a processor with the default stage configuration.
func NewProcessor(logger *slog.Logger, cfg ProcessorConfig) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CacheSize < 1 {
		cfg.CacheSize = DefaultProcessorConfig().CacheSize
	}
	return &Processor{
		logger:      logger,
		cfg:         cfg,
		normalizer:  NewNormalizer(logger, nil),
		dedup:       NewDeduplicator(logger),
		categorizer: NewCategorizer(logger, nil, nil),
		validate:    validator.New(),
		cache:       make(map[string]cacheEntry),
	}
}

// Ingest normalizes, consolidates and categorizes raw batches into the
// analysis-ready award table. Every record is tagged with a run identifier
// for audit. Returns the table and the number of discarded duplicates.
func (p *Processor) Ingest(batches []RawBatch) ([]domain.Award, int, error) {
	runID := uuid.NewString()
	normalized := make([]Batch, 0, len(batches))

	for _, raw := range batches {
		awards, err := p.normalizer.Normalize(raw.Records, raw.Name)
		if err != nil {
			return nil, 0, fmt.Errorf("ingest run %s: %w", runID, err)
		}
		normalized = append(normalized, Batch{
			Name:    raw.Name,
			Source:  raw.Source,
			Period:  raw.Period,
			Keyword: raw.Keyword,
			Awards:  awards,
		})
	}

	merged, discarded := p.dedup.Merge(normalized)
	categorized := p.categorizer.Categorize(merged)
	for i := range categorized {
		categorized[i].SourceTag = runID
	}

	ingestRunsTotal.Inc()
	recordsIngestedTotal.Add(float64(len(categorized)))
	duplicatesDiscardedTotal.Add(float64(discarded))

	p.logger.Info("ingest complete",
		slog.String("run_id", runID),
		slog.Int("batches", len(batches)),
		slog.Int("records", len(categorized)),
		slog.Int("duplicates_discarded", discarded))

	return categorized, discarded, nil
}

// SummaryByState aggregates funding by performance state, ranked descending.
func (p *Processor) SummaryByState(awards []domain.Award) ([]domain.SummaryRow, error) {
	return Aggregate(awards, AggregateOptions{WithShare: true}, "state_code")
}

// SummaryByTechnology aggregates funding by technology category with each
// category's percentage share.
func (p *Processor) SummaryByTechnology(awards []domain.Award) ([]domain.SummaryRow, error) {
	return Aggregate(awards, AggregateOptions{WithShare: true}, "technology_category")
}

// SummaryByRecipient aggregates funding by recipient, truncated to the
// configured top N.
func (p *Processor) SummaryByRecipient(awards []domain.Award) ([]domain.SummaryRow, error) {
	return Aggregate(awards, AggregateOptions{TopN: p.cfg.TopNRecipients}, "recipient_name")
}

// SummaryByTimeBucket resamples awards at the given granularity.
func (p *Processor) SummaryByTimeBucket(awards []domain.Award, granularity domain.PeriodGranularity) ([]domain.PeriodRow, error) {
	return BuildTimeSeries(awards, granularity)
}

// DetectTrend fits the funding trend over individual awards ordered by
// start date.
func (p *Processor) DetectTrend(awards []domain.Award) domain.TrendResult {
	points := make([]analytics.TimePoint, 0, len(awards))
	for _, award := range awards {
		if award.HasStartDate() {
			points = append(points, analytics.TimePoint{Date: *award.StartDate, Value: award.Amount})
		}
	}
	return analytics.DetectTrend(points)
}

// AnalyzeCorrelations ranks numeric award features by correlation against
// the award amount.
func (p *Processor) AnalyzeCorrelations(awards []domain.Award, features []string) domain.CorrelationResult {
	return analytics.AnalyzeCorrelations(AwardsToTable(awards), "award_amount", features)
}

// ComparePeriods contrasts award amounts before and after the configured
// policy split date.
func (p *Processor) ComparePeriods(awards []domain.Award) domain.PeriodComparison {
	split, ok := parseDate(p.cfg.PolicySplitDate)
	if !ok {
		split = time.Date(2022, 8, 16, 0, 0, 0, 0, time.UTC)
	}
	return analytics.ComparePeriods(AwardsToTable(awards), "start_date", "award_amount", split)
}

// AnalyzeGeography aggregates by state and measures funding concentration.
func (p *Processor) AnalyzeGeography(awards []domain.Award) (domain.GeographicPatterns, error) {
	distribution, err := p.SummaryByState(awards)
	if err != nil {
		return domain.GeographicPatterns{}, err
	}
	return analytics.AnalyzeGeographicPatterns(distribution), nil
}

// ClusterRecipients clusters the derived recipient summary features with
// the configured deterministic seed.
func (p *Processor) ClusterRecipients(awards []domain.Award) (domain.ClusterResult, error) {
	summary, err := p.SummaryByRecipient(awards)
	if err != nil {
		return domain.ClusterResult{}, err
	}

	table := make(dataset.Table, len(summary))
	for i, row := range summary {
		table[i] = dataset.Row{
			"total_funding":  row.TotalFunding,
			"award_count":    float64(row.AwardCount),
			"avg_award_size": row.AvgAwardSize,
		}
	}
	features := []string{"total_funding", "award_count", "avg_award_size"}
	return analytics.Cluster(table, features, p.cfg.ClusterCount, p.cfg.ClusterSeed), nil
}

// GenerateInsights synthesizes the ordered insight list over the dataset.
func (p *Processor) GenerateInsights(awards []domain.Award) ([]domain.Insight, error) {
	input := analytics.InsightInput{}

	amounts := make([]float64, len(awards))
	for i, award := range awards {
		amounts[i] = award.Amount
	}
	if stats, ok := analytics.Summarize(amounts); ok {
		input.Funding = &stats
	}

	geo, err := p.AnalyzeGeography(awards)
	if err != nil {
		return nil, err
	}
	input.Geographic = &geo

	tech, err := p.SummaryByTechnology(awards)
	if err != nil {
		return nil, err
	}
	input.Technology = tech

	trend := p.DetectTrend(awards)
	input.Trend = &trend

	return analytics.GenerateInsights(input), nil
}

// DatasetStatistics reports headline counts and distributions.
func (p *Processor) DatasetStatistics(awards []domain.Award) domain.DatasetStatistics {
	stats := domain.DatasetStatistics{TotalRecords: len(awards)}
	if len(awards) == 0 {
		return stats
	}

	recipients := make(map[string]bool)
	states := make(map[string]bool)
	techDist := make(map[string]int)
	typeDist := make(map[string]int)
	amounts := make([]float64, len(awards))

	for i, award := range awards {
		amounts[i] = award.Amount
		if award.RecipientName != "" {
			recipients[award.RecipientName] = true
		}
		if award.StateCode != "" {
			states[award.StateCode] = true
		}
		if award.TechnologyCategory != "" {
			techDist[award.TechnologyCategory]++
		}
		if award.RecipientType != "" {
			typeDist[award.RecipientType]++
		}
	}

	stats.UniqueRecipients = len(recipients)
	stats.UniqueStates = len(states)
	if funding, ok := analytics.Summarize(amounts); ok {
		stats.Funding = &funding
	}
	if len(techDist) > 0 {
		stats.TechnologyDistribution = techDist
	}
	if len(typeDist) > 0 {
		stats.RecipientTypeDistribution = typeDist
	}
	return stats
}

// AnalysisRequest identifies one comprehensive analysis for caching.
type AnalysisRequest struct {
	Source     string `validate:"required"`
	TimePeriod string `validate:"omitempty,oneof=pre_arra arra_period post_arra_pre_ira ira_chips_period full_period"`
}

// CacheKey renders the request as the result-cache key.
func (r AnalysisRequest) CacheKey() string {
	return fmt.Sprintf("%s|%s", r.Source, r.TimePeriod)
}

// ComprehensiveAnalysis runs every analysis dimension over the award table
// and caches the report under the request key. Concurrent callers with the
// same key share a single computation.
func (p *Processor) ComprehensiveAnalysis(req AnalysisRequest, awards []domain.Award, duplicatesDropped int) (*domain.ComprehensiveReport, error) {
	if err := p.validate.Struct(req); err != nil {
		return nil, pipeerr.InvalidParameterError("analysis request", err)
	}

	key := req.CacheKey()
	if cached, ok := p.lookupCached(key); ok {
		analysisCacheHitsTotal.Inc()
		p.logger.Info("analysis served from cache", slog.String("key", key))
		return cached, nil
	}

	result, err, _ := p.flight.Do(key, func() (interface{}, error) {
		report, err := p.buildReport(awards, duplicatesDropped)
		if err != nil {
			return nil, err
		}
		p.storeCached(key, report)
		analysisRunsTotal.Inc()
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.ComprehensiveReport), nil
}

// InvalidateCache discards the cached report for the request, or every
// report when the zero request is given.
func (p *Processor) InvalidateCache(req AnalysisRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if req == (AnalysisRequest{}) {
		p.cache = make(map[string]cacheEntry)
		p.cacheOrder = nil
		return
	}

	key := req.CacheKey()
	if _, ok := p.cache[key]; !ok {
		return
	}
	p.evictLocked(key)
}

// evictLocked removes one key from the cache and its insertion order.
// The caller holds p.mu.
func (p *Processor) evictLocked(key string) {
	delete(p.cache, key)
	for i, k := range p.cacheOrder {
		if k == key {
			p.cacheOrder = append(p.cacheOrder[:i], p.cacheOrder[i+1:]...)
			break
		}
	}
}

// lookupCached returns a live cached report, expiring stale entries.
func (p *Processor) lookupCached(key string) (*domain.ComprehensiveReport, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.cache[key]
	if !ok {
		return nil, false
	}
	if p.cfg.CacheTTL > 0 && time.Since(entry.storedAt) > p.cfg.CacheTTL {
		p.evictLocked(key)
		return nil, false
	}
	return entry.report, true
}

// CachedKeys lists the keys currently held by the result cache.
func (p *Processor) CachedKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.cacheOrder...)
}

// storeCached inserts a report, evicting the oldest entry when full.
func (p *Processor) storeCached(key string, report *domain.ComprehensiveReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.cache[key]; !exists {
		for len(p.cacheOrder) >= p.cfg.CacheSize {
			oldest := p.cacheOrder[0]
			p.cacheOrder = p.cacheOrder[1:]
			delete(p.cache, oldest)
		}
		p.cacheOrder = append(p.cacheOrder, key)
	}
	p.cache[key] = cacheEntry{report: report, storedAt: time.Now()}
}

// buildReport assembles the full analysis across all dimensions.
func (p *Processor) buildReport(awards []domain.Award, duplicatesDropped int) (*domain.ComprehensiveReport, error) {
	report := &domain.ComprehensiveReport{}

	report.Summary = p.dataSummary(awards, duplicatesDropped)

	stateSummary, err := p.SummaryByState(awards)
	if err != nil {
		return nil, err
	}
	report.Geographic = domain.GeographicAnalysis{
		StateSummary: stateSummary,
		Patterns:     analytics.AnalyzeGeographicPatterns(stateSummary),
	}

	techSummary, err := p.SummaryByTechnology(awards)
	if err != nil {
		return nil, err
	}
	report.Technology = domain.TechnologyAnalysis{TechnologySummary: techSummary}

	recipientSummary, err := p.SummaryByRecipient(awards)
	if err != nil {
		return nil, err
	}
	clustering, err := p.ClusterRecipients(awards)
	if err != nil {
		return nil, err
	}
	report.Recipients = domain.RecipientAnalysis{
		RecipientSummary: recipientSummary,
		Clustering:       clustering,
	}

	monthly, err := BuildTimeSeries(awards, domain.PeriodMonthly)
	if err != nil {
		return nil, err
	}
	quarterly, err := BuildTimeSeries(awards, domain.PeriodQuarterly)
	if err != nil {
		return nil, err
	}
	report.Timeline = domain.TimelineAnalysis{
		MonthlySeries:    monthly,
		QuarterlySeries:  quarterly,
		Trends:           p.DetectTrend(awards),
		PeriodComparison: p.ComparePeriods(awards),
	}

	insights, err := p.GenerateInsights(awards)
	if err != nil {
		return nil, err
	}
	report.OverallInsights = insights

	// Per-dimension insights reuse the same rule set with narrowed input.
	report.Geographic.Insights = analytics.GenerateInsights(analytics.InsightInput{Geographic: &report.Geographic.Patterns})
	report.Technology.Insights = analytics.GenerateInsights(analytics.InsightInput{Technology: techSummary})
	report.Timeline.Insights = analytics.GenerateInsights(analytics.InsightInput{Trend: &report.Timeline.Trends})

	return report, nil
}

// dataSummary computes the headline dataset summary.
func (p *Processor) dataSummary(awards []domain.Award, duplicatesDropped int) domain.DataSummary {
	summary := domain.DataSummary{
		TotalRecords:      len(awards),
		DuplicatesDropped: duplicatesDropped,
	}

	var minDate, maxDate *time.Time
	for i := range awards {
		summary.TotalFunding += awards[i].Amount
		if !awards[i].HasStartDate() {
			continue
		}
		d := awards[i].StartDate
		if minDate == nil || d.Before(*minDate) {
			minDate = d
		}
		if maxDate == nil || d.After(*maxDate) {
			maxDate = d
		}
	}
	if minDate != nil {
		summary.DateRangeStart = minDate.Format("2006-01-02")
		summary.DateRangeEnd = maxDate.Format("2006-01-02")
	}
	return summary
}

// AwardsToTable converts awards into the flat row representation consumed
// by the generic analytics entry points.
func AwardsToTable(awards []domain.Award) dataset.Table {
	table := make(dataset.Table, len(awards))
	for i, award := range awards {
		row := dataset.Row{
			"award_id":            award.ID,
			"award_amount":        award.Amount,
			"recipient_name":      award.RecipientName,
			"description":         award.Description,
			"state_code":          award.StateCode,
			"technology_category": award.TechnologyCategory,
			"recipient_type":      award.RecipientType,
		}
		if award.HasStartDate() {
			row["start_date"] = *award.StartDate
			row["fiscal_year"] = float64(award.FiscalYear)
			row["quarter"] = float64(award.Quarter)
			row["month"] = float64(award.Month)
		}
		if award.EndDate != nil && !award.EndDate.IsZero() {
			row["end_date"] = *award.EndDate
		}
		table[i] = row
	}
	return table
}
