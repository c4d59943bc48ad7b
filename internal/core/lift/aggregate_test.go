package lift

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brand-lift/internal/core/domain"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		index float64
		want  domain.Classification
	}{
		{index: 0, want: domain.BelowBenchmark},
		{index: 89.99, want: domain.BelowBenchmark},
		{index: 90, want: domain.AtBenchmark},
		{index: 100, want: domain.AtBenchmark},
		{index: 110, want: domain.AtBenchmark},
		{index: 110.01, want: domain.AboveBenchmark},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.index), "index %v", tt.index)
	}
}

func TestAggregate(t *testing.T) {
	agg := Aggregate(domain.LiftResult{"CTV": 2.5, "Social": 1.25}, 5)

	assert.InDelta(t, 3.75, agg.TotalLift, 1e-12)
	assert.Equal(t, 75.0, agg.BrandLiftIndex)
	assert.Equal(t, 5.0, agg.Benchmark)
	assert.Equal(t, domain.BelowBenchmark, agg.Classification)
}

func TestAggregateRoundsIndex(t *testing.T) {
	agg := Aggregate(domain.LiftResult{"CTV": 1}, 3)
	assert.Equal(t, 33.33, agg.BrandLiftIndex)
}

func TestAggregateDefaultBenchmark(t *testing.T) {
	agg := Aggregate(domain.LiftResult{"CTV": 60, "Social": 45}, 0)
	assert.Equal(t, DefaultBenchmark, agg.Benchmark)
	assert.Equal(t, 105.0, agg.BrandLiftIndex)
	assert.Equal(t, domain.AtBenchmark, agg.Classification)
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(domain.LiftResult{}, 100)
	assert.Zero(t, agg.TotalLift)
	assert.Zero(t, agg.BrandLiftIndex)
	assert.Equal(t, domain.BelowBenchmark, agg.Classification)
}

func TestRank(t *testing.T) {
	rows := Rank(domain.LiftResult{"Display": 1, "CTV": 3, "Social": 1})

	assert.Equal(t, []domain.ChannelLift{
		{Channel: "CTV", Lift: 3, Share: 0.6},
		{Channel: "Display", Lift: 1, Share: 0.2},
		{Channel: "Social", Lift: 1, Share: 0.2},
	}, rows)
}

func TestClassificationText(t *testing.T) {
	b, err := domain.AboveBenchmark.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "above", string(b))
	assert.Equal(t, "at", domain.AtBenchmark.String())
}
