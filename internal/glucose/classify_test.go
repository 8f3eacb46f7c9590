package glucose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFasting(t *testing.T) {
	tests := []struct {
		value float64
		band  Band
	}{
		{2.5, BandLow},
		{3.9, BandLow},
		{4.0, BandGood},
		{5.0, BandGood},
		{6.1, BandGood},
		{6.2, BandWarning},
		{6.9, BandWarning},
		{7.0, BandBad},
		{15.0, BandBad},
	}

	for _, tt := range tests {
		insight := Classify(tt.value, ContextFasting)
		assert.Equal(t, tt.band, insight.Band, "fasting value %.1f", tt.value)
		assert.NotEmpty(t, insight.Label)
		assert.NotEmpty(t, insight.Advice)
	}
}

func TestClassifyPostMeal(t *testing.T) {
	tests := []struct {
		value float64
		band  Band
	}{
		{3.0, BandLow},
		{4.3, BandLow},
		{4.4, BandGood},
		{7.8, BandGood},
		{7.9, BandWarning},
		{11.0, BandWarning},
		{11.1, BandBad},
		{12.5, BandBad},
	}

	for _, ctx := range []Context{ContextPostBreakfast, ContextPostLunch, ContextPostDinner} {
		for _, tt := range tests {
			insight := Classify(tt.value, ctx)
			assert.Equal(t, tt.band, insight.Band, "%s value %.1f", ctx, tt.value)
		}
	}
}

func TestClassifyBoundaryGoesToLowerBand(t *testing.T) {
	assert.Equal(t, BandGood, Classify(6.1, ContextFasting).Band)
	assert.Equal(t, BandWarning, Classify(6.9, ContextFasting).Band)
	assert.Equal(t, BandGood, Classify(7.8, ContextPostLunch).Band)
	assert.Equal(t, BandWarning, Classify(11.0, ContextPostLunch).Band)
}

func TestClassifyAdviceTexts(t *testing.T) {
	good := Classify(5.0, ContextFasting)
	assert.Equal(t, BandGood, good.Band)
	assert.Equal(t, "সঠিক", good.Label)

	bad := Classify(12.5, ContextPostDinner)
	assert.Equal(t, BandBad, bad.Band)
	assert.Equal(t, "অত্যধিক উচ্চ", bad.Label)
	assert.Equal(t, "অতিরিক্ত শর্করা পরিহার করুন। প্রয়োজনে চিকিৎসকের সাথে যোগাযোগ করুন।", bad.Advice)
}

func TestContextValid(t *testing.T) {
	for _, ctx := range Contexts {
		assert.True(t, ctx.Valid())
	}
	assert.False(t, Context("ব্যায়ামের পর").Valid())
}
