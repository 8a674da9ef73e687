package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesAreExhaustive(t *testing.T) {
	for _, lang := range Supported {
		table := tables[lang]
		require.NotNil(t, table, lang)
		for _, key := range Keys {
			value, ok := table[key]
			assert.True(t, ok, "%s missing %s", lang, key)
			assert.NotEmpty(t, value, "%s has empty %s", lang, key)
		}
		assert.Len(t, table, len(Keys), "%s has keys outside the key list", lang)
	}
}

func TestTResolvesLiteral(t *testing.T) {
	assert.Equal(t, "⚡ Nhanh chóng", T(Vietnamese, "features.fast", nil))
	assert.Equal(t, "⚡ 빠름", T(Korean, KeyFeaturesFast, nil))
}

func TestTFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T(Vietnamese, "no.such.key", nil))
	assert.Equal(t, "features", T(Vietnamese, "features", nil))
	assert.Equal(t, "title", T(Language("en"), KeyTitle, nil))
}

func TestTSubstitutesParams(t *testing.T) {
	assert.Equal(t, "3개 파일 선택됨:", T(Korean, KeyFilesSelected, Params{"count": 3}))
	assert.Equal(t, "Đã chọn 3 file(s):", Count(Vietnamese, KeyFilesSelected, 3))
}

func TestTWithoutParamsKeepsPlaceholders(t *testing.T) {
	assert.Equal(t, "Đã chọn {count} file(s):", T(Vietnamese, KeyFilesSelected, nil))
}

func TestTMissingParamBecomesEmpty(t *testing.T) {
	assert.Equal(t, "개 파일 선택됨:", T(Korean, KeyFilesSelected, Params{}))
	assert.Equal(t, "Đã chọn  file(s):", T(Vietnamese, KeyFilesSelected, Params{"other": 1}))
}

func TestInterpolateIsSinglePass(t *testing.T) {
	got := Interpolate("{a} and {b} and {a}", Params{"a": "{b}", "b": "x"})
	assert.Equal(t, "{b} and x and {b}", got)
}

func TestLookup(t *testing.T) {
	value, ok := Lookup(Vietnamese, KeyTitle)
	assert.True(t, ok)
	assert.Equal(t, "CV Analyzer AI", value)

	_, ok = Lookup(Vietnamese, "no.such.key")
	assert.False(t, ok)
}

func TestTranslator(t *testing.T) {
	tr := Translator{Lang: Korean}
	assert.Equal(t, "종합 점수", tr.T(KeyOverallScore))
	assert.Equal(t, "⚠️ 2개 주의사항", tr.Count(KeyFlags, 2))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   Language
	}{
		{"ko-KR,ko;q=0.9,en;q=0.8", Korean},
		{"vi-VN,vi;q=0.9", Vietnamese},
		{"en-US,en;q=0.9", Vietnamese},
		{"", Vietnamese},
		{"fr;q=0.9,ko;q=0.5", Korean},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header, Vietnamese))
		})
	}
}

func TestParse(t *testing.T) {
	lang, ok := Parse("ko-KR")
	assert.True(t, ok)
	assert.Equal(t, Korean, lang)

	_, ok = Parse("en")
	assert.False(t, ok)
}

func TestOther(t *testing.T) {
	assert.Equal(t, Korean, Vietnamese.Other())
	assert.Equal(t, Vietnamese, Korean.Other())
}
