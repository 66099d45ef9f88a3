package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{
		"2024-02-15",
		"2024-02-15T10:30:00",
		"2024-02-15T10:30:00+07:00",
	} {
		d, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, "2024-02-15", DayKey(d), s)
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("15/02/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestBangkokDay(t *testing.T) {
	// 23:30 UTC is already the next civil day in Bangkok (UTC+7)
	utc := time.Date(2024, 2, 15, 23, 30, 0, 0, time.UTC)
	day := BangkokDay(utc)
	assert.Equal(t, "2024-02-16", DayKey(day))
	assert.Equal(t, 0, day.Hour())
}

func TestThaiDateBuddhistEra(t *testing.T) {
	d := time.Date(2024, 2, 15, 12, 0, 0, 0, Bangkok)
	assert.Equal(t, "15 กุมภาพันธ์ 2567", ThaiDate(d))
	assert.Equal(t, "15/2/2567", ThaiDateShort(d))
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", DayKey(from))
	// 2024 is a leap year; the exclusive bound lands on March 1
	assert.Equal(t, "2024-03-01", DayKey(to))
	assert.Equal(t, "2024-02-29", DayKey(to.AddDate(0, 0, -1)))
}

func TestMonthRangeInvalid(t *testing.T) {
	_, _, err := MonthRange("Feb-2024")
	assert.Error(t, err)
}
