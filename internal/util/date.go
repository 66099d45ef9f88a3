package util

import (
	"fmt"
	"time"
)

// Bangkok is the company's civil time zone. All bill dates and printed
// timestamps are interpreted in it regardless of the server zone.
var Bangkok = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}()

// ParseDate accepts the date shapes the front end sends: a bare day, a
// local datetime, or RFC3339.
func ParseDate(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,          // 2025-12-03T00:00:00+07:00
		"2006-01-02T15:04:05", // 2025-12-03T00:00:00
		"2006-01-02",          // 2025-12-03
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, Bangkok); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// BangkokDay truncates t to its civil calendar day in Asia/Bangkok.
func BangkokDay(t time.Time) time.Time {
	t = t.In(Bangkok)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Bangkok)
}

// DayKey returns the Asia/Bangkok calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.In(Bangkok).Format("2006-01-02")
}

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// ThaiDate renders t as a long Thai date with a Buddhist-era year, e.g.
// "15 กุมภาพันธ์ 2567", in the Bangkok zone.
func ThaiDate(t time.Time) string {
	t = t.In(Bangkok)
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+543)
}

// ThaiDateShort renders t as D/M/BE, e.g. "15/2/2567".
func ThaiDateShort(t time.Time) string {
	t = t.In(Bangkok)
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()+543)
}

// ThaiTime renders the 24h clock time of t in the Bangkok zone.
func ThaiTime(t time.Time) string {
	return t.In(Bangkok).Format("15:04")
}

// MonthRange returns the first instant of the month named by "YYYY-MM" and
// the first instant of the following month, both in Bangkok time. The upper
// bound is exclusive, so short months are handled correctly.
func MonthRange(month string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", month, Bangkok)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q", month)
	}
	return t, t.AddDate(0, 1, 0), nil
}
