// Package timeutil provides campus timezone helpers for Monterrey (UTC-6).
// Records are stored in UTC; reports show campus time.
package timeutil

import (
	"fmt"
	"time"
)

// CampusTZ is the Monterrey timezone. Mexico abolished DST in 2022, so the
// offset is constant year-round.
var CampusTZ = time.FixedZone("America/Monterrey", -6*60*60)

// Common layouts.
const (
	// FormatDate is the day-first date used on reports (16/10/2026).
	FormatDate = "02/01/2006"
	// FormatTime is a 24h clock time (14:05).
	FormatTime = "15:04"
	// FormatDateTime combines date and time.
	FormatDateTime = "02/01/2006 15:04"
	// FormatISODate is YYYY-MM-DD.
	FormatISODate = "2006-01-02"
)

// Now returns the current time in campus timezone.
func Now() time.Time {
	return time.Now().In(CampusTZ)
}

// ToCampus converts a time to campus timezone.
func ToCampus(t time.Time) time.Time {
	return t.In(CampusTZ)
}

// FormatCampus formats t in campus timezone with the given layout.
func FormatCampus(t time.Time, layout string) string {
	return ToCampus(t).Format(layout)
}

// FormatDateTimeStr formats t as "DD/MM/YYYY HH:MM" in campus timezone.
func FormatDateTimeStr(t time.Time) string {
	return FormatCampus(t, FormatDateTime)
}

// FormatLongSpanish formats t as "16 de octubre de 2026" in campus timezone.
func FormatLongSpanish(t time.Time) string {
	c := ToCampus(t)
	return fmt.Sprintf("%d de %s de %d", c.Day(), MonthNameEs(c.Month()), c.Year())
}

var monthsEs = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthNameEs returns the lowercase Spanish month name.
func MonthNameEs(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthsEs[m-1]
}
