package entity

import (
	"strconv"
	"strings"
)

// ReportHeader шапка Results.csv. Пробел перед "Total Pixels" оставлен для совместимости
// со старыми отчётами.
var ReportHeader = []string{"File", "Image Type", " Total Pixels", "Cover Pixels", "% Cover"}

// ReportRow поля одной строки отчёта.
func ReportRow(m CoverageMeasurement) []string {
	covered := FormatFloat(m.CoveredPixels())
	if m.Type().Kind == KindGround {
		covered = strconv.FormatInt(int64(m.CoveredPixels()), 10)
	}

	return []string{
		m.SourcePath(),
		m.Type().String(),
		strconv.Itoa(m.TotalPixels()),
		covered,
		FormatFloat(m.Ratio()),
	}
}

// FormatFloat печатает число как старые отчёты: 12 значащих цифр,
// у целых значений добавляется ".0".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', 12, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}
