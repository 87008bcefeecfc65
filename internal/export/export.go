// Package export формирует отчеты CSV и XLSX из строк хранилища
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Table - заголовки и строки отчета
type Table struct {
	Headers []string
	Rows    [][]string
}

// Money форматирует сумму с двумя знаками после запятой
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func datePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return date(*t)
}

// quote заключает поле в кавычки, удваивая внутренние кавычки
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// CSV возвращает текст отчета: все поля в кавычках, строки разделены \n
func (t Table) CSV() string {
	var b strings.Builder
	writeRow := func(row []string) {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(field))
		}
	}
	writeRow(t.Headers)
	for _, row := range t.Rows {
		b.WriteByte('\n')
		writeRow(row)
	}
	return b.String()
}

func (t Table) WriteCSV(w io.Writer) error {
	if _, err := io.WriteString(w, t.CSV()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// WriteXLSX пишет отчет книгой с одним листом
func (t Table) WriteXLSX(w io.Writer, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := append([][]string{t.Headers}, t.Rows...)
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
