// Package csvio implements the tabular row exchange used by external storage
// collaborators. A portfolio's holdings and schedules are flattened into rows
// of symbol, name, qty, avg_price, fy_div, freq, last_div, next_div; the
// fiscal-year dividend per share (fy_div) and payments per year (freq)
// together carry the payment schedule.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dstam/dividend-tracker/internal/model"
)

// Header is the expected first row of a portfolio CSV.
var Header = []string{"symbol", "name", "qty", "avg_price", "fy_div", "freq", "last_div", "next_div"}

// Row is one holding plus its payment schedule in the tabular exchange shape.
type Row struct {
	Symbol   string
	Name     string
	Qty      float64
	AvgPrice float64
	FYDiv    float64 // fiscal-year dividend per share (typical amount x freq)
	Freq     int     // payments per year
	LastDiv  string  // last ex-dividend date, YYYY-MM-DD or empty
	NextDiv  string  // next expected payment date, YYYY-MM-DD or empty
}

// FromPortfolio flattens a portfolio's holdings and schedules into rows,
// keeping the holdings' order. Holdings without a schedule export a zero
// fy_div with the quarterly default frequency.
func FromPortfolio(p *model.Portfolio) []Row {
	rows := make([]Row, 0, len(p.Holdings))
	for _, h := range p.Holdings {
		row := Row{
			Symbol:   h.Ticker,
			Name:     h.Name,
			Qty:      h.Shares,
			AvgPrice: h.PurchasePrice,
			Freq:     4,
		}
		if sched, ok := p.Schedule(h.Ticker); ok {
			row.Freq = sched.Frequency.AnnualFrequency()
			row.FYDiv = annualDividend(sched.TypicalAmount, row.Freq)
			if sched.LastExDividendDate != nil {
				row.LastDiv = sched.LastExDividendDate.Format("2006-01-02")
			}
			if sched.NextPaymentDate != nil {
				row.NextDiv = sched.NextPaymentDate.Format("2006-01-02")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Holding converts the row back into a holding record. The row shape does
// not carry a current price or currency; the current price starts at the
// purchase price and the currency defaults to USD until edited.
func (r Row) Holding() model.Holding {
	return model.Holding{
		Ticker:        strings.ToUpper(r.Symbol),
		Name:          r.Name,
		Shares:        r.Qty,
		PurchasePrice: r.AvgPrice,
		CurrentPrice:  r.AvgPrice,
		Currency:      "USD",
	}
}

// Schedule converts the row back into a payment schedule, or false when the
// row carries no dividend information.
func (r Row) Schedule() (model.PaymentSchedule, bool) {
	if r.FYDiv == 0 {
		return model.PaymentSchedule{}, false
	}

	freq := r.Freq
	if freq <= 0 {
		freq = 4
	}
	sched := model.PaymentSchedule{
		Ticker:        strings.ToUpper(r.Symbol),
		Frequency:     model.FrequencyFromAnnualCount(freq),
		TypicalAmount: perPaymentAmount(r.FYDiv, freq),
	}
	if t, err := time.Parse("2006-01-02", r.LastDiv); err == nil {
		t = t.UTC()
		sched.LastExDividendDate = &t
	}
	if t, err := time.Parse("2006-01-02", r.NextDiv); err == nil {
		t = t.UTC()
		sched.NextPaymentDate = &t
	}
	return sched, true
}

// Write renders rows as CSV, header first.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Symbol,
			r.Name,
			strconv.FormatFloat(r.Qty, 'g', -1, 64),
			strconv.FormatFloat(r.AvgPrice, 'g', -1, 64),
			strconv.FormatFloat(r.FYDiv, 'g', -1, 64),
			strconv.Itoa(r.Freq),
			r.LastDiv,
			r.NextDiv,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read parses a portfolio CSV produced by Write (or the external GUI tool
// sharing the shape). The header must match exactly; numeric fields must
// parse and be non-negative.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if !equalHeader(header) {
		return nil, fmt.Errorf("invalid CSV headers: got %v, want %v", header, Header)
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(record []string) (Row, error) {
	row := Row{
		Symbol:  strings.ToUpper(strings.TrimSpace(record[0])),
		Name:    strings.TrimSpace(record[1]),
		LastDiv: strings.TrimSpace(record[6]),
		NextDiv: strings.TrimSpace(record[7]),
	}
	if row.Symbol == "" {
		return Row{}, fmt.Errorf("symbol is required")
	}

	var err error
	if row.Qty, err = parseNonNegative("qty", record[2]); err != nil {
		return Row{}, err
	}
	if row.AvgPrice, err = parseNonNegative("avg_price", record[3]); err != nil {
		return Row{}, err
	}
	if row.FYDiv, err = parseNonNegative("fy_div", record[4]); err != nil {
		return Row{}, err
	}

	freq, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil {
		return Row{}, fmt.Errorf("invalid freq %q: %w", record[5], err)
	}
	if freq < 0 {
		return Row{}, fmt.Errorf("freq cannot be negative")
	}
	row.Freq = freq

	return row, nil
}

// annualDividend computes fy_div as amount x freq in decimal arithmetic over
// the amount's shortest rendering. Binary multiplication shifts amounts like
// 0.1 at freq 12 off their decimal value, and the division on import cannot
// undo it.
func annualDividend(amount float64, freq int) float64 {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(amount, 'g', -1, 64))
	if !ok {
		return amount * float64(freq)
	}
	r.Mul(r, new(big.Rat).SetInt64(int64(freq)))
	f, _ := r.Float64()
	return f
}

// perPaymentAmount inverts annualDividend, dividing fy_div's decimal value by
// the payment count.
func perPaymentAmount(fyDiv float64, freq int) float64 {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(fyDiv, 'g', -1, 64))
	if !ok {
		return fyDiv / float64(freq)
	}
	r.Quo(r, new(big.Rat).SetInt64(int64(freq)))
	f, _ := r.Float64()
	return f
}

func parseNonNegative(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s cannot be negative", field)
	}
	return f, nil
}

func equalHeader(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, h := range header {
		if strings.TrimSpace(strings.ToLower(h)) != Header[i] {
			return false
		}
	}
	return true
}
