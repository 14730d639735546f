// Package audit appends one spreadsheet-style row per product addition.
// The log is an external record: written on every add, never read back.
package audit

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Entry is a single audit row. Column headers must stay stable — downstream
// spreadsheets key on them.
type Entry struct {
	Date          string `csv:"Date"`
	ProductName   string `csv:"Product Name"`
	Category      string `csv:"Category"`
	Price         string `csv:"Price"`
	StockQuantity int    `csv:"Stock Quantity"`
}

// Appender records product additions. Implementations must be safe for
// concurrent use and durable after every call.
type Appender interface {
	Append(name, category string, price decimal.Decimal, stock int) error
}

// CSVAppender writes entries to a CSV file. The file is created with a header
// row on first append and opened for append thereafter; each call opens,
// writes, and closes the file so every row is durable immediately.
type CSVAppender struct {
	path string
	mu   sync.Mutex

	// now is swapped out in tests to pin timestamps.
	now func() time.Time
}

func NewCSVAppender(path string) *CSVAppender {
	return &CSVAppender{path: path, now: time.Now}
}

func (a *CSVAppender) Append(name, category string, price decimal.Decimal, stock int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := &Entry{
		Date:          a.now().Format("2006-01-02 15:04:05"),
		ProductName:   name,
		Category:      category,
		Price:         price.StringFixed(2),
		StockQuantity: stock,
	}

	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("audit: open %s: %w", a.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("audit: stat %s: %w", a.path, err)
	}

	rows := []*Entry{entry}
	if info.Size() == 0 {
		// Fresh file: header row first, then the entry.
		err = gocsv.MarshalFile(&rows, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(&rows, f)
	}
	if err != nil {
		return fmt.Errorf("audit: append to %s: %w", a.path, err)
	}
	return f.Sync()
}
