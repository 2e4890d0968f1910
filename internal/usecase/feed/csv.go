package feed

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	feedv1 "github.com/cadenlund/BacktestingFramework/internal/domain/feed/v1"
	"github.com/cadenlund/BacktestingFramework/pkg/errors"
)

// CSVFeed reads historical prices for one symbol from a CSV file of
// `timestamp,price` rows (timestamp in unix milliseconds). A header row
// is detected and skipped. Rows are read lazily, one per Next call.
type CSVFeed struct {
	file    *os.File
	reader  *csv.Reader
	symbol  string
	started bool
}

// NewCSVFeed opens the file and prepares a lazy feed of its rows.
func NewCSVFeed(path, symbol string) (*CSVFeed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewTracer(string(errors.FeedOpenError)).Wrap(err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	return &CSVFeed{
		file:   file,
		reader: reader,
		symbol: symbol,
	}, nil
}

// Next returns the next row as an event, or io.EOF at end of file.
func (f *CSVFeed) Next(ctx context.Context) (feedv1.Event, error) {
	for {
		record, err := f.reader.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, errors.NewTracer(string(errors.FeedReadError)).Wrap(err)
		}

		timestamp, tsErr := strconv.ParseInt(record[0], 10, 64)
		price, priceErr := strconv.ParseFloat(record[1], 64)
		if tsErr != nil || priceErr != nil {
			if !f.started {
				// header row
				f.started = true
				continue
			}
			return nil, errors.NewErrorDetails(
				"malformed CSV row, expected numeric timestamp and price",
				string(errors.FeedReadError),
				record[0],
			)
		}

		f.started = true
		return feedv1.Event{
			feedv1.TimestampKey: timestamp,
			f.symbol:            price,
		}, nil
	}
}

// Close closes the underlying file.
func (f *CSVFeed) Close() error {
	return f.file.Close()
}
