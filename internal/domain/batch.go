package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// BatchID correlates every row processed by one pipeline run.
type BatchID int64

// NewBatchID derives an id from yymmddHHMMSS, the first four sub-second digits and one
// random digit, e.g. 25101914302512347.
func NewBatchID(now time.Time, rng *rand.Rand) BatchID {
	var digit int
	if rng != nil {
		digit = rng.IntN(10)
	} else {
		digit = rand.IntN(10)
	}
	micros := now.Nanosecond() / int(time.Microsecond)
	raw := fmt.Sprintf("%s%04d%d", now.Format("060102150405"), micros/100, digit)

	id, _ := strconv.ParseInt(raw, 10, 64)
	return BatchID(id)
}

// ParseBatchID parses a batch id given on the command line.
func ParseBatchID(raw string) (BatchID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewMissingRequiredFieldError("batch_id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidBatchIDError(raw, err)
	}
	if id <= 0 {
		return 0, NewInvalidBatchIDError(raw, nil)
	}
	return BatchID(id), nil
}

func (b BatchID) String() string {
	return strconv.FormatInt(int64(b), 10)
}
