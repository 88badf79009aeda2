package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ledgersynth/model"
	"ledgersynth/query"
	"ledgersynth/service"
)

const dateOnly = "2006-01-02"

// parseFilter reads type, status, category, startDate, endDate and accountId.
func parseFilter(q url.Values) (query.Filter, error) {
	f := query.Filter{
		AccountID: q.Get("accountId"),
		Type:      model.TransactionType(q.Get("type")),
		Status:    model.TransactionStatus(q.Get("status")),
		Category:  q.Get("category"),
	}
	if f.Type != "" && !f.Type.IsValid() {
		return f, fmt.Errorf("%w: type must be %q or %q", service.ErrInvalidInput, model.Credit, model.Debit)
	}
	if f.Status != "" && !f.Status.IsValid() {
		return f, fmt.Errorf("%w: status must be %q or %q", service.ErrInvalidInput, model.Completed, model.Pending)
	}

	var err error
	if f.From, err = parseDate(q.Get("startDate"), false); err != nil {
		return f, fmt.Errorf("%w: startDate: %v", service.ErrInvalidInput, err)
	}
	if f.To, err = parseDate(q.Get("endDate"), true); err != nil {
		return f, fmt.Errorf("%w: endDate: %v", service.ErrInvalidInput, err)
	}
	return f, nil
}

// parseDate accepts RFC3339 timestamps or plain dates. A plain date used as an
// upper bound covers the whole day.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not an RFC3339 timestamp or YYYY-MM-DD date", s)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

// parsePage reads limit and offset, defaulting to the first 50 items.
func parsePage(q url.Values) (query.Page, error) {
	p := query.DefaultPage()
	var err error
	if p.Limit, err = nonNegative(q, "limit", p.Limit); err != nil {
		return p, err
	}
	if p.Offset, err = nonNegative(q, "offset", p.Offset); err != nil {
		return p, err
	}
	return p, nil
}

func nonNegative(q url.Values, key string, def int) (int, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", service.ErrInvalidInput, key)
	}
	return n, nil
}
