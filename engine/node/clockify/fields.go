package clockify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

// wireTime is the RFC3339 UTC shape the Clockify API expects.
const wireTime = "2006-01-02T15:04:05Z"

// parseWireTime accepts any RFC3339 timestamp and rewrites it in UTC.
func parseWireTime(value, field string) (string, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", node.InvalidParams(
			fmt.Errorf("%s must be an RFC3339 timestamp: %w", field, err),
			map[string]any{"parameter": field},
		)
	}
	return ts.UTC().Format(wireTime), nil
}

// estimateBody converts a collected estimate into the API's ISO-8601 shape.
// Amounts are duration strings, compact ("1h30m") or human ("2 hours").
func estimateBody(estimate map[string]any) (map[string]any, error) {
	amount, ok := estimate["amount"].(string)
	if !ok || strings.TrimSpace(amount) == "" {
		return nil, node.InvalidParams(
			fmt.Errorf("estimate amount must be a duration string such as %q", "1h30m"),
			map[string]any{"parameter": "estimate"},
		)
	}
	d, err := core.ParseHumanDuration(amount)
	if err != nil {
		return nil, node.InvalidParams(
			fmt.Errorf("invalid estimate amount %q: %w", amount, err),
			map[string]any{"parameter": "estimate"},
		)
	}
	body := map[string]any{"estimate": durationToISO8601(d)}
	if kind, ok := estimate["type"].(string); ok && kind != "" {
		body["type"] = strings.ToUpper(kind)
	}
	return body, nil
}

// durationToISO8601 renders a duration as an ISO-8601 period, e.g. PT1H30M.
func durationToISO8601(d time.Duration) string {
	if d <= 0 {
		return "PT0S"
	}
	d = d.Round(time.Second)
	var b strings.Builder
	b.WriteString("PT")
	if h := int64(d.Hours()); h > 0 {
		fmt.Fprintf(&b, "%dH", h)
		d -= time.Duration(h) * time.Hour
	}
	if m := int64(d.Minutes()); m > 0 {
		fmt.Fprintf(&b, "%dM", m)
		d -= time.Duration(m) * time.Minute
	}
	if s := int64(d.Seconds()); s > 0 {
		fmt.Fprintf(&b, "%dS", s)
	}
	if b.String() == "PT" {
		return "PT0S"
	}
	return b.String()
}

// rateBody converts a collected hourly rate into the API's minor-unit shape.
// Amounts parse exactly, so "12.50" becomes 1250 cents, never 1249.
func rateBody(rate map[string]any) (map[string]any, error) {
	var amount decimal.Decimal
	var err error
	switch v := rate["amount"].(type) {
	case string:
		amount, err = decimal.NewFromString(strings.TrimSpace(v))
	case float64:
		amount = decimal.NewFromFloat(v)
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int64:
		amount = decimal.NewFromInt(v)
	case uint64:
		// YAML params files decode non-negative integers as uint64.
		amount = decimal.NewFromUint64(v)
	default:
		err = fmt.Errorf("unsupported amount type %T", v)
	}
	if err != nil {
		return nil, node.InvalidParams(
			fmt.Errorf("invalid hourly rate amount: %v", rate["amount"]),
			map[string]any{"parameter": "hourlyRate"},
		)
	}
	body := map[string]any{"amount": amount.Mul(decimal.NewFromInt(100)).IntPart()}
	if currency, ok := rate["currency"].(string); ok && currency != "" {
		body["currency"] = strings.ToUpper(currency)
	}
	return body, nil
}
