package collector

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/torosent/benchrig/internal/metrics"
)

func parseJSONArtifact(path string) ([]metrics.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode JSON: invalid document")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("decode JSON: top-level value must be an array")
	}

	var records []metrics.Record
	var convErr error
	root.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			convErr = fmt.Errorf("record %d is not an object", len(records))
			return false
		}

		values := make(map[metrics.Metric]float64, 3)
		for _, m := range metrics.Metrics() {
			if v := entry.Get(string(m)); v.Exists() {
				if v.Type != gjson.Number {
					convErr = fmt.Errorf("record %d field %q is not numeric", len(records), m)
					return false
				}
				values[m] = v.Float()
			}
		}

		ctx := metrics.Context{}
		entry.Get("ctx").ForEach(func(key, val gjson.Result) bool {
			v, err := jsonValue(val)
			if err != nil {
				convErr = fmt.Errorf("record %d context key %q: %w", len(records), key.String(), err)
				return false
			}
			ctx[key.String()] = v
			return true
		})
		if convErr != nil {
			return false
		}

		records = append(records, metrics.Record{Values: values, Ctx: ctx})
		return true
	})
	if convErr != nil {
		return nil, convErr
	}

	if err := validateRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

// jsonValue maps a gjson scalar to the closed context value set. JSON does
// not distinguish int from float, so the raw token decides: no fraction or
// exponent means integer.
func jsonValue(res gjson.Result) (metrics.Value, error) {
	switch res.Type {
	case gjson.String:
		return metrics.StringValue(res.String()), nil
	case gjson.Number:
		if strings.ContainsAny(res.Raw, ".eE") {
			return metrics.FloatValue(res.Float()), nil
		}
		return metrics.IntValue(res.Int()), nil
	default:
		return metrics.Value{}, fmt.Errorf("unsupported value %s", res.Raw)
	}
}
