// internal/domain/homework/parse.go
package homework

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
	keyName        = "homework_name"
	keyStatus      = "status"
)

// CheckResponse validates a decoded API payload and converts it into a Response.
// The payload is expected to come from encoding/json, either with or without UseNumber.
func CheckResponse(payload any) (*Response, error) {
	body, ok := payload.(map[string]any)
	if !ok {
		return nil, shapeError(fmt.Sprintf("неверный тип данных ответа: %T", payload))
	}

	rawHomeworks, ok := body[keyHomeworks]
	if !ok {
		return nil, shapeError("в ответе API ключ homeworks не найден")
	}
	items, ok := rawHomeworks.([]any)
	if !ok {
		return nil, shapeError(fmt.Sprintf("неверный тип данных homeworks: %T", rawHomeworks))
	}

	resp := &Response{Homeworks: make([]Record, 0, len(items))}
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, shapeError(fmt.Sprintf("неверный тип данных homeworks[%d]: %T", i, item))
		}
		name, _ := fields[keyName].(string)
		status, _ := fields[keyStatus].(string)
		resp.Homeworks = append(resp.Homeworks, Record{Name: name, Status: Status(status)})
	}

	if rawDate, ok := body[keyCurrentDate]; ok && rawDate != nil {
		date, err := toUnix(rawDate)
		if err != nil {
			return nil, err
		}
		resp.CurrentDate = date
		resp.HasCurrentDate = true
	}

	return resp, nil
}

func toUnix(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, shapeError(fmt.Sprintf("неверное значение current_date: %s", n))
		}
		return i, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, shapeError(fmt.Sprintf("неверное значение current_date: %v", n))
		}
		return int64(n), nil
	default:
		return 0, shapeError(fmt.Sprintf("неверный тип данных current_date: %T", v))
	}
}

// ParseStatus builds the notification text for a single homework record.
func ParseStatus(rec Record) (string, error) {
	if rec.Name == "" {
		return "", parseError("в ответе API ключ homework_name не найден")
	}
	verdict, ok := rec.Status.Verdict()
	if !ok {
		return "", parseError(fmt.Sprintf("неизвестный статус %q", string(rec.Status)))
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", rec.Name, verdict), nil
}
