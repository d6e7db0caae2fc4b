package homework

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestParseStatus_Verdicts(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusApproved, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`},
		{StatusReviewing, `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`},
		{StatusRejected, `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := ParseStatus(Record{Name: "hw1", Status: tt.status})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ParseStatus(Record{Name: "hw1", Status: tt.status})
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParseStatus_Errors(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"unknown status", Record{Name: "hw2", Status: "unknown_status"}},
		{"empty status", Record{Name: "hw2"}},
		{"missing name with valid status", Record{Status: StatusApproved}},
		{"missing name with unknown status", Record{Status: "weird"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.rec)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.Equal(t, KindParse, KindOf(err))
		})
	}
}

func TestCheckResponse_Valid(t *testing.T) {
	resp, err := CheckResponse(decode(t, `{"homeworks": [{"homework_name":"hw1","status":"approved"}], "current_date": 1000}`))
	require.NoError(t, err)

	require.Len(t, resp.Homeworks, 1)
	assert.Equal(t, Record{Name: "hw1", Status: StatusApproved}, resp.Homeworks[0])
	assert.True(t, resp.HasCurrentDate)
	assert.Equal(t, int64(1000), resp.CurrentDate)
}

func TestCheckResponse_EmptyHomeworksIsValid(t *testing.T) {
	resp, err := CheckResponse(decode(t, `{"homeworks": [], "current_date": 1000}`))
	require.NoError(t, err)
	assert.Empty(t, resp.Homeworks)
}

func TestCheckResponse_MissingCurrentDate(t *testing.T) {
	resp, err := CheckResponse(decode(t, `{"homeworks":[{"homework_name":"hw2","status":"unknown_status"}]}`))
	require.NoError(t, err)
	assert.False(t, resp.HasCurrentDate)

	_, err = ParseStatus(resp.Homeworks[0])
	assert.Equal(t, KindParse, KindOf(err))
}

func TestCheckResponse_PlainFloatDate(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"homeworks": [], "current_date": 1700000000}`), &v))

	resp, err := CheckResponse(v)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), resp.CurrentDate)
}

func TestCheckResponse_NonStringFieldsBecomeEmpty(t *testing.T) {
	resp, err := CheckResponse(decode(t, `{"homeworks": [{"homework_name": 5, "status": null}]}`))
	require.NoError(t, err)
	assert.Equal(t, Record{}, resp.Homeworks[0])
}

func TestCheckResponse_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"nil payload", nil},
		{"array payload", []any{}},
		{"string payload", "homeworks"},
		{"missing homeworks", map[string]any{"current_date": json.Number("1")}},
		{"homeworks is object", map[string]any{"homeworks": map[string]any{}}},
		{"homeworks is string", map[string]any{"homeworks": "[]"}},
		{"element is not object", map[string]any{"homeworks": []any{"hw1"}}},
		{"current_date is string", map[string]any{"homeworks": []any{}, "current_date": "1000"}},
		{"current_date is fractional", map[string]any{"homeworks": []any{}, "current_date": json.Number("1.5")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := CheckResponse(tt.payload)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, KindShape, KindOf(err))
		})
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("poll: %w", NewResponseError("сбой запроса", cause))

	assert.Equal(t, KindResponse, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "poll: сбой запроса: connection refused", err.Error())
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "shape", KindShape.String())
}
