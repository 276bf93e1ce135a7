package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_JSON(t *testing.T) {
	tt := Time(time.Date(2024, 3, 5, 8, 9, 10, 0, time.Local))

	b, err := json.Marshal(tt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05 08:09:10"`, string(b))

	b, err = json.Marshal(Time{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"layout", `"2024-03-05 08:09:10"`, time.Date(2024, 3, 5, 8, 9, 10, 0, time.Local)},
		{"date only", `"2024-03-05"`, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Time
			require.NoError(t, json.Unmarshal([]byte(tc.in), &got))
			assert.True(t, tc.want.Equal(got.Std()), "got %v", got)
		})
	}

	var bad Time
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &bad))
}

func TestTime_RFC3339(t *testing.T) {
	var got Time
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T08:09:10Z"`), &got))
	assert.Equal(t, int64(1709626150), got.Unix())
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-31 23:59:59"`), &d))
	assert.Equal(t, "2024-12-31", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(b))

	later := Date(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))
	assert.True(t, d.Before(later))
}

func TestScan(t *testing.T) {
	want := time.Date(2024, 3, 5, 8, 9, 10, 0, time.Local)

	for _, v := range []interface{}{want, "2024-03-05 08:09:10", []byte("2024-03-05 08:09:10")} {
		var got Time
		require.NoError(t, got.Scan(v))
		assert.True(t, want.Equal(got.Std()))
	}

	var empty Time
	require.NoError(t, empty.Scan(nil))
	assert.True(t, empty.IsZero())

	v, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, empty.Scan(42))
}

func TestTime_Compare(t *testing.T) {
	a := Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b := Time(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
	assert.Equal(t, time.Time(a).UnixMilli(), a.UnixMilli())
}
