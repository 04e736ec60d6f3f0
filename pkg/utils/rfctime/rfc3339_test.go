package rfctime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/opst/aptsales/pkg/utils/rfctime"
	"github.com/opst/aptsales/pkg/utils/try"
)

func TestRFC3339(t *testing.T) {
	t.Run("it marshals with timezone offset", func(t *testing.T) {
		tm := time.Date(2024, 1, 2, 3, 4, 5, 600_000_000, time.FixedZone("", 3*60*60))
		got := try.To(json.Marshal(rfctime.RFC3339(tm))).OrFatal(t)
		if want := `"2024-01-02T03:04:05.6+03:00"`; string(got) != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	for name, testcase := range map[string]struct {
		when    string
		then    time.Time
		wantErr bool
	}{
		"with Z": {
			when: `"2024-01-02T03:04:05Z"`, then: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		"with offset": {
			when: `"2024-01-02T06:04:05+03:00"`, then: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		"date only": {
			when: `"2024-01-02"`, wantErr: true,
		},
		"not a string": {
			when: `20240102`, wantErr: true,
		},
	} {
		t.Run("unmarshal "+name, func(t *testing.T) {
			var got rfctime.RFC3339
			err := json.Unmarshal([]byte(testcase.when), &got)
			if testcase.wantErr {
				if err == nil {
					t.Errorf("expected error, but got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !got.Time().Equal(testcase.then) {
				t.Errorf("got %s, want %s", got, testcase.then)
			}
		})
	}
}

func TestDate(t *testing.T) {
	d := try.To(rfctime.ParseDate("2020-05-17")).OrFatal(t)
	if got := try.To(json.Marshal(d)).OrFatal(t); string(got) != `"2020-05-17"` {
		t.Errorf("marshal: got %s", got)
	}

	var v struct {
		D *rfctime.Date `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"d": "2021-12-31"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.D == nil || v.D.String() != "2021-12-31" {
		t.Errorf("unmarshal: got %v", v.D)
	}

	v.D = nil
	if err := json.Unmarshal([]byte(`{"d": null}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.D != nil {
		t.Errorf("null: got %v", v.D)
	}

	if err := json.Unmarshal([]byte(`{"d": "2021-13-01"}`), &v); err == nil {
		t.Error("invalid month is accepted")
	}
}
