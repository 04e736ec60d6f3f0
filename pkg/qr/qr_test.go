package qr_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/opst/aptsales/pkg/domain"
	"github.com/opst/aptsales/pkg/qr"
	"github.com/opst/aptsales/pkg/utils/pointer"
	"github.com/opst/aptsales/pkg/utils/try"
)

func TestPayload(t *testing.T) {
	client := domain.Client{
		Id: 12, No: 7, Name: "أحمد علي", IdNo: "199001", PhoneNumber: "07701234567",
		JobTitle: "مهندس", IssueDate: pointer.Ref(time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)),
		RegistryNo: "R-1", NewspaperNo: "N-2", M: "101", Z: "12", D: "8",
		AltName: "علي", AltKinship: "أخ", AltPhone: "07707654321",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 600000000, time.UTC),
		AptId:     3,
	}
	apt := domain.Apartment{
		Id: 3, Building: "B1", Floor: "4", AptNo: "12", AptType: "A",
		Area: 120.5, MeterPrice: 1000, FullPrice: 120500,
	}

	for name, testcase := range map[string]struct {
		when domain.Client
		then string
	}{
		"client with issue date": {
			when: client,
			then: `{"client":{` +
				`"معرف":12,"العدد":7,"الاسم":"أحمد علي","رقم الهوية":"199001","رقم الهاتف":"07701234567",` +
				`"المهنة":"مهندس","تاريخ الإصدار":"2020-05-17","رقم السجل":"R-1","رقم الصحيفة":"N-2",` +
				`"المحلة":"101","الزقاق":"12","الدار":"8","اسم البديل":"علي","صلة القرابة":"أخ",` +
				`"هاتف البديل":"07707654321","تاريخ الإنشاء":"2024-01-02 03:04:05.600000"` +
				`},"apartment":{` +
				`"معرف":3,"العمارة":"B1","الطابق":"4","رقم الشقة":"12","المساحة":120.5,"سعر المتر":1000,"السعر الكلي":120500` +
				`}}`,
		},
		"client without issue date": {
			when: func() domain.Client {
				c := client
				c.IssueDate = nil
				return c
			}(),
			then: `{"client":{` +
				`"معرف":12,"العدد":7,"الاسم":"أحمد علي","رقم الهوية":"199001","رقم الهاتف":"07701234567",` +
				`"المهنة":"مهندس","تاريخ الإصدار":"","رقم السجل":"R-1","رقم الصحيفة":"N-2",` +
				`"المحلة":"101","الزقاق":"12","الدار":"8","اسم البديل":"علي","صلة القرابة":"أخ",` +
				`"هاتف البديل":"07707654321","تاريخ الإنشاء":"2024-01-02 03:04:05.600000"` +
				`},"apartment":{` +
				`"معرف":3,"العمارة":"B1","الطابق":"4","رقم الشقة":"12","المساحة":120.5,"سعر المتر":1000,"السعر الكلي":120500` +
				`}}`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := try.To(qr.NewPayload(testcase.when, apt).Marshal()).OrFatal(t)
			if string(got) != testcase.then {
				t.Errorf("payload:\n===actual===\n%s\n===expected===\n%s", got, testcase.then)
			}
		})
	}

	for name, testcase := range map[string]struct {
		when time.Time
		then string
	}{
		"microseconds keep six digits": {
			when: time.Date(2024, 1, 2, 3, 4, 5, 120000000, time.UTC),
			then: "2024-01-02 03:04:05.120000",
		},
		"sub-microseconds are dropped": {
			when: time.Date(2024, 1, 2, 3, 4, 5, 1500, time.UTC),
			then: "2024-01-02 03:04:05.000001",
		},
		"whole second has no fraction": {
			when: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			then: "2024-01-02 03:04:05",
		},
		"below a microsecond is a whole second": {
			when: time.Date(2024, 1, 2, 3, 4, 5, 999, time.UTC),
			then: "2024-01-02 03:04:05",
		},
	} {
		t.Run("created_at: "+name, func(t *testing.T) {
			c := client
			c.CreatedAt = testcase.when
			got, ok := qr.NewPayload(c, apt).Client.Get("تاريخ الإنشاء")
			if !ok {
				t.Fatal("created at is missing")
			}
			if got != testcase.then {
				t.Errorf("created at: actual = %v, expected = %s", got, testcase.then)
			}
		})
	}

	t.Run("total price is computed from area and meter price", func(t *testing.T) {
		a := apt
		a.FullPrice = 0 // not yet maintained by the database
		p := qr.NewPayload(client, a)
		got, ok := p.Apartment.Get("السعر الكلي")
		if !ok {
			t.Fatal("total price is missing")
		}
		if got != 120500.0 {
			t.Errorf("total price: got %v, want %v", got, 120500.0)
		}
	})
}

func TestDataURI(t *testing.T) {
	p := qr.NewPayload(
		domain.Client{Id: 1, No: 1, Name: "client"},
		domain.Apartment{Id: 1, Building: "B", Floor: "1", AptNo: "1"},
	)

	uri := try.To(qr.DataURI(p)).OrFatal(t)

	prefix := "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected uri: %.40s...", uri)
	}
	raw := try.To(base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))).OrFatal(t)
	img := try.To(png.Decode(bytes.NewReader(raw))).OrFatal(t)

	if b := img.Bounds(); b.Dx() != qr.DefaultSize || b.Dy() != qr.DefaultSize {
		t.Errorf("image size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), qr.DefaultSize, qr.DefaultSize)
	}
}
