package qr

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/opst/aptsales/pkg/domain"
	"github.com/opst/aptsales/pkg/utils/maps"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	// pixels of a side of QR code images
	DefaultSize = 256

	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"

	// microseconds in six digits, like "05.120000".
	microsLayout = "2006-01-02 15:04:05.000000"
)

// formatDatetime writes t with microseconds, omitting them when t is on a second.
func formatDatetime(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format(datetimeLayout)
	}
	return t.Format(microsLayout)
}

// Payload is the data encoded in QR codes of the information sheet.
type Payload struct {
	Client    *maps.Ordered[any] `json:"client"`
	Apartment *maps.Ordered[any] `json:"apartment"`
}

// NewPayload builds the payload from the client and its apartment.
//
// Fields are labelled in Arabic, in the order printed on the sheet.
func NewPayload(client domain.Client, apt domain.Apartment) Payload {
	issueDate := ""
	if client.IssueDate != nil {
		issueDate = client.IssueDate.Format(dateLayout)
	}

	c := maps.NewOrdered[any]().
		Set("معرف", client.Id).
		Set("العدد", client.No).
		Set("الاسم", client.Name).
		Set("رقم الهوية", client.IdNo).
		Set("رقم الهاتف", client.PhoneNumber).
		Set("المهنة", client.JobTitle).
		Set("تاريخ الإصدار", issueDate).
		Set("رقم السجل", client.RegistryNo).
		Set("رقم الصحيفة", client.NewspaperNo).
		Set("المحلة", client.M).
		Set("الزقاق", client.Z).
		Set("الدار", client.D).
		Set("اسم البديل", client.AltName).
		Set("صلة القرابة", client.AltKinship).
		Set("هاتف البديل", client.AltPhone).
		Set("تاريخ الإنشاء", formatDatetime(client.CreatedAt))

	a := maps.NewOrdered[any]().
		Set("معرف", apt.Id).
		Set("العمارة", apt.Building).
		Set("الطابق", apt.Floor).
		Set("رقم الشقة", apt.AptNo).
		Set("المساحة", apt.Area).
		Set("سعر المتر", apt.MeterPrice).
		Set("السعر الكلي", apt.TotalPrice())

	return Payload{Client: c, Apartment: a}
}

// Marshal encodes the payload as UTF-8 JSON.
func (p Payload) Marshal() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// PNG encodes content as a QR code image.
func PNG(content []byte, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(string(content), qrcode.Medium, size)
}

// DataURI returns `data:image/png;base64,...` URI of the QR code of the payload.
func DataURI(p Payload) (string, error) {
	content, err := p.Marshal()
	if err != nil {
		return "", err
	}
	png, err := PNG(content, DefaultSize)
	if err != nil {
		return "", fmt.Errorf("encoding QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
