package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/rohankatakam/githours/internal/temporal"
)

// JSONFormatter writes the report as a JSON object keyed by canonical email
// with "total" as the last key, indented by two spaces
type JSONFormatter struct{}

func (f *JSONFormatter) Format(report *temporal.Report, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for _, author := range report.Authors {
		if err := writeMember(&buf, author.Email, author); err != nil {
			return err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, temporal.TotalKey, report.Total); err != nil {
		return err
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err := out.WriteTo(w)
	return err
}

// writeMember appends `"key":value` to buf. Object members are written one by
// one since encoding/json sorts map keys. Names are written as-is, without
// HTML escaping.
func writeMember(buf *bytes.Buffer, key string, value interface{}) error {
	k, err := marshal(key)
	if err != nil {
		return err
	}
	v, err := marshal(value)
	if err != nil {
		return err
	}

	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

func marshal(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
