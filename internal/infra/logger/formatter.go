package logger

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultTimestampFormat matches "2024-01-02 15:04:05,123".
const DefaultTimestampFormat = "2006-01-02 15:04:05,000"

// LineFormatter renders entries as "<timestamp> - <LEVEL> - <message>".
// Fields, if any, are appended as key=value pairs sorted by key.
type LineFormatter struct {
	TimestampFormat string
}

// LevelName returns the upper-case level label. Fatal is reported as CRITICAL,
// since critical lines are logged at fatal level without exiting.
func LevelName(l logrus.Level) string {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return "CRITICAL"
	case logrus.WarnLevel:
		return "WARNING"
	default:
		return strings.ToUpper(l.String())
	}
}

func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	layout := f.TimestampFormat
	if layout == "" {
		layout = DefaultTimestampFormat
	}

	b.WriteString(entry.Time.Format(layout))
	b.WriteString(" - ")
	b.WriteString(LevelName(entry.Level))
	b.WriteString(" - ")
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
