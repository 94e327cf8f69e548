package common

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"time"

	logging "github.com/inconshreveable/log15"

	"boscoin.io/ballotbox/lib/errors"
)

var (
	DefaultLogLevel   logging.Lvl     = logging.LvlInfo
	DefaultLogHandler logging.Handler = logging.StreamHandler(os.Stdout, logging.TerminalFormat())
)

const logErrorKey = "LOG15_ERROR"

// logValue keeps the values which already know how to become JSON, like
// `*errors.Error` with its code and data; a nil pointer is logged as "nil".
func logValue(value interface{}) (result interface{}) {
	defer func() {
		if r := recover(); r != nil {
			v := reflect.ValueOf(value)
			if v.Kind() != reflect.Ptr || !v.IsNil() {
				panic(r)
			}
			result = "nil"
		}
	}()

	switch v := value.(type) {
	case *errors.Error, json.Marshaler, Serializable:
		return v
	case time.Time:
		return FormatISO8601(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	return value
}

func logRecordMap(r *logging.Record) map[string]interface{} {
	m := map[string]interface{}{
		r.KeyNames.Time: r.Time,
		r.KeyNames.Lvl:  r.Lvl.String(),
		r.KeyNames.Msg:  r.Msg,
	}

	for i := 0; i+1 < len(r.Ctx); i += 2 {
		key, ok := r.Ctx[i].(string)
		if !ok {
			m[logErrorKey] = fmt.Sprintf("%+v is not a string key", r.Ctx[i])
			continue
		}
		m[key] = logValue(r.Ctx[i+1])
	}

	return m
}

// JSONLineFormat writes one JSON object per record, separated by newline.
func JSONLineFormat() logging.Format {
	return logging.FormatFunc(func(r *logging.Record) []byte {
		b, err := json.Marshal(logRecordMap(r))
		if err != nil {
			b, _ = json.Marshal(map[string]string{logErrorKey: err.Error()})
		}

		return append(b, '\n')
	})
}

// LogFormat picks the terminal format for an interactive stdout and
// JSON lines otherwise.
func LogFormat(terminal bool) logging.Format {
	if terminal {
		return logging.TerminalFormat()
	}

	return JSONLineFormat()
}

func NopLogger() logging.Logger {
	l := logging.New()
	l.SetHandler(logging.DiscardHandler())
	return l
}
