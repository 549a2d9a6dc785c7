package sequence

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// These flags define which values to include in a serialized output.
const (
	SerializeRuns    = 1 << iota // run lengths of the value
	SerializeCount               // number of occurrences of the value
	SerializeLongest             // longest run of the value
	SerializeMean                // mean run length of the value
)

const (
	serializerBasePrefix     = '['
	serializerRowPrefix      = `{"value":`
	serializerRunsPrefix     = `,"runs":[`
	serializerRunsSuffix     = ']'
	serializerCountPrefix    = `,"count":`
	serializerLongestPrefix  = `,"longest":`
	serializerMeanPrefix     = `,"mean":`
	serializerRowSuffix      = "},"
	serializerBaseSuffix     = ']'
	serializerApproxRowSize  = 16
	serializerApproxRunSize  = 4
	serializerApproxStatSize = 12
)

// Serialize is a convenience function that returns a JSON encoding of the
// summaries using n as precision level for float values and flag to define
// which values to include in the serialized output. Values are rendered
// using their default format and always encoded as JSON strings.
func Serialize[T comparable](summaries []Summary[T], n int, flag int) []byte {
	if len(summaries) == 0 {
		return []byte("[]")
	}
	runs := flag&SerializeRuns != 0
	count := flag&SerializeCount != 0
	longest := flag&SerializeLongest != 0
	mean := flag&SerializeMean != 0
	approxRowSize := serializerApproxRowSize
	if count {
		approxRowSize += serializerApproxStatSize
	}
	if longest {
		approxRowSize += serializerApproxStatSize
	}
	if mean {
		approxRowSize += serializerApproxStatSize + max(n, 0)
	}
	size := 2
	for _, s := range summaries {
		size += approxRowSize
		if runs {
			size += len(s.Runs) * serializerApproxRunSize
		}
	}
	buf := make([]byte, 0, size)
	buf = append(buf, serializerBasePrefix)
	for _, s := range summaries {
		buf = append(buf, serializerRowPrefix...)
		buf = appendValue(buf, s.Value)
		if runs {
			buf = append(buf, serializerRunsPrefix...)
			for i, v := range s.Runs {
				if i > 0 {
					buf = append(buf, ',')
				}
				buf = strconv.AppendInt(buf, int64(v), 10)
			}
			buf = append(buf, serializerRunsSuffix)
		}
		if count {
			buf = append(buf, serializerCountPrefix...)
			buf = strconv.AppendInt(buf, int64(s.Count), 10)
		}
		if longest {
			buf = append(buf, serializerLongestPrefix...)
			buf = strconv.AppendInt(buf, int64(s.Longest), 10)
		}
		if mean {
			buf = append(buf, serializerMeanPrefix...)
			if len(s.Runs) == 0 {
				buf = append(buf, "null"...)
			} else {
				buf = strconv.AppendFloat(buf, s.Mean(), 'f', n, 64)
			}
		}
		buf = append(buf, serializerRowSuffix...)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf
}

// appendValue appends the JSON string encoding of the default format of x.
func appendValue(buf []byte, x any) []byte {
	b, err := json.Marshal(fmt.Sprint(x))
	if err != nil {
		return append(buf, `""`...)
	}
	return append(buf, b...)
}
