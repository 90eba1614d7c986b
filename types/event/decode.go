package event

import (
	"errors"
	"fmt"

	"github.com/disgoorg/json"
)

type Kind string

const (
	KindRecord Kind = "record"
	KindFlag   Kind = "flag"
)

var ErrUnknownKind = errors.New("unknown event kind")

// Line is a single decoded event. Exactly one of Record and Flag is set.
type Line struct {
	Kind   Kind
	Record *RunEvent
	Flag   *FlagEvent
}

// DecodeLine parses one newline-delimited event, e.g.
// {"kind":"record","name":"Alex","steam_id":"7656...","map":"surf_beginner",...}
func DecodeLine(data []byte) (*Line, error) {
	var header struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, err
	}

	line := &Line{Kind: header.Kind}
	switch header.Kind {
	case KindRecord:
		line.Record = &RunEvent{}
		if err := json.Unmarshal(data, line.Record); err != nil {
			return nil, err
		}
	case KindFlag:
		line.Flag = &FlagEvent{}
		if err := json.Unmarshal(data, line.Flag); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, header.Kind)
	}
	return line, nil
}
