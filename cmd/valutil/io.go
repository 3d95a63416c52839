package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-softwarelab/common/pkg/slogx"

	"github.com/hasbyte1/go-value-utils/value"
)

// inputs returns the files named by args, stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// readDoc decodes the single JSON or YAML document held by file; "-" reads
// stdin.
func readDoc(log *slog.Logger, file string) (value.Value, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	v, err := value.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	log.Debug("decoded document",
		slogx.String("file", file),
		slogx.String("kind", v.Kind().String()),
		slogx.Number("bytes", len(data)))
	return v, nil
}

// readSequence is readDoc for documents that must be sequences.
func readSequence(log *slog.Logger, file string) (*value.Sequence, error) {
	v, err := readDoc(log, file)
	if err != nil {
		return nil, err
	}
	return asSequence(file, v)
}

func asSequence(file string, v value.Value) (*value.Sequence, error) {
	s, ok := v.(*value.Sequence)
	if !ok {
		return nil, fmt.Errorf("%s: document is a %s, not a sequence", file, value.KindOf(v))
	}
	return s, nil
}

// writeValue writes v as one line of JSON, or "undefined".
func writeValue(w io.Writer, v value.Value, indent bool) error {
	if value.IsUndefined(v) {
		_, err := io.WriteString(w, "undefined\n")
		return err
	}
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = value.MarshalJSONIndent(v, "", "  ")
	} else {
		b, err = value.MarshalJSON(v)
	}
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
