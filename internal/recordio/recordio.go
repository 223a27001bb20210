// Package recordio reads and writes conformer records as JSON lines, the
// interchange format between the curation commands. The scientific text
// formats the records originate from are parsed elsewhere; this package
// only moves already-structured records in and out of files.
package recordio

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// maxLineSize bounds a single encoded record. Large conformers carry per
// atom arrays but stay far below this.
const maxLineSize = 16 * 1024 * 1024

// ReadFile loads every record from a JSON lines file.
func ReadFile(path string) ([]*dataset.Conformer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := Read(f)
	if err != nil {
		return nil, errors.WrapParse("jsonl", path, err)
	}
	return records, nil
}

// Read decodes records from a JSON lines stream.
func Read(r io.Reader) ([]*dataset.Conformer, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []*dataset.Conformer
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var c dataset.Conformer
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, err
		}
		records = append(records, &c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// WriteFile writes records to a JSON lines file, one record per line.
func WriteFile(path string, records []*dataset.Conformer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := Write(f, records); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

// Write encodes records onto a JSON lines stream.
func Write(w io.Writer, records []*dataset.Conformer) error {
	buffered := bufio.NewWriter(w)
	encoder := json.NewEncoder(buffered)
	for _, c := range records {
		if err := encoder.Encode(c); err != nil {
			return err
		}
	}
	return buffered.Flush()
}
