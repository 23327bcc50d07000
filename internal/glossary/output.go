// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// staged is an output written to a temporary file next to its final path.
type staged struct {
	tmp   string
	final string
}

// outputSet collects the outputs of one build so they are renamed into place
// together. Nothing reaches a final path until every output has been staged.
type outputSet struct {
	files []staged
}

// stage writes an output through write into a temporary file beside final.
func (o *outputSet) stage(final string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(final), ".tmp-*"+filepath.Ext(final))
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	o.files = append(o.files, staged{tmp: tmp.Name(), final: final})

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	return nil
}

func (o *outputSet) stageBytes(final string, data []byte) error {
	return o.stage(final, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}

// commit renames the staged files into place in reverse staging order, so
// the first staged output lands last. Outputs already renamed are removed
// when a later rename fails.
func (o *outputSet) commit() error {
	var done []string
	for i := len(o.files) - 1; i >= 0; i-- {
		f := o.files[i]
		if err := os.Rename(f.tmp, f.final); err != nil {
			for _, p := range done {
				os.Remove(p)
			}
			return fmt.Errorf("renaming to %s: %w", f.final, err)
		}
		done = append(done, f.final)
	}
	o.files = nil
	return nil
}

// discard removes staged files that were not committed.
func (o *outputSet) discard() {
	for _, f := range o.files {
		os.Remove(f.tmp)
	}
	o.files = nil
}
