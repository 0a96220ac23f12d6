package report

import (
	"io"

	"github.com/francoispqt/gojay"
)

type (
	nodes    []*Node
	failures []*Failure
)

func (r *Report) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey("tree", nodes(r.Tree))
	enc.BoolKey("circular", r.Circular)
	enc.IntKey("count", r.Count)
	enc.ArrayKeyOmitEmpty("errors", failures(r.Errors))
}

func (r *Report) IsNil() bool {
	return r == nil
}

func (n *Node) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("path", n.Path)
	enc.StringKeyOmitEmpty("kind", n.Kind)
	enc.StringKeyOmitEmpty("location", n.Location)
	enc.ArrayKey("imports", nodes(n.Imports))
}

func (n *Node) IsNil() bool {
	return n == nil
}

func (f *Failure) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("location", f.Location)
	enc.StringKey("error", f.Error)
}

func (f *Failure) IsNil() bool {
	return f == nil
}

func (n nodes) MarshalJSONArray(enc *gojay.Encoder) {
	for _, node := range n {
		enc.AddObject(node)
	}
}

func (n nodes) IsNil() bool {
	return n == nil
}

func (f failures) MarshalJSONArray(enc *gojay.Encoder) {
	for _, failure := range f {
		enc.AddObject(failure)
	}
}

func (f failures) IsNil() bool {
	return len(f) == 0
}

// JSON writes report as a JSON document
func (r *Report) JSON(writer io.Writer) error {
	enc := gojay.BorrowEncoder(writer)
	defer enc.Release()
	if err := enc.EncodeObject(r); err != nil {
		return err
	}
	_, err := writer.Write([]byte("\n"))
	return err
}
