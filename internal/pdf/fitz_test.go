package pdf

// The production adapter must keep satisfying Document even though
// go-fitz's own methods return concrete image types.
var _ Document = (*fitzDocument)(nil)

var _ Engine = (*FitzEngine)(nil)
